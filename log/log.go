package log

import (
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var base = newBase()

func newBase() *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(log.WarnLevel)
	return logger
}

// NewLogger tags a module logger on the shared base logger.
func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}
