package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// EnableTrace lowers the shared logger to trace level and mirrors trace
// and warn records into JSON files derived from path.
func EnableTrace(path string) {
	base.SetLevel(log.TraceLevel)
	AddTracer(base, path)
}

func AddTracer(logger *log.Logger, path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Hooks.Add(hook)
}
