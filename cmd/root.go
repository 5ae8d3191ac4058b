package cmd

import (
	"os"

	log "github.com/harlequix/hamfec/log"
	"github.com/spf13/cobra"
)

var tracePath string

var rootCmd = &cobra.Command{
	Use:   "hamfec",
	Short: "Hamming(7,4) forward error correction for files",
	Long: `hamfec protects arbitrary files with a Hamming(7,4) block code:
every 4 data bits gain 3 parity bits, letting the decoder repair any
single flipped bit per 7-bit codeword. The corrupt command simulates a
noisy channel against an encoded file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if tracePath != "" {
			log.EnableTrace(tracePath)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tracePath, "trace", "", "mirror trace logs into JSON files derived from this path")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
