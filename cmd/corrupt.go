package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harlequix/hamfec/hamfec"
	"github.com/harlequix/hamfec/noise"
	"github.com/spf13/cobra"
)

var corruptCmd = &cobra.Command{
	Use:   "corrupt <input> <output>",
	Short: "Inject channel noise into an encoded file",
	Long: `Reads a hamming-encoded file and gives every 7-bit codeword an
independent 1 in 7 chance of exactly one bit flip at a random position,
the kind of damage the decode command can repair.`,
	Args: cobra.ExactArgs(2),
	RunE: corrupt,
}

func init() {
	rootCmd.AddCommand(corruptCmd)
}

func corrupt(cmd *cobra.Command, args []string) error {
	fmt.Println("Generating error!")
	sim := noise.NewSimulator(rand.NewSource(time.Now().UnixNano()))
	return hamfec.CorruptFile(args[0], args[1], sim)
}
