package cmd

import (
	"fmt"

	"github.com/harlequix/hamfec/hamfec"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <input> <output>",
	Short: "Recover a file from hamming format",
	Long: `Reads a hamming-encoded file, corrects up to one flipped bit per
7-bit codeword and writes the recovered payload to the output file.
Codewords damaged in two or more places decode silently wrong; the
(7,4) code cannot detect double errors.`,
	Args: cobra.ExactArgs(2),
	RunE: decode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	fmt.Println("Recovering file from hamming format!")
	return hamfec.DecodeFile(args[0], args[1])
}
