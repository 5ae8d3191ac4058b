package cmd

import (
	"fmt"

	"github.com/harlequix/hamfec/hamfec"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input> <output>",
	Short: "Convert a file to hamming format",
	Long: `Reads the input file, expands every 4 data bits into a 7-bit
Hamming codeword and writes the protected stream to the output file.
The output grows by a factor of 7/4, rounded up to whole bytes.`,
	Args: cobra.ExactArgs(2),
	RunE: encode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	fmt.Println("Converting file to hamming format!")
	return hamfec.EncodeFile(args[0], args[1])
}
