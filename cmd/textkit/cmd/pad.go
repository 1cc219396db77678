package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	kitlog "github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/textx"
)

var (
	padLength int
	padChar   string
	padAtEnd  bool
)

var padCmd = &cobra.Command{
	Use:   "pad STRING",
	Short: "Pad a string to a minimum length",
	Long: `Pad prints STRING padded with the pad character until it is at
least the requested number of characters long. Padding goes before the
string unless --end is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, size := utf8.DecodeRuneInString(padChar)
		if size == 0 || size != len(padChar) {
			return fmt.Errorf("pad character must be a single character, got %q", padChar)
		}

		pad := textx.PadStart
		if padAtEnd {
			pad = textx.PadEnd
		}

		result, err := pad(&args[0], padLength, r)
		if err != nil {
			return err
		}

		kitlog.Debug("padded", kitlog.Fields{"length": padLength, "end": padAtEnd})
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	padCmd.Flags().IntVarP(&padLength, "length", "l", 0, "minimum length in characters")
	padCmd.Flags().StringVarP(&padChar, "char", "c", " ", "pad character")
	padCmd.Flags().BoolVar(&padAtEnd, "end", false, "pad at the end instead of the start")
	rootCmd.AddCommand(padCmd)
}
