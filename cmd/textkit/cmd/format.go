package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/utils/textx"
)

var formatCmd = &cobra.Command{
	Use:   "format TEMPLATE [ARG...]",
	Short: "Lenient template substitution",
	Long: `Format substitutes each occurrence of the exact placeholder %s in
TEMPLATE with the corresponding argument. Mismatched counts never fail:
leftover placeholders stay verbatim and surplus arguments are appended
in square brackets.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmtArgs := make([]interface{}, len(args)-1)
		for i, a := range args[1:] {
			fmtArgs[i] = a
		}

		fmt.Fprintln(cmd.OutOrStdout(), textx.LenientFormat(args[0], fmtArgs...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
