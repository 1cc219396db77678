package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/utils/textx"
)

var repeatCmd = &cobra.Command{
	Use:   "repeat STRING COUNT",
	Short: "Repeat a string a number of times",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("count must be an integer, got %q", args[1])
		}

		result, err := textx.Repeat(&args[0], count)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(repeatCmd)
}
