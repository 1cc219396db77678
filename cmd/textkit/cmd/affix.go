package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/utils/textx"
)

var affixUTF16 bool

var affixCmd = &cobra.Command{
	Use:   "affix A B",
	Short: "Common prefix and suffix of two strings",
	Long: `Affix prints the longest common prefix and the longest common
suffix of A and B. Results never cut through a multi-byte character.
With --utf16 the computation runs on UTF-16 code units instead, with
surrogate pair protection.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if affixUTF16 {
			a := textx.EncodeUTF16(args[0])
			b := textx.EncodeUTF16(args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "prefix: %s\n", textx.DecodeUTF16(textx.CommonPrefixUTF16(a, b)))
			fmt.Fprintf(cmd.OutOrStdout(), "suffix: %s\n", textx.DecodeUTF16(textx.CommonSuffixUTF16(a, b)))
			return nil
		}

		prefix, err := textx.CommonPrefix(&args[0], &args[1])
		if err != nil {
			return err
		}
		suffix, err := textx.CommonSuffix(&args[0], &args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "prefix: %s\n", prefix)
		fmt.Fprintf(cmd.OutOrStdout(), "suffix: %s\n", suffix)
		return nil
	},
}

func init() {
	affixCmd.Flags().BoolVar(&affixUTF16, "utf16", false, "compute on UTF-16 code units")
	rootCmd.AddCommand(affixCmd)
}
