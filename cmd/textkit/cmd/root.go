package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/core/config"
	kitlog "github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/textx"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "textkit - text utility toolbox",
	Long: `textkit is a small toolbox around the textkit text utilities.

Commands:
  pad      - pad a string to a minimum length
  repeat   - repeat a string a number of times
  affix    - common prefix and suffix of two strings
  format   - lenient template substitution`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			printError("cannot load config", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := cfg.Logger()
	if err != nil {
		printError("cannot build logger", err)
		os.Exit(1)
	}
	if verbose {
		logger = logger.WithLevel(kitlog.DevelopmentLevel())
	}

	kitlog.SetDefault(logger)
	textx.SetLogger(logger)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
