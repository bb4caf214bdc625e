package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mink/core/config"
	minklog "github.com/msto63/mink/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mink",
	Short: "Mink - a small scripting language front end",
	Long: `Mink is a small C-like scripting language. This tool lexes and
parses Mink source and prints the resulting token streams and syntax
trees.

Commands:
  repl     - interactive session
  parse    - parse a file, argument text, or stdin
  lex      - print the token stream
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configured or default configuration and builds the
// logger used by the subcommands. Verbose mode lowers the log level to
// debug and logs go to stderr so they never mix with command output.
func loadConfig() (*config.Config, *minklog.Logger, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel()
	if verbose {
		level = minklog.LevelDebug
	}

	logger := minklog.NewWithConfig(minklog.Config{
		Level:  level,
		Format: cfg.LogFormat(),
		Output: os.Stderr,
		Name:   "mink",
	})

	return cfg, logger, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
