package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mink/repl"
)

var replNoColor bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Mink session",
	Long: `Starts a read-eval-print loop. Each line is parsed as a complete
Mink program and its syntax tree printed back.

Session commands:
  :tokens  - toggle token mode (lex lines instead of parsing them)
  :help    - show session commands
  :quit    - leave the session

Examples:
  mink repl
  mink repl --no-color`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoColor, "no-color", false, "disable styled output")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		printError("configuration", err)
		return err
	}

	if replNoColor {
		cfg.REPL.Color = false
	}

	session := repl.New(repl.Options{
		Input:  os.Stdin,
		Output: os.Stdout,
		Config: cfg,
		Logger: logger,
	})

	return session.Run()
}
