package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mink/lexer"
	"github.com/msto63/mink/token"
)

var lexPositions bool

var lexCmd = &cobra.Command{
	Use:   "lex [text|file]",
	Short: "Print the token stream for Mink source",
	Long: `Lexes Mink source and prints one token per line. Lexing never
fails; unknown characters appear as ILLEGAL tokens.

Examples:
  mink lex "let x = 5;"
  mink lex program.mink
  mink lex --positions "x == 10"
  echo "fn(x) { x }" | mink lex`,
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexPositions, "positions", false, "include line and column of each token")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := getInputSource(args)
	if err != nil {
		printError("reading input", err)
		return err
	}
	if source == "" {
		return fmt.Errorf("no Mink source to lex")
	}

	for _, tok := range lexer.New(source).Tokenize() {
		if tok.Type == token.EOF {
			break
		}
		if lexPositions {
			fmt.Printf("%d:%d\t%s\n", tok.Line, tok.Column, tok)
		} else {
			fmt.Println(tok)
		}
	}

	return nil
}
