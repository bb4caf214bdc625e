package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mink/ast"
	"github.com/msto63/mink/parser"
)

var (
	parseTree   bool
	parseIdents bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [text|file]",
	Short: "Parse Mink source and print the syntax tree",
	Long: `Parses Mink source and prints the canonical rendering of the
resulting syntax tree. The rendering fully parenthesizes expressions, so
it shows exactly how operators were grouped.

Input comes from a file argument, literal argument text, or stdin.

Examples:
  mink parse "let x = 1 + 2 * 3;"
  mink parse program.mink
  mink parse --tree "if (x < y) { x } else { y }"
  echo "a + b * c;" | mink parse`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "print an indented node tree instead of the canonical rendering")
	parseCmd.Flags().BoolVar(&parseIdents, "idents", false, "print the distinct identifiers referenced by the program")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		printError("configuration", err)
		return err
	}

	source, err := getInputSource(args)
	if err != nil {
		printError("reading input", err)
		return err
	}
	if source == "" {
		return fmt.Errorf("no Mink source to parse")
	}

	p := parser.New(parser.Options{
		Logger:         logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
	})

	program, err := p.Parse(source)
	if err != nil {
		for _, msg := range p.Errors() {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", msg)
		}
		return fmt.Errorf("%d parse error(s)", len(p.Errors()))
	}

	if parseTree {
		printer := ast.NewTreePrinter()
		program.Accept(printer)
		fmt.Print(printer.String())
		return nil
	}

	if parseIdents {
		collector := ast.NewIdentifierCollector()
		program.Accept(collector)
		for _, name := range collector.Names() {
			fmt.Println(name)
		}
		return nil
	}

	fmt.Println(program.String())
	return nil
}

// getInputSource reads Mink source from stdin when piped, from a file when
// the first argument names one, or from the arguments themselves
func getInputSource(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	return "", nil
}
