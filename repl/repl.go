// File: repl.go
// Title: Mink Interactive Session
// Description: Implements the read-eval-print loop for interactive Mink
//              use. Each input line is parsed and its AST rendering (or
//              every syntax error) printed back. A token mode prints the
//              raw token stream instead.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial REPL implementation

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mink/core/config"
	minklog "github.com/msto63/mink/core/log"
	"github.com/msto63/mink/lexer"
	"github.com/msto63/mink/parser"
	"github.com/msto63/mink/token"
)

// REPL reads Mink lines, parses them, and prints the results
type REPL struct {
	input     io.Reader
	output    io.Writer
	parser    *parser.Parser
	prompt    string
	tokenMode bool
	logger    *minklog.Logger
	styles    styles
}

// Options configures an interactive session
type Options struct {
	// Input source (default: unset, caller must provide)
	Input io.Reader

	// Output destination
	Output io.Writer

	// Config supplies prompt and parser settings (default: config.Default)
	Config *config.Config

	// Logger for session diagnostics (optional)
	Logger *minklog.Logger
}

// styles holds the lipgloss render styles for session output
type styles struct {
	prompt lipgloss.Style
	banner lipgloss.Style
	result lipgloss.Style
	errMsg lipgloss.Style
	tok    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{prompt: plain, banner: plain, result: plain, errMsg: plain, tok: plain}
	}
	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		banner: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		result: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		tok:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// New creates an interactive session with the given options
func New(opts Options) *REPL {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = minklog.GetDefault()
	}

	return &REPL{
		input:  opts.Input,
		output: opts.Output,
		prompt: cfg.REPL.Prompt,
		parser: parser.New(parser.Options{
			Logger:         logger,
			MaxInputLength: cfg.Parser.MaxInputLength,
		}),
		logger: logger.WithField("component", "repl"),
		styles: newStyles(cfg.REPL.Color),
	}
}

// Run executes the read-eval-print loop until end of input or a quit
// command
func (r *REPL) Run() error {
	r.printBanner()

	scanner := bufio.NewScanner(r.input)
	for {
		fmt.Fprint(r.output, r.styles.prompt.Render(r.prompt))

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(r.output)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := r.handleCommand(line); quit {
				return nil
			}
			continue
		}

		if r.tokenMode {
			r.printTokens(line)
		} else {
			r.printProgram(line)
		}
	}
}

// handleCommand processes a session command and reports whether the
// session should end
func (r *REPL) handleCommand(line string) bool {
	switch line {
	case ":quit", ":exit", ":q":
		fmt.Fprintln(r.output, "Bye!")
		return true

	case ":tokens":
		r.tokenMode = !r.tokenMode
		if r.tokenMode {
			fmt.Fprintln(r.output, "Token mode on. Lines are lexed, not parsed.")
		} else {
			fmt.Fprintln(r.output, "Token mode off.")
		}

	case ":help":
		fmt.Fprintln(r.output, "Commands:")
		fmt.Fprintln(r.output, "  :tokens  toggle token mode")
		fmt.Fprintln(r.output, "  :help    show this help")
		fmt.Fprintln(r.output, "  :quit    leave the session")

	default:
		fmt.Fprintln(r.output, r.styles.errMsg.Render(
			fmt.Sprintf("unknown command %s (try :help)", line)))
	}

	return false
}

// printProgram parses the line and prints the canonical AST rendering, or
// every syntax error the parse recorded
func (r *REPL) printProgram(line string) {
	program, err := r.parser.Parse(line)
	if err != nil {
		r.logger.Debug("line rejected", minklog.Fields{
			"errors": len(r.parser.Errors()),
		})
		for _, msg := range r.parser.Errors() {
			fmt.Fprintln(r.output, r.styles.errMsg.Render("parse error: "+msg))
		}
		return
	}

	fmt.Fprintln(r.output, r.styles.result.Render(program.String()))
}

// printTokens lexes the line and prints one token per line
func (r *REPL) printTokens(line string) {
	lex := lexer.New(line)
	for _, tok := range lex.Tokenize() {
		if tok.Type == token.EOF {
			break
		}
		fmt.Fprintln(r.output, r.styles.tok.Render(tok.String()))
	}
}

// printBanner prints the session greeting
func (r *REPL) printBanner() {
	fmt.Fprintln(r.output, r.styles.banner.Render("Mink interactive session"))
	fmt.Fprintln(r.output, "Type Mink statements, or :help for commands.")
}
