// File: parser.go
// Title: Mink Recursive Descent Parser
// Description: Implements the parsing phase of the Mink front end. Converts
//              token streams into Abstract Syntax Trees using recursive
//              descent with operator-precedence (Pratt) expression parsing.
//              Statement-level errors are recorded and parsing resumes at
//              the next statement boundary, so a whole program parse reports
//              every error it found.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/msto63/mink/ast"
	minkerror "github.com/msto63/mink/core/error"
	minklog "github.com/msto63/mink/core/log"
	"github.com/msto63/mink/lexer"
	"github.com/msto63/mink/token"
)

// Precedence represents an operator binding strength. Higher values bind
// tighter. The ordering of the constants is load-bearing for the
// precedence-climbing loop.
type Precedence int

const (
	Lowest      Precedence = iota + 1
	Equals                 // ==, !=
	LessGreater            // <, >
	Sum                    // +, -
	Product                // *, /
	Prefix                 // -x, !x
	Call                   // add(x, y)
)

// precedenceOf returns the infix binding strength of a token type.
// Non-operator tokens bind at Lowest, which terminates the climbing loop.
func precedenceOf(t token.Type) Precedence {
	switch t {
	case token.Eq, token.NotEq:
		return Equals
	case token.LT, token.GT:
		return LessGreater
	case token.Plus, token.Minus:
		return Sum
	case token.Asterisk, token.Slash:
		return Product
	case token.LParen:
		return Call
	default:
		return Lowest
	}
}

// Parser implements recursive descent parsing for Mink with one token of
// lookahead. A Parser may be reused across inputs; each Parse call creates
// a fresh lexer and error list.
type Parser struct {
	lexer   *lexer.Lexer
	cur     token.Token // Current token
	peek    token.Token // Next unconsumed token
	errs    *multierror.Error
	logger  *minklog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	// Logger for parser diagnostics (optional, defaults to default logger)
	Logger *minklog.Logger

	// MaxInputLength limits input length in bytes (default: 65536)
	MaxInputLength int
}

// New creates a new Mink parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = minklog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 65536
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// Parse parses a complete Mink program and returns its AST. When one or
// more statements fail to parse, the result is nil and the returned error
// aggregates every recorded message in source order.
func (p *Parser) Parse(input string) (*ast.Program, error) {
	p.errs = nil

	// Recorded like any other failure so Errors() reports it too.
	if len(input) > p.options.MaxInputLength {
		p.errs = multierror.Append(p.errs, minkerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(minkerror.CodeInvalidInput))
		return nil, p.errs.ErrorOrNil()
	}

	p.lexer = lexer.New(input)
	p.advance() // Load peek
	p.advance() // Load cur, peek

	p.logger.Debug("starting program parse", minklog.Fields{
		"length": len(input),
	})

	program := ast.NewProgram()

	for p.cur.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			p.errs = multierror.Append(p.errs, err)
			p.synchronize()
			continue
		}
		program.AddStatement(stmt)
		p.advance()
	}

	if p.errs != nil {
		p.logger.Warn("program parse failed", minklog.Fields{
			"errors": p.errs.Len(),
		})
		return nil, p.errs.ErrorOrNil()
	}

	p.logger.Debug("program parse completed", minklog.Fields{
		"statements": len(program.Statements),
	})

	return program, nil
}

// Errors returns the messages recorded during the most recent Parse call,
// in source order. Empty when the parse succeeded.
func (p *Parser) Errors() []string {
	if p.errs == nil {
		return nil
	}
	messages := make([]string, 0, p.errs.Len())
	for _, err := range p.errs.WrappedErrors() {
		messages = append(messages, err.Error())
	}
	return messages
}

// parseStatement parses a single statement starting at the current token.
// It leaves the current token on the last token of the statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let <identifier> = <expression>;`
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	stmt := &ast.LetStatement{Token: p.cur}

	if p.peek.Type != token.Ident {
		return nil, p.errorExpectedIdentifier(p.peek)
	}
	p.advance()

	name, err := ast.NewIdentifier(p.cur)
	if err != nil {
		return nil, minkerror.Wrap(err, "let binding").
			WithCode(minkerror.CodeExpectedIdentifier)
	}
	stmt.Name = name

	if err := p.expectPeek(token.Assign); err != nil {
		return nil, err
	}

	p.advance() // Move to the first token of the initializer
	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if err := p.expectPeek(token.Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

// parseReturnStatement parses `return <expression>;`
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	stmt := &ast.ReturnStatement{Token: p.cur}

	p.advance() // Move to the first token of the return value
	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if err := p.expectPeek(token.Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

// parseExpressionStatement parses an expression in statement position.
// The trailing semicolon is optional, so single expressions parse without
// a terminator.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	stmt := &ast.ExpressionStatement{Token: p.cur}

	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peek.Type == token.Semicolon {
		p.advance()
	}

	return stmt, nil
}

// parseExpression implements the precedence-climbing loop: parse a primary
// term, then fold infix operators whose binding strength strictly exceeds
// the caller's minimum. Leaves the current token on the last token of the
// expression.
func (p *Parser) parseExpression(precedence Precedence) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.peek.Type != token.Semicolon && precedence < precedenceOf(p.peek.Type) {
		p.advance()
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrimary parses a primary term from the current token
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur.Type {
	case token.Ident:
		return ast.NewIdentifier(p.cur)

	case token.Int:
		return p.parseIntegerLiteral()

	case token.Bool:
		return &ast.BooleanLiteral{Token: p.cur, Value: p.cur.Literal == "true"}, nil

	case token.Bang, token.Minus:
		return p.parsePrefixExpression()

	case token.LParen:
		return p.parseGroupedExpression()

	case token.If:
		return p.parseIfExpression()

	case token.Function:
		return p.parseFunctionLiteral()

	case token.EOF:
		return nil, minkerror.New("unexpected end of input while parsing expression").
			WithCode(minkerror.CodeUnexpectedEOF).
			WithDetail("line", p.cur.Line).
			WithDetail("column", p.cur.Column)

	case token.Illegal:
		return nil, minkerror.Newf("illegal token %q at line %d, column %d",
			p.cur.Literal, p.cur.Line, p.cur.Column).
			WithCode(minkerror.CodeIllegalToken).
			WithDetail("line", p.cur.Line).
			WithDetail("column", p.cur.Column)

	default:
		return nil, minkerror.Newf("unexpected token %s in expression at line %d, column %d",
			p.cur.Type, p.cur.Line, p.cur.Column).
			WithCode(minkerror.CodeUnexpectedToken).
			WithDetail("actual", p.cur.Type.String()).
			WithDetail("line", p.cur.Line).
			WithDetail("column", p.cur.Column)
	}
}

// parseIntegerLiteral parses the current token as a 64-bit signed integer
func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		return nil, minkerror.Newf("integer literal %q out of range at line %d, column %d",
			p.cur.Literal, p.cur.Line, p.cur.Column).
			WithCode(minkerror.CodeIntegerRange).
			WithDetail("line", p.cur.Line).
			WithDetail("column", p.cur.Column)
	}
	return &ast.IntegerLiteral{Token: p.cur, Value: value}, nil
}

// parsePrefixExpression parses `!<operand>` or `-<operand>` with the
// operand bound at Prefix precedence
func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	expr := &ast.PrefixExpression{Token: p.cur, Operator: p.cur.Type}

	p.advance()
	right, err := p.parseExpression(Prefix)
	if err != nil {
		return nil, err
	}
	expr.Right = right

	return expr, nil
}

// parseGroupedExpression parses `(<expression>)`
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.advance() // Move past '('

	expr, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}

	return expr, nil
}

// parseIfExpression parses `if (<condition>) <block> [else <block>]`
func (p *Parser) parseIfExpression() (ast.Expression, error) {
	expr := &ast.IfExpression{Token: p.cur}

	if err := p.expectPeek(token.LParen); err != nil {
		return nil, err
	}

	p.advance() // Move to the first token of the condition
	condition, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBrace); err != nil {
		return nil, err
	}

	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	expr.Consequence = consequence

	if p.peek.Type == token.Else {
		p.advance()

		if err := p.expectPeek(token.LBrace); err != nil {
			return nil, err
		}

		alternative, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		expr.Alternative = alternative
	}

	return expr, nil
}

// parseBlockStatement loops the statement parser until the matching
// closing brace, producing a true statement sequence. The current token
// must be the opening brace on entry and is the closing brace on exit.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.cur}

	p.advance() // Move past '{'

	for p.cur.Type != token.RBrace && p.cur.Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.advance()
	}

	if p.cur.Type != token.RBrace {
		return nil, minkerror.Newf("expected %s, got end of input at line %d, column %d",
			token.RBrace, p.cur.Line, p.cur.Column).
			WithCode(minkerror.CodeUnexpectedEOF).
			WithDetail("expected", token.RBrace.String()).
			WithDetail("line", p.cur.Line).
			WithDetail("column", p.cur.Column)
	}

	return block, nil
}

// parseFunctionLiteral parses `fn(<parameters>) <block>`
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	fl := &ast.FunctionLiteral{Token: p.cur}

	if err := p.expectPeek(token.LParen); err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	fl.Parameters = params

	if err := p.expectPeek(token.LBrace); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	fl.Body = body

	return fl, nil
}

// parseFunctionParameters parses a comma-separated identifier list. The
// current token must be the opening parenthesis on entry and is the
// closing parenthesis on exit.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	params := []*ast.Identifier{}

	if p.peek.Type == token.RParen {
		p.advance()
		return params, nil
	}

	if p.peek.Type != token.Ident {
		return nil, p.errorExpectedIdentifier(p.peek)
	}
	p.advance()

	param, err := ast.NewIdentifier(p.cur)
	if err != nil {
		return nil, minkerror.Wrap(err, "function parameter").
			WithCode(minkerror.CodeExpectedIdentifier)
	}
	params = append(params, param)

	for p.peek.Type == token.Comma {
		p.advance() // Move to ','
		if p.peek.Type != token.Ident {
			return nil, p.errorExpectedIdentifier(p.peek)
		}
		p.advance()

		param, err := ast.NewIdentifier(p.cur)
		if err != nil {
			return nil, minkerror.Wrap(err, "function parameter").
				WithCode(minkerror.CodeExpectedIdentifier)
		}
		params = append(params, param)
	}

	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}

	return params, nil
}

// parseInfix parses an infix construct whose operator is the current
// token. A '(' after an expression triggers call parsing; every other
// operator folds into an InfixExpression with the right operand bound at
// the operator's own precedence.
func (p *Parser) parseInfix(left ast.Expression) (ast.Expression, error) {
	if p.cur.Type == token.LParen {
		return p.parseCallExpression(left)
	}

	expr := &ast.InfixExpression{
		Token:    p.cur,
		Left:     left,
		Operator: p.cur.Type,
	}

	precedence := precedenceOf(p.cur.Type)
	p.advance()

	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	expr.Right = right

	return expr, nil
}

// parseCallExpression parses `<callee>(<arguments>)`. The current token
// must be the opening parenthesis on entry and is the closing parenthesis
// on exit.
func (p *Parser) parseCallExpression(fn ast.Expression) (ast.Expression, error) {
	call := &ast.CallExpression{Token: p.cur, Function: fn}

	if p.peek.Type == token.RParen {
		p.advance()
		return call, nil
	}

	p.advance() // Move to the first argument
	arg, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	call.Arguments = append(call.Arguments, arg)

	for p.peek.Type == token.Comma {
		p.advance() // Move to ','
		p.advance() // Move to the next argument
		arg, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, arg)
	}

	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}

	return call, nil
}

// synchronize advances the lookahead to the next statement boundary after
// a failed statement: past the next semicolon, or up to a statement-leading
// keyword, or to end of input. This keeps one bad statement from
// corrupting the parse of the rest of the program.
func (p *Parser) synchronize() {
	if p.cur.Type == token.EOF {
		return
	}
	p.advance()

	for p.cur.Type != token.EOF {
		switch p.cur.Type {
		case token.Semicolon:
			p.advance()
			return
		case token.Let, token.Return:
			return
		}
		p.advance()
	}
}

// advance moves the lookahead window one token forward
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

// expectPeek consumes the next token when it matches the expected type and
// reports a descriptive mismatch otherwise
func (p *Parser) expectPeek(t token.Type) error {
	if p.peek.Type == t {
		p.advance()
		return nil
	}

	if p.peek.Type == token.EOF {
		return minkerror.Newf("expected %s, got end of input at line %d, column %d",
			t, p.peek.Line, p.peek.Column).
			WithCode(minkerror.CodeUnexpectedEOF).
			WithDetail("expected", t.String()).
			WithDetail("line", p.peek.Line).
			WithDetail("column", p.peek.Column)
	}

	return minkerror.Newf("expected next token to be %s, got %s at line %d, column %d",
		t, p.peek.Type, p.peek.Line, p.peek.Column).
		WithCode(minkerror.CodeUnexpectedToken).
		WithDetail("expected", t.String()).
		WithDetail("actual", p.peek.Type.String()).
		WithDetail("line", p.peek.Line).
		WithDetail("column", p.peek.Column)
}

// errorExpectedIdentifier reports a missing required identifier
func (p *Parser) errorExpectedIdentifier(got token.Token) error {
	actual := got.Type.String()
	if got.Type == token.EOF {
		actual = "end of input"
	}
	return minkerror.Newf("expected identifier, got %s at line %d, column %d",
		actual, got.Line, got.Column).
		WithCode(minkerror.CodeExpectedIdentifier).
		WithDetail("actual", got.Type.String()).
		WithDetail("line", got.Line).
		WithDetail("column", got.Column)
}
