// File: nodes.go
// Title: Mink AST Node Definitions
// Description: Defines all AST node types for representing parsed Mink
//              programs including statements, expressions, and blocks.
//              Provides the canonical string rendering used as the test
//              oracle and basic structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/mink/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical string rendering of the node. The
	// rendering fully parenthesizes prefix and infix expressions so the
	// output unambiguously reflects parsed structure.
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Pos returns the token that introduced the node
	Pos() token.Token

	// Validate performs basic structural validation of the node
	Validate() error
}

// Statement represents the base interface for all statement nodes
type Statement interface {
	Node
	stmtNode() // marker method
}

// Expression represents the base interface for all expression nodes
type Expression interface {
	Node
	exprNode() // marker method
}

// Program represents an ordered sequence of top-level statements. It owns
// the whole tree; it is built incrementally during parsing and must be
// treated as immutable afterwards.
type Program struct {
	Statements []Statement
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{Statements: []Statement{}}
}

// AddStatement appends a statement to the program
func (p *Program) AddStatement(stmt Statement) {
	p.Statements = append(p.Statements, stmt)
}

func (p *Program) String() string {
	var out strings.Builder
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Pos() token.Token {
	if len(p.Statements) == 0 {
		return token.Token{Type: token.EOF}
	}
	return p.Statements[0].Pos()
}

func (p *Program) Validate() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// Identifier represents a name bound or referenced in the program
type Identifier struct {
	Token token.Token // The token.Ident token
	Value string      // Identifier name
}

// NewIdentifier constructs an Identifier from a token. Only token.Ident
// tokens are accepted.
func NewIdentifier(tok token.Token) (*Identifier, error) {
	if tok.Type != token.Ident {
		return nil, fmt.Errorf("cannot build identifier from %s token", tok.Type)
	}
	return &Identifier{Token: tok, Value: tok.Literal}, nil
}

func (i *Identifier) String() string { return i.Value }

func (i *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) Pos() token.Token { return i.Token }

func (i *Identifier) Validate() error {
	if i.Value == "" {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

func (i *Identifier) exprNode() {}

// IntegerLiteral represents a 64-bit signed integer literal
type IntegerLiteral struct {
	Token token.Token // The token.Int token
	Value int64
}

func (il *IntegerLiteral) String() string {
	return strconv.FormatInt(il.Value, 10)
}

func (il *IntegerLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntegerLiteral(il)
}

func (il *IntegerLiteral) Pos() token.Token { return il.Token }

func (il *IntegerLiteral) Validate() error { return nil }

func (il *IntegerLiteral) exprNode() {}

// BooleanLiteral represents a true or false literal
type BooleanLiteral struct {
	Token token.Token // The token.Bool token
	Value bool
}

func (bl *BooleanLiteral) String() string {
	return strconv.FormatBool(bl.Value)
}

func (bl *BooleanLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitBooleanLiteral(bl)
}

func (bl *BooleanLiteral) Pos() token.Token { return bl.Token }

func (bl *BooleanLiteral) Validate() error { return nil }

func (bl *BooleanLiteral) exprNode() {}

// PrefixExpression represents a prefix operator applied to an operand
type PrefixExpression struct {
	Token    token.Token // The prefix operator token (! or -)
	Operator token.Type  // Operator type
	Right    Expression  // Operand
}

func (pe *PrefixExpression) String() string {
	return fmt.Sprintf("(%s%s)", pe.Operator, pe.Right)
}

func (pe *PrefixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixExpression(pe)
}

func (pe *PrefixExpression) Pos() token.Token { return pe.Token }

func (pe *PrefixExpression) Validate() error {
	if pe.Right == nil {
		return fmt.Errorf("prefix operand is required")
	}
	return pe.Right.Validate()
}

func (pe *PrefixExpression) exprNode() {}

// InfixExpression represents a binary operator applied to two operands
type InfixExpression struct {
	Token    token.Token // The infix operator token
	Left     Expression  // Left operand
	Operator token.Type  // Operator type
	Right    Expression  // Right operand
}

func (ie *InfixExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ie.Left, ie.Operator, ie.Right)
}

func (ie *InfixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitInfixExpression(ie)
}

func (ie *InfixExpression) Pos() token.Token { return ie.Token }

func (ie *InfixExpression) Validate() error {
	if ie.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if ie.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if err := ie.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := ie.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (ie *InfixExpression) exprNode() {}

// IfExpression represents a conditional with an optional alternative
type IfExpression struct {
	Token       token.Token     // The token.If token
	Condition   Expression      // Condition expression
	Consequence *BlockStatement // Block taken when the condition holds
	Alternative *BlockStatement // Optional else block, nil when absent
}

func (ie *IfExpression) String() string {
	var out strings.Builder
	out.WriteString("if ")
	out.WriteString(ie.Condition.String())
	out.WriteString(" ")
	out.WriteString(ie.Consequence.String())
	if ie.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

func (ie *IfExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitIfExpression(ie)
}

func (ie *IfExpression) Pos() token.Token { return ie.Token }

func (ie *IfExpression) Validate() error {
	if ie.Condition == nil {
		return fmt.Errorf("condition is required")
	}
	if ie.Consequence == nil {
		return fmt.Errorf("consequence is required")
	}
	if err := ie.Condition.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	if err := ie.Consequence.Validate(); err != nil {
		return fmt.Errorf("consequence: %w", err)
	}
	if ie.Alternative != nil {
		if err := ie.Alternative.Validate(); err != nil {
			return fmt.Errorf("alternative: %w", err)
		}
	}
	return nil
}

func (ie *IfExpression) exprNode() {}

// FunctionLiteral represents an anonymous function expression
type FunctionLiteral struct {
	Token      token.Token     // The token.Function token
	Parameters []*Identifier   // Ordered parameter names
	Body       *BlockStatement // Function body
}

func (fl *FunctionLiteral) String() string {
	params := make([]string, 0, len(fl.Parameters))
	for _, p := range fl.Parameters {
		params = append(params, p.String())
	}
	return fmt.Sprintf("fn(%s) %s", strings.Join(params, ", "), fl.Body)
}

func (fl *FunctionLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionLiteral(fl)
}

func (fl *FunctionLiteral) Pos() token.Token { return fl.Token }

func (fl *FunctionLiteral) Validate() error {
	for i, p := range fl.Parameters {
		if p == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}
	if fl.Body == nil {
		return fmt.Errorf("function body is required")
	}
	return fl.Body.Validate()
}

func (fl *FunctionLiteral) exprNode() {}

// CallExpression represents a function applied to an argument list
type CallExpression struct {
	Token     token.Token  // The token.LParen token that triggered the call
	Function  Expression   // Identifier or function literal being called
	Arguments []Expression // Ordered call arguments
}

func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return fmt.Sprintf("%s(%s)", ce.Function, strings.Join(args, ", "))
}

func (ce *CallExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpression(ce)
}

func (ce *CallExpression) Pos() token.Token { return ce.Token }

func (ce *CallExpression) Validate() error {
	if ce.Function == nil {
		return fmt.Errorf("call target is required")
	}
	if err := ce.Function.Validate(); err != nil {
		return fmt.Errorf("call target: %w", err)
	}
	for i, a := range ce.Arguments {
		if a == nil {
			return fmt.Errorf("argument %d is nil", i)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

func (ce *CallExpression) exprNode() {}

// LetStatement represents a let binding of an initializer to a name
type LetStatement struct {
	Token token.Token // The token.Let token
	Name  *Identifier // Bound identifier
	Value Expression  // Initializer expression
}

func (ls *LetStatement) String() string {
	return fmt.Sprintf("let %s = %s;", ls.Name, ls.Value)
}

func (ls *LetStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitLetStatement(ls)
}

func (ls *LetStatement) Pos() token.Token { return ls.Token }

func (ls *LetStatement) Validate() error {
	if ls.Name == nil {
		return fmt.Errorf("binding name is required")
	}
	if ls.Value == nil {
		return fmt.Errorf("initializer is required")
	}
	if err := ls.Name.Validate(); err != nil {
		return fmt.Errorf("binding name: %w", err)
	}
	if err := ls.Value.Validate(); err != nil {
		return fmt.Errorf("initializer: %w", err)
	}
	return nil
}

func (ls *LetStatement) stmtNode() {}

// ReturnStatement represents a return of a value from the enclosing scope
type ReturnStatement struct {
	Token token.Token // The token.Return token
	Value Expression  // Returned expression
}

func (rs *ReturnStatement) String() string {
	return fmt.Sprintf("return %s;", rs.Value)
}

func (rs *ReturnStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturnStatement(rs)
}

func (rs *ReturnStatement) Pos() token.Token { return rs.Token }

func (rs *ReturnStatement) Validate() error {
	if rs.Value == nil {
		return fmt.Errorf("return value is required")
	}
	return rs.Value.Validate()
}

func (rs *ReturnStatement) stmtNode() {}

// ExpressionStatement represents an expression in statement position
type ExpressionStatement struct {
	Token token.Token // First token of the expression
	Value Expression  // Wrapped expression
}

func (es *ExpressionStatement) String() string {
	// No trailing semicolon is emitted for expression statements.
	return es.Value.String()
}

func (es *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(es)
}

func (es *ExpressionStatement) Pos() token.Token { return es.Token }

func (es *ExpressionStatement) Validate() error {
	if es.Value == nil {
		return fmt.Errorf("expression is required")
	}
	return es.Value.Validate()
}

func (es *ExpressionStatement) stmtNode() {}

// BlockStatement represents an ordered sequence of statements in braces
type BlockStatement struct {
	Token      token.Token // The token.LBrace token
	Statements []Statement
}

func (bs *BlockStatement) String() string {
	var out strings.Builder
	out.WriteString("{")
	for _, stmt := range bs.Statements {
		out.WriteString(stmt.String())
	}
	out.WriteString("}")
	return out.String()
}

func (bs *BlockStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlockStatement(bs)
}

func (bs *BlockStatement) Pos() token.Token { return bs.Token }

func (bs *BlockStatement) Validate() error {
	for i, stmt := range bs.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

func (bs *BlockStatement) stmtNode() {}
