// File: visitor.go
// Title: Mink AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              Mink AST nodes. Provides the base visitor with default
//              traversal plus visitors for tree dumps and identifier
//              collection used by the CLI tooling.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit program and statement nodes
	VisitProgram(program *Program) interface{}
	VisitLetStatement(stmt *LetStatement) interface{}
	VisitReturnStatement(stmt *ReturnStatement) interface{}
	VisitExpressionStatement(stmt *ExpressionStatement) interface{}
	VisitBlockStatement(stmt *BlockStatement) interface{}

	// Visit expression nodes
	VisitIdentifier(expr *Identifier) interface{}
	VisitIntegerLiteral(expr *IntegerLiteral) interface{}
	VisitBooleanLiteral(expr *BooleanLiteral) interface{}
	VisitPrefixExpression(expr *PrefixExpression) interface{}
	VisitInfixExpression(expr *InfixExpression) interface{}
	VisitIfExpression(expr *IfExpression) interface{}
	VisitFunctionLiteral(expr *FunctionLiteral) interface{}
	VisitCallExpression(expr *CallExpression) interface{}
}

// BaseVisitor provides default traversal for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} {
	for _, stmt := range program.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLetStatement(stmt *LetStatement) interface{} {
	if stmt.Name != nil {
		stmt.Name.Accept(bv)
	}
	if stmt.Value != nil {
		stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitReturnStatement(stmt *ReturnStatement) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBlockStatement(stmt *BlockStatement) interface{} {
	for _, s := range stmt.Statements {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIdentifier(expr *Identifier) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIntegerLiteral(expr *IntegerLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBooleanLiteral(expr *BooleanLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitPrefixExpression(expr *PrefixExpression) interface{} {
	if expr.Right != nil {
		return expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitInfixExpression(expr *InfixExpression) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIfExpression(expr *IfExpression) interface{} {
	if expr.Condition != nil {
		expr.Condition.Accept(bv)
	}
	if expr.Consequence != nil {
		expr.Consequence.Accept(bv)
	}
	if expr.Alternative != nil {
		expr.Alternative.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunctionLiteral(expr *FunctionLiteral) interface{} {
	for _, p := range expr.Parameters {
		p.Accept(bv)
	}
	if expr.Body != nil {
		expr.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitCallExpression(expr *CallExpression) interface{} {
	if expr.Function != nil {
		expr.Function.Accept(bv)
	}
	for _, a := range expr.Arguments {
		a.Accept(bv)
	}
	return nil
}

// TreePrinter creates an indented tree representation of the AST,
// one node per line. Used by the CLI for structural dumps.
type TreePrinter struct {
	buffer strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// String returns the built tree representation
func (tp *TreePrinter) String() string {
	return tp.buffer.String()
}

// Reset clears the internal buffer
func (tp *TreePrinter) Reset() {
	tp.buffer.Reset()
	tp.indent = 0
}

func (tp *TreePrinter) writeLine(format string, args ...interface{}) {
	for i := 0; i < tp.indent; i++ {
		tp.buffer.WriteString("  ")
	}
	tp.buffer.WriteString(fmt.Sprintf(format, args...))
	tp.buffer.WriteString("\n")
}

func (tp *TreePrinter) VisitProgram(program *Program) interface{} {
	tp.writeLine("Program")
	tp.indent++
	for _, stmt := range program.Statements {
		stmt.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitLetStatement(stmt *LetStatement) interface{} {
	tp.writeLine("LetStatement: %s", stmt.Name)
	tp.indent++
	stmt.Value.Accept(tp)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitReturnStatement(stmt *ReturnStatement) interface{} {
	tp.writeLine("ReturnStatement")
	tp.indent++
	stmt.Value.Accept(tp)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	tp.writeLine("ExpressionStatement")
	tp.indent++
	stmt.Value.Accept(tp)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitBlockStatement(stmt *BlockStatement) interface{} {
	tp.writeLine("BlockStatement")
	tp.indent++
	for _, s := range stmt.Statements {
		s.Accept(tp)
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitIdentifier(expr *Identifier) interface{} {
	tp.writeLine("Identifier: %s", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitIntegerLiteral(expr *IntegerLiteral) interface{} {
	tp.writeLine("IntegerLiteral: %d", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitBooleanLiteral(expr *BooleanLiteral) interface{} {
	tp.writeLine("BooleanLiteral: %t", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitPrefixExpression(expr *PrefixExpression) interface{} {
	tp.writeLine("PrefixExpression: %s", expr.Operator)
	tp.indent++
	expr.Right.Accept(tp)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitInfixExpression(expr *InfixExpression) interface{} {
	tp.writeLine("InfixExpression: %s", expr.Operator)
	tp.indent++
	expr.Left.Accept(tp)
	expr.Right.Accept(tp)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitIfExpression(expr *IfExpression) interface{} {
	tp.writeLine("IfExpression")
	tp.indent++
	tp.writeLine("Condition")
	tp.indent++
	expr.Condition.Accept(tp)
	tp.indent--
	tp.writeLine("Consequence")
	tp.indent++
	expr.Consequence.Accept(tp)
	tp.indent--
	if expr.Alternative != nil {
		tp.writeLine("Alternative")
		tp.indent++
		expr.Alternative.Accept(tp)
		tp.indent--
	}
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitFunctionLiteral(expr *FunctionLiteral) interface{} {
	params := make([]string, 0, len(expr.Parameters))
	for _, p := range expr.Parameters {
		params = append(params, p.Value)
	}
	tp.writeLine("FunctionLiteral(%s)", strings.Join(params, ", "))
	tp.indent++
	expr.Body.Accept(tp)
	tp.indent--
	return nil
}

func (tp *TreePrinter) VisitCallExpression(expr *CallExpression) interface{} {
	tp.writeLine("CallExpression")
	tp.indent++
	expr.Function.Accept(tp)
	for _, a := range expr.Arguments {
		a.Accept(tp)
	}
	tp.indent--
	return nil
}

// IdentifierCollector collects the distinct identifier names referenced
// anywhere in a tree. It carries its own traversal because embedded base
// traversal would dispatch on the base visitor, not the collector.
type IdentifierCollector struct {
	BaseVisitor
	seen map[string]bool
}

// NewIdentifierCollector creates a new identifier collector
func NewIdentifierCollector() *IdentifierCollector {
	return &IdentifierCollector{seen: make(map[string]bool)}
}

func (ic *IdentifierCollector) VisitIdentifier(expr *Identifier) interface{} {
	ic.seen[expr.Value] = true
	return nil
}

func (ic *IdentifierCollector) VisitProgram(program *Program) interface{} {
	for _, stmt := range program.Statements {
		stmt.Accept(ic)
	}
	return nil
}

func (ic *IdentifierCollector) VisitLetStatement(stmt *LetStatement) interface{} {
	stmt.Name.Accept(ic)
	stmt.Value.Accept(ic)
	return nil
}

func (ic *IdentifierCollector) VisitReturnStatement(stmt *ReturnStatement) interface{} {
	return stmt.Value.Accept(ic)
}

func (ic *IdentifierCollector) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	return stmt.Value.Accept(ic)
}

func (ic *IdentifierCollector) VisitBlockStatement(stmt *BlockStatement) interface{} {
	for _, s := range stmt.Statements {
		s.Accept(ic)
	}
	return nil
}

func (ic *IdentifierCollector) VisitPrefixExpression(expr *PrefixExpression) interface{} {
	return expr.Right.Accept(ic)
}

func (ic *IdentifierCollector) VisitInfixExpression(expr *InfixExpression) interface{} {
	expr.Left.Accept(ic)
	expr.Right.Accept(ic)
	return nil
}

func (ic *IdentifierCollector) VisitIfExpression(expr *IfExpression) interface{} {
	expr.Condition.Accept(ic)
	expr.Consequence.Accept(ic)
	if expr.Alternative != nil {
		expr.Alternative.Accept(ic)
	}
	return nil
}

func (ic *IdentifierCollector) VisitFunctionLiteral(expr *FunctionLiteral) interface{} {
	for _, p := range expr.Parameters {
		p.Accept(ic)
	}
	expr.Body.Accept(ic)
	return nil
}

func (ic *IdentifierCollector) VisitCallExpression(expr *CallExpression) interface{} {
	expr.Function.Accept(ic)
	for _, a := range expr.Arguments {
		a.Accept(ic)
	}
	return nil
}

// Names returns the collected identifier names in sorted order
func (ic *IdentifierCollector) Names() []string {
	names := make([]string, 0, len(ic.seen))
	for name := range ic.seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
