// File: visitor_test.go
// Title: Mink AST Visitor Unit Tests
// Description: Tests the tree printer and identifier collector visitors
//              against hand-built AST trees.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial visitor test suite

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreePrinter(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Name:  ident("x"),
				Value: intLit(5),
			},
		},
	}

	printer := NewTreePrinter()
	program.Accept(printer)

	expected := "Program\n" +
		"  LetStatement: x\n" +
		"    IntegerLiteral: 5\n"
	assert.Equal(t, expected, printer.String())

	printer.Reset()
	assert.Equal(t, "", printer.String())
}

func TestIdentifierCollector(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Name: ident("x"),
				Value: &CallExpression{
					Function:  ident("add"),
					Arguments: []Expression{ident("a"), ident("b")},
				},
			},
			&ExpressionStatement{
				Value: &IfExpression{
					Condition: ident("cond"),
					Consequence: &BlockStatement{
						Statements: []Statement{
							&ExpressionStatement{Value: ident("a")},
						},
					},
				},
			},
		},
	}

	collector := NewIdentifierCollector()
	program.Accept(collector)

	assert.Equal(t, []string{"a", "add", "b", "cond", "x"}, collector.Names())
}
