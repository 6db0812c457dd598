// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

// Expr is an expression node. The set of expressions is closed; expressions are never modified
// by type inference, so a tree may be shared across inference runs.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Op)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
)

// Operators
const (
	Add = "+"
	Sub = "-"
	Mul = "*"
	Div = "/"
	Eq  = "=="
	Ne  = "!="
	Lt  = "<"
	Le  = "<="
	Gt  = ">"
	Ge  = ">="
)

// IsComparison reports whether op compares integers, producing a boolean.
func IsComparison(op string) bool {
	switch op {
	case Eq, Ne, Lt, Le, Gt, Ge:
		return true
	}
	return false
}

// IsArithmetic reports whether op combines integers, producing an integer.
func IsArithmetic(op string) bool {
	switch op {
	case Add, Sub, Mul, Div:
		return true
	}
	return false
}

// Integer literal: `42`
type IntLit struct {
	Value int64
}

func (e *IntLit) ExprName() string { return "IntLit" }

// Boolean literal: `true`
type BoolLit struct {
	Value bool
}

func (e *BoolLit) ExprName() string { return "BoolLit" }

// Identifier: `x`
type Ident struct {
	Name string
}

func (e *Ident) ExprName() string { return "Ident" }

// Binary operator: `x + y`
type Op struct {
	Operator string
	Left     Expr
	Right    Expr
}

func (e *Op) ExprName() string { return "Op" }

// Valid reports whether the operator is known.
func (e *Op) Valid() bool { return IsArithmetic(e.Operator) || IsComparison(e.Operator) }

// Conditional: `if c then x else y`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) ExprName() string { return "If" }

// Application: `f(x, y)`
type Call struct {
	Func Expr
	Args []Expr
}

func (e *Call) ExprName() string { return "Call" }

// Abstraction: `lambda x y -> x`
type Func struct {
	ArgNames []string
	Body     Expr
}

func (e *Func) ExprName() string { return "Func" }

func (*IntLit) isExpr()  {}
func (*BoolLit) isExpr() {}
func (*Ident) isExpr()   {}
func (*Op) isExpr()      {}
func (*If) isExpr()      {}
func (*Call) isExpr()    {}
func (*Func) isExpr()    {}

// Decl is a named declaration: `add x y = x + y`
//
// A declaration with parameters denotes a function of its parameters.
type Decl struct {
	Name   string
	Params []string
	Body   Expr
}

// Value returns the expression denoted by the declaration. A declaration with parameters is
// equivalent to a Func over its body; a declaration without parameters denotes its body.
func (d *Decl) Value() Expr {
	if len(d.Params) == 0 {
		return d.Body
	}
	return &Func{ArgNames: d.Params, Body: d.Body}
}
