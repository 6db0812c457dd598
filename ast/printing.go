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

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// DeclString returns a string representation of a declaration: `add x y = x + y`
func DeclString(d *Decl) string {
	var sb strings.Builder
	sb.WriteString(d.Name)
	for _, param := range d.Params {
		sb.WriteByte(' ')
		sb.WriteString(param)
	}
	sb.WriteString(" = ")
	exprString(&sb, false, d.Body)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *IntLit:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Ident:
		sb.WriteString(et.Name)

	case *Op:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Operator)
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("lambda")
		for _, arg := range et.ArgNames {
			sb.WriteByte(' ')
			sb.WriteString(arg)
		}
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")
	}
}
