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

// CopyExpr returns a deep copy of e. Copies never share nodes with e, so a copied sub-tree may be
// placed in the same tree as the original.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *IntLit:
		return &IntLit{e.Value}

	case *BoolLit:
		return &BoolLit{e.Value}

	case *Ident:
		return &Ident{e.Name}

	case *Op:
		return &Op{e.Operator, CopyExpr(e.Left), CopyExpr(e.Right)}

	case *If:
		return &If{CopyExpr(e.Cond), CopyExpr(e.Then), CopyExpr(e.Else)}

	case *Call:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &Call{CopyExpr(e.Func), args}

	case *Func:
		argNames := make([]string, len(e.ArgNames))
		copy(argNames, e.ArgNames)
		return &Func{argNames, CopyExpr(e.Body)}

	case nil:
		return nil
	}

	panic("unknown expression type")
}
