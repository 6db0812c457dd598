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

package mono

import (
	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

// Equation is a constraint which requires two types to be equal.
type Equation struct {
	Left  types.Type
	Right types.Type
	// Expression whose typing rule produced the equation
	Expr ast.Expr
}

// String returns a representation of the equation: `t1 :: Int [from x + 1]`
func (eq Equation) String() string {
	return types.TypeString(eq.Left) + " :: " + types.TypeString(eq.Right) + " [from " + ast.ExprString(eq.Expr) + "]"
}

// GenerateEquations produces the equations for the annotated tree. Equations for the sub-expressions
// of an expression precede the equations for the expression itself.
//
// Generation is deterministic, and does not modify the annotations.
func (a *Annotations) GenerateEquations() []Equation {
	return a.generate(a.root, make([]Equation, 0, 2*len(a.order)))
}

func (a *Annotations) generate(e ast.Expr, eqs []Equation) []Equation {
	switch e := e.(type) {
	case *ast.IntLit:
		return append(eqs, Equation{a.assigned[e], types.Int, e})

	case *ast.BoolLit:
		return append(eqs, Equation{a.assigned[e], types.Bool, e})

	case *ast.Ident:
		// constrained through the type bound in scope
		return eqs

	case *ast.Op:
		eqs = a.generate(e.Left, eqs)
		eqs = a.generate(e.Right, eqs)
		result := types.Int
		if ast.IsComparison(e.Operator) {
			result = types.Bool
		}
		return append(eqs,
			Equation{a.assigned[e.Left], types.Int, e},
			Equation{a.assigned[e.Right], types.Int, e},
			Equation{a.assigned[e], result, e})

	case *ast.Call:
		eqs = a.generate(e.Func, eqs)
		args := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			eqs = a.generate(arg, eqs)
			args[i] = a.assigned[arg]
		}
		return append(eqs, Equation{a.assigned[e.Func], types.NewArrow(args, a.assigned[e]), e})

	case *ast.If:
		eqs = a.generate(e.Cond, eqs)
		eqs = a.generate(e.Then, eqs)
		eqs = a.generate(e.Else, eqs)
		return append(eqs,
			Equation{a.assigned[e.Cond], types.Bool, e},
			Equation{a.assigned[e], a.assigned[e.Then], e},
			Equation{a.assigned[e], a.assigned[e.Else], e})

	case *ast.Func:
		eqs = a.generate(e.Body, eqs)
		params := a.params[e]
		args := make([]types.Type, len(params))
		for i, tv := range params {
			args[i] = tv
		}
		return append(eqs, Equation{a.assigned[e], types.NewArrow(args, a.assigned[e.Body]), e})
	}

	panic("unannotated expression")
}
