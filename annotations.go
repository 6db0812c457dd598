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
	"strings"

	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

// Annotations contains the types assigned to the expressions of a single tree during one inference run.
//
// The expression tree is not modified; types are recorded by expression identity. All sub-expressions
// of the tree, other than literals and identifiers, must have unique addresses.
type Annotations struct {
	// Equations generated for the tree, in the order they were unified. Equations are only
	// available from annotations returned by InferenceContext.Annotate.
	Equations []Equation
	// Final substitution produced by unification.
	Subst types.Subst

	root      ast.Expr
	assigned  map[ast.Expr]types.Type
	params    map[*ast.Func][]*types.Var
	order     []ast.Expr
	canonical bool
}

func newAnnotations(root ast.Expr) *Annotations {
	return &Annotations{
		root:      root,
		assigned:  make(map[ast.Expr]types.Type, 16),
		params:    make(map[*ast.Func][]*types.Var),
		canonical: true,
	}
}

// Root returns the annotated expression.
func (a *Annotations) Root() ast.Expr { return a.root }

// Len returns the number of annotated expressions.
func (a *Annotations) Len() int { return len(a.order) }

// TypeOf returns the type assigned to e before unification. Literals are assigned a base type;
// all other expressions are assigned a type-variable.
func (a *Annotations) TypeOf(e ast.Expr) types.Type { return a.assigned[e] }

// ParamTypes returns the type-variables assigned to the parameters of f, in declaration order.
func (a *Annotations) ParamTypes(f *ast.Func) []*types.Var { return a.params[f] }

// ResolvedType returns the type of e after applying the final substitution.
func (a *Annotations) ResolvedType(e ast.Expr) types.Type {
	t := a.assigned[e]
	if t == nil {
		return nil
	}
	return types.Resolve(t, a.Subst)
}

// Type returns the inferred type of the root expression. Type-variables are renamed canonically
// unless canonical names were disabled for the inference context.
func (a *Annotations) Type() types.Type {
	t := a.ResolvedType(a.root)
	if a.canonical && t != nil {
		t = types.Canonicalize(t)
	}
	return t
}

// String returns the typename assignment for each annotated expression, in pre-order.
func (a *Annotations) String() string {
	const width = 40
	var sb strings.Builder
	for _, e := range a.order {
		s := ast.ExprString(e)
		sb.WriteString(s)
		if pad := width - len(s); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteByte(' ')
		sb.WriteString(types.TypeString(a.assigned[e]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
