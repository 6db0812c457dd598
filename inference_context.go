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
	"github.com/wdamron/mono/internal/typeutil"
	"github.com/wdamron/mono/types"
)

// InferenceContext is a reusable context for type inference.
//
// Each call of Infer, InferDecl, Annotate, or AssignTypenames is an independent inference run: fresh
// type-variables are numbered from the type-environment's NextVarId for every run, and no state is
// carried between runs.
//
// An inference context cannot be used concurrently. Separate contexts may be used in parallel, and
// may share expression trees and type-environments.
type InferenceContext struct {
	canonical  bool
	maxDepth   int
	needsReset bool

	varTracker typeutil.VarTracker

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{canonical: true, maxDepth: DefaultMaxTypeDepth}
}

func (ti *InferenceContext) reset() {
	ti.varTracker.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Inferred types are renamed canonically (`a`, `b`, ...) when canonical names are enabled. Otherwise,
// type-variables retain the names allocated during inference.
//
// By default, canonical names are enabled.
func (ti *InferenceContext) EnableCanonicalNames(enabled bool) { ti.canonical = enabled }

// Set the maximum recursion depth for unification. A depth less than 1 restores DefaultMaxTypeDepth.
func (ti *InferenceContext) SetMaxTypeDepth(depth int) {
	if depth < 1 {
		depth = DefaultMaxTypeDepth
	}
	ti.maxDepth = depth
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env.
func (ti *InferenceContext) Infer(expr ast.Expr, env TypeEnv) (types.Type, error) {
	a, err := ti.Annotate(expr, env)
	if err != nil {
		return nil, err
	}
	return a.Type(), nil
}

// Infer the type of a declaration within env. The parameters of the declaration are bound to fresh
// type-variables within its body.
func (ti *InferenceContext) InferDecl(decl *ast.Decl, env TypeEnv) (types.Type, error) {
	return ti.Infer(decl.Value(), env)
}

// Infer the type of a declaration within env. See Annotate.
func (ti *InferenceContext) AnnotateDecl(decl *ast.Decl, env TypeEnv) (*Annotations, error) {
	return ti.Annotate(decl.Value(), env)
}

// Infer the type of expr within env. The returned annotations contain the types assigned to each
// expression, the generated equations, and the final substitution.
func (ti *InferenceContext) Annotate(expr ast.Expr, env TypeEnv) (*Annotations, error) {
	a, err := ti.AssignTypenames(expr, env)
	if err != nil {
		return nil, err
	}
	a.Equations = a.GenerateEquations()
	subst, err := unifyAll(a.Equations, ti.maxDepth)
	if err != nil {
		var invalid ast.Expr
		if uerr, ok := err.(*UnificationError); ok && uerr.Equation != nil {
			invalid = uerr.Equation.Expr
		}
		return nil, ti.fail(invalid, err)
	}
	a.Subst, a.canonical = subst, ti.canonical
	return a, nil
}

// Assign types to expr and each of its sub-expressions within env, without generating or unifying
// equations. Identifiers which are not bound in env or an enclosing function cause assignment to fail.
func (ti *InferenceContext) AssignTypenames(expr ast.Expr, env TypeEnv) (*Annotations, error) {
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if expr == nil {
		return nil, ti.fail(nil, ErrEmptyExpr)
	}
	ti.varTracker.NextId = env.NextVarId
	a := newAnnotations(expr)
	a.canonical = ti.canonical
	if err := ti.assign(a, env, expr); err != nil {
		return nil, err
	}
	return a, nil
}
