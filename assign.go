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

// Assign a type to e and each of its sub-expressions. Identifiers are assigned the type bound in env;
// function parameters are bound to fresh type-variables within the function body.
func (ti *InferenceContext) assign(a *Annotations, env TypeEnv, e ast.Expr) error {
	switch e := e.(type) {
	case *ast.IntLit:
		return ti.setType(a, e, types.Int)

	case *ast.BoolLit:
		return ti.setType(a, e, types.Bool)

	case *ast.Ident:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return ti.fail(e, &UnboundIdentifierError{Name: e.Name, Expr: e})
		}
		return ti.setType(a, e, t)

	case *ast.Op:
		if !e.Valid() {
			return ti.fail(e, &UnsupportedExprError{Expr: e, Reason: "unknown operator " + e.Operator})
		}
		if err := ti.setType(a, e, ti.varTracker.New()); err != nil {
			return err
		}
		if err := ti.assign(a, env, e.Left); err != nil {
			return err
		}
		return ti.assign(a, env, e.Right)

	case *ast.If:
		if err := ti.setType(a, e, ti.varTracker.New()); err != nil {
			return err
		}
		if err := ti.assign(a, env, e.Cond); err != nil {
			return err
		}
		if err := ti.assign(a, env, e.Then); err != nil {
			return err
		}
		return ti.assign(a, env, e.Else)

	case *ast.Call:
		if len(e.Args) == 0 {
			return ti.fail(e, &UnsupportedExprError{Expr: e, Reason: "application without arguments"})
		}
		if err := ti.setType(a, e, ti.varTracker.New()); err != nil {
			return err
		}
		if err := ti.assign(a, env, e.Func); err != nil {
			return err
		}
		for _, arg := range e.Args {
			if err := ti.assign(a, env, arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.Func:
		if len(e.ArgNames) == 0 {
			return ti.fail(e, &UnsupportedExprError{Expr: e, Reason: "function without parameters"})
		}
		for i, name := range e.ArgNames {
			for _, prev := range e.ArgNames[:i] {
				if prev == name {
					return ti.fail(e, &DuplicateParameterError{Name: name, Expr: e})
				}
			}
		}
		if err := ti.setType(a, e, ti.varTracker.New()); err != nil {
			return err
		}
		params := ti.varTracker.NewList(len(e.ArgNames))
		a.params[e] = params
		scope := env
		for i, name := range e.ArgNames {
			scope = scope.Declare(name, params[i])
		}
		return ti.assign(a, scope, e.Body)

	case nil:
		return ti.fail(e, &UnsupportedExprError{Reason: "missing expression"})
	}

	return ti.fail(e, &UnsupportedExprError{Expr: e, Reason: "no typing rule"})
}

func (ti *InferenceContext) setType(a *Annotations, e ast.Expr, t types.Type) error {
	if existing, ok := a.assigned[e]; ok {
		switch e.(type) {
		case *ast.IntLit, *ast.BoolLit:
			return nil
		case *ast.Ident:
			if types.Equal(existing, t) {
				return nil
			}
		}
		return ti.fail(e, &UnsupportedExprError{Expr: e, Reason: "sub-expression appears more than once in the tree"})
	}
	a.assigned[e] = t
	a.order = append(a.order, e)
	return nil
}

func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	ti.invalid, ti.err = e, err
	return err
}
