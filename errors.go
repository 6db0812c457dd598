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
	"errors"

	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

var (
	ErrEmptyExpr          = errors.New("Empty expression")
	ErrUnboundIdentifier  = errors.New("unbound identifier")
	ErrDuplicateParameter = errors.New("duplicate parameter")
	ErrUnsupportedExpr    = errors.New("unsupported expression")

	// ErrConflict matches every *UnificationError.
	ErrConflict = errors.New("type conflict")

	// Kinds of unification failure:
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrArityMismatch = errors.New("number of arguments do not match")
	ErrOccursCheck   = errors.New("implicitly recursive types are not supported")
	ErrTypeTooDeep   = errors.New("type nesting exceeds the depth limit")
)

// UnboundIdentifierError reports an identifier which is not bound in the type-environment or an
// enclosing function.
type UnboundIdentifierError struct {
	Name string
	Expr *ast.Ident
}

func (e *UnboundIdentifierError) Error() string { return "unbound identifier " + e.Name }

func (e *UnboundIdentifierError) Unwrap() error { return ErrUnboundIdentifier }

// DuplicateParameterError reports a function which declares the same parameter more than once.
type DuplicateParameterError struct {
	Name string
	Expr *ast.Func
}

func (e *DuplicateParameterError) Error() string { return "duplicate parameter " + e.Name }

func (e *DuplicateParameterError) Unwrap() error { return ErrDuplicateParameter }

// UnsupportedExprError reports an expression without a typing rule. This indicates a malformed
// tree, not a type error in the program.
type UnsupportedExprError struct {
	Expr   ast.Expr
	Reason string
}

func (e *UnsupportedExprError) Error() string {
	if e.Expr == nil {
		return "unsupported expression: " + e.Reason
	}
	return "unsupported expression " + e.Expr.ExprName() + ": " + e.Reason
}

func (e *UnsupportedExprError) Unwrap() error { return ErrUnsupportedExpr }

// UnificationError reports a pair of types which cannot be made equal.
//
// All unification errors match ErrConflict. Err identifies the kind of failure: ErrTypeMismatch,
// ErrArityMismatch, ErrOccursCheck, or ErrTypeTooDeep.
type UnificationError struct {
	// Equation which could not be satisfied. Equation is nil for errors returned by Unify.
	Equation *Equation
	// Types which failed to unify, resolved with the substitution at the point of failure.
	Left  types.Type
	Right types.Type
	Err   error
}

func (e *UnificationError) Error() string {
	msg := "cannot unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right) + ": " + e.Err.Error()
	if e.Equation != nil && e.Equation.Expr != nil {
		msg += " [from " + ast.ExprString(e.Equation.Expr) + "]"
	}
	return msg
}

func (e *UnificationError) Unwrap() error { return e.Err }

func (e *UnificationError) Is(target error) bool { return target == ErrConflict }

// ErrorKind returns a short name for the kind of an inference error: `unbound`, `duplicate`,
// `unsupported`, `mismatch`, `arity`, `occurs`, or `depth`. An empty string is returned for
// other errors.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnboundIdentifier):
		return "unbound"
	case errors.Is(err, ErrDuplicateParameter):
		return "duplicate"
	case errors.Is(err, ErrUnsupportedExpr), errors.Is(err, ErrEmptyExpr):
		return "unsupported"
	case errors.Is(err, ErrTypeMismatch):
		return "mismatch"
	case errors.Is(err, ErrArityMismatch):
		return "arity"
	case errors.Is(err, ErrOccursCheck):
		return "occurs"
	case errors.Is(err, ErrTypeTooDeep):
		return "depth"
	}
	return ""
}
