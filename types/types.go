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

package types

import (
	"errors"
	"strconv"
)

// Type is the base interface for all types. The set of types is closed: Base, *Arrow and *Var.
type Type interface {
	TypeName() string
	isType()
}

func (t Base) TypeName() string   { return "Base" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Var) TypeName() string   { return "Var" }

func (Base) isType()   {}
func (*Arrow) isType() {}
func (*Var) isType()   {}

// Base type: `Int` or `Bool`
type Base uint8

const (
	Int Base = iota + 1
	Bool
)

func (t Base) String() string {
	switch t {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	}
	return "Base(" + strconv.Itoa(int(t)) + ")"
}

// Function type: `(Int, Int) -> Bool`
type Arrow struct {
	Args   []Type
	Return Type
}

// Create a function type. A function type must have at least one argument.
func NewArrow(args []Type, ret Type) *Arrow {
	if len(args) == 0 {
		panic("types: function type without arguments")
	}
	return &Arrow{Args: args, Return: ret}
}

// Type variable
type Var struct {
	Name string
}

// Create a type-variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

// Equal reports whether a and b have the same shape. Variables are compared by name;
// bindings in a substitution are not consulted.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case Base:
		b, ok := b.(Base)
		return ok && a == b
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		if !ok || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return Equal(a.Return, b.Return)
	}
	return false
}

var (
	ErrNilType      = errors.New("nil type")
	ErrInvalidBase  = errors.New("invalid base type")
	ErrEmptyArrow   = errors.New("function type without arguments")
	ErrEmptyVarName = errors.New("type variable without a name")
)

// Validate checks that t is well-formed.
func Validate(t Type) error {
	switch t := t.(type) {
	case Base:
		if t != Int && t != Bool {
			return ErrInvalidBase
		}
		return nil
	case *Var:
		if t == nil {
			return ErrNilType
		}
		if t.Name == "" {
			return ErrEmptyVarName
		}
		return nil
	case *Arrow:
		if t == nil {
			return ErrNilType
		}
		if len(t.Args) == 0 {
			return ErrEmptyArrow
		}
		for _, arg := range t.Args {
			if err := Validate(arg); err != nil {
				return err
			}
		}
		return Validate(t.Return)
	}
	return ErrNilType
}

// Vars returns the distinct type-variables within t, in order of first occurrence
// (arguments before the return type).
func Vars(t Type) []*Var {
	var vars []*Var
	seen := make(map[string]bool)
	var visit func(Type)
	visit = func(t Type) {
		switch t := t.(type) {
		case *Var:
			if !seen[t.Name] {
				seen[t.Name] = true
				vars = append(vars, t)
			}
		case *Arrow:
			for _, arg := range t.Args {
				visit(arg)
			}
			visit(t.Return)
		}
	}
	visit(t)
	return vars
}
