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
	"github.com/wdamron/mono/types"
)

// DefaultMaxTypeDepth bounds the recursion depth of unification and the occurs-check.
const DefaultMaxTypeDepth = 10000

// Unify finds the most general extension of s which makes a and b equal. The substitution s is not
// modified. If a and b cannot be made equal, the returned error is a *UnificationError.
func Unify(a, b types.Type, s types.Subst) (types.Subst, error) {
	u := unifier{maxDepth: DefaultMaxTypeDepth}
	return u.unify(a, b, s, 0)
}

// UnifyAll unifies equations in order, starting from an empty substitution. Unification stops at the
// first equation which cannot be satisfied; later equations are not evaluated. The returned error is
// a *UnificationError which refers to the unsatisfied equation.
func UnifyAll(eqs []Equation) (types.Subst, error) {
	return unifyAll(eqs, DefaultMaxTypeDepth)
}

func unifyAll(eqs []Equation, maxDepth int) (types.Subst, error) {
	u := unifier{maxDepth: maxDepth}
	s := types.EmptySubst
	for i := range eqs {
		next, err := u.unify(eqs[i].Left, eqs[i].Right, s, 0)
		if err != nil {
			if uerr, ok := err.(*UnificationError); ok {
				eq := eqs[i]
				uerr.Equation = &eq
			}
			return types.Subst{}, err
		}
		s = next
	}
	return s, nil
}

type unifier struct {
	maxDepth int
}

func (u *unifier) unify(a, b types.Type, s types.Subst, depth int) (types.Subst, error) {
	if depth > u.maxDepth {
		return types.Subst{}, &UnificationError{Left: a, Right: b, Err: ErrTypeTooDeep}
	}
	if types.Equal(a, b) {
		return s, nil
	}

	// unify type variables:

	if av, ok := a.(*types.Var); ok {
		return u.bind(av, b, s, depth)
	}
	if bv, ok := b.(*types.Var); ok {
		return u.bind(bv, a, s, depth)
	}

	// unify types:

	switch a := a.(type) {
	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		if len(a.Args) != len(b.Args) {
			return types.Subst{}, conflict(a, b, s, ErrArityMismatch)
		}
		var err error
		for i := range a.Args {
			if s, err = u.unify(a.Args[i], b.Args[i], s, depth+1); err != nil {
				return types.Subst{}, err
			}
		}
		return u.unify(a.Return, b.Return, s, depth+1)
	}

	return types.Subst{}, conflict(a, b, s, ErrTypeMismatch)
}

// Bind v to t, or unify the existing bindings of v and t.
func (u *unifier) bind(v *types.Var, t types.Type, s types.Subst, depth int) (types.Subst, error) {
	if bound, ok := s.Lookup(v); ok {
		return u.unify(bound, t, s, depth+1)
	}
	if tv, ok := t.(*types.Var); ok {
		if bound, ok := s.Lookup(tv); ok {
			return u.unify(v, bound, s, depth+1)
		}
	}
	occurs, err := u.occurs(v, t, s, depth)
	if err != nil {
		return types.Subst{}, &UnificationError{Left: v, Right: t, Err: err}
	}
	if occurs {
		return types.Subst{}, conflict(v, t, s, ErrOccursCheck)
	}
	return s.Extend(v, t), nil
}

// Check whether v occurs within t, directly or through bindings in s.
func (u *unifier) occurs(v *types.Var, t types.Type, s types.Subst, depth int) (bool, error) {
	if depth > u.maxDepth {
		return false, ErrTypeTooDeep
	}
	switch t := t.(type) {
	case *types.Var:
		if t.Name == v.Name {
			return true, nil
		}
		if bound, ok := s.Lookup(t); ok {
			return u.occurs(v, bound, s, depth+1)
		}
		return false, nil

	case *types.Arrow:
		for _, arg := range t.Args {
			if occurs, err := u.occurs(v, arg, s, depth+1); occurs || err != nil {
				return occurs, err
			}
		}
		return u.occurs(v, t.Return, s, depth+1)

	default:
		return false, nil
	}
}

func conflict(a, b types.Type, s types.Subst, err error) *UnificationError {
	return &UnificationError{Left: types.Resolve(a, s), Right: types.Resolve(b, s), Err: err}
}
