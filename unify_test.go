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
	"testing"

	"github.com/wdamron/mono/ast"
	. "github.com/wdamron/mono/construct"
	"github.com/wdamron/mono/types"
)

func TestUnifyEqualTypes(t *testing.T) {
	s := types.EmptySubst.Extend(TVar("t9"), TInt())
	for _, ty := range []types.Type{TInt(), TVar("t0"), TArrow2(TVar("t0"), TBool(), TVar("t1"))} {
		next, err := Unify(ty, ty, s)
		if err != nil {
			t.Fatal(err)
		}
		if !next.Equal(s) {
			t.Fatalf("expected unifying %s with itself to return the substitution unchanged", types.TypeString(ty))
		}
	}
}

func TestUnifyArrows(t *testing.T) {
	a := TArrow2(TVar("t0"), TInt(), TVar("t1"))
	b := TArrow2(TBool(), TVar("t2"), TVar("t0"))
	s, err := Unify(a, b, types.EmptySubst)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "{t0: Bool, t1: Bool, t2: Int}" {
		t.Fatalf("subst: %s", s.String())
	}
	if !types.Equal(types.Resolve(a, s), types.Resolve(b, s)) {
		t.Fatalf("expected %s and %s to be equal after unification", types.TypeString(types.Resolve(a, s)), types.TypeString(types.Resolve(b, s)))
	}
}

func TestUnifyChainedVars(t *testing.T) {
	s := types.EmptySubst.Extend(TVar("t0"), TVar("t1")).Extend(TVar("t1"), TInt())
	next, err := Unify(TVar("t0"), TInt(), s)
	if err != nil {
		t.Fatal(err)
	}
	if next.Len() != 2 {
		t.Fatalf("expected no new bindings, found %s", next.String())
	}
	if _, err = Unify(TVar("t0"), TBool(), s); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected a mismatch through the chain, found %v", err)
	}
}

func TestUnifyFailures(t *testing.T) {
	cases := []struct {
		a, b types.Type
		s    types.Subst
		err  error
	}{
		{TInt(), TBool(), types.EmptySubst, ErrTypeMismatch},
		{TArrow1(TInt(), TInt()), TInt(), types.EmptySubst, ErrTypeMismatch},
		{TArrow1(TInt(), TInt()), TArrow2(TInt(), TInt(), TInt()), types.EmptySubst, ErrArityMismatch},
		{TVar("t0"), TArrow1(TVar("t0"), TInt()), types.EmptySubst, ErrOccursCheck},
		// occurs through an existing binding
		{TVar("t0"), TArrow1(TVar("t1"), TInt()), types.EmptySubst.Extend(TVar("t1"), TVar("t0")), ErrOccursCheck},
	}
	for _, c := range cases {
		_, err := Unify(c.a, c.b, c.s)
		if !errors.Is(err, c.err) || !errors.Is(err, ErrConflict) {
			t.Fatalf("%s with %s: expected %v, found %v", types.TypeString(c.a), types.TypeString(c.b), c.err, err)
		}
		var uerr *UnificationError
		if !errors.As(err, &uerr) || uerr.Equation != nil {
			t.Fatalf("expected a unification error without an equation, found %v", err)
		}
	}
}

func TestUnifyDoesNotMutate(t *testing.T) {
	s := types.EmptySubst.Extend(TVar("t0"), TInt())
	if _, err := Unify(TVar("t1"), TBool(), s); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected the input substitution to be unchanged, found %s", s.String())
	}
}

func TestUnifyAllStopsAtFirstFailure(t *testing.T) {
	one, two := Int(1), Int(2)
	eqs := []Equation{
		{TVar("t0"), TInt(), one},
		{TVar("t0"), TBool(), two},
		// never evaluated; would fail with an arity mismatch
		{TArrow1(TInt(), TInt()), TArrow2(TInt(), TInt(), TInt()), one},
	}
	s, err := UnifyAll(eqs)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected the second equation to fail, found %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected an empty substitution on failure")
	}
	var uerr *UnificationError
	errors.As(err, &uerr)
	if uerr.Equation == nil || uerr.Equation.Expr != ast.Expr(two) {
		t.Fatalf("expected the failing equation to be reported")
	}
	if err.Error() != "cannot unify Int with Bool: type mismatch [from 2]" {
		t.Fatalf("error: %s", err.Error())
	}

	s, err = UnifyAll(nil)
	if err != nil || s.Len() != 0 {
		t.Fatalf("expected an empty substitution for no equations")
	}
}

func TestUnifyDepthLimit(t *testing.T) {
	var deep types.Type = TInt()
	for i := 0; i < 20; i++ {
		deep = TArrow1(TInt(), deep)
	}
	u := unifier{maxDepth: 5}
	_, err := u.unify(TVar("t0"), deep, types.EmptySubst, 0)
	if !errors.Is(err, ErrTypeTooDeep) {
		t.Fatalf("expected the depth limit to be exceeded, found %v", err)
	}
	if _, err = Unify(TVar("t0"), deep, types.EmptySubst); err != nil {
		t.Fatalf("expected the default depth limit to allow the type, found %v", err)
	}
}
