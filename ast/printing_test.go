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

import "testing"

func TestExprString(t *testing.T) {
	x, y := &Ident{Name: "x"}, &Ident{Name: "y"}
	cases := []struct {
		e Expr
		s string
	}{
		{&IntLit{Value: -3}, "-3"},
		{&BoolLit{Value: true}, "true"},
		{&Op{Operator: Add, Left: x, Right: y}, "x + y"},
		{&Op{Operator: Mul, Left: &Op{Operator: Add, Left: x, Right: y}, Right: &IntLit{Value: 2}}, "(x + y) * 2"},
		{&If{Cond: &Op{Operator: Gt, Left: x, Right: &IntLit{Value: 0}}, Then: y, Else: x}, "if x > 0 then y else x"},
		{&Call{Func: &Ident{Name: "f"}, Args: []Expr{x, &Call{Func: &Ident{Name: "g"}, Args: []Expr{y}}}}, "f(x, g(y))"},
		{&Call{Func: &Func{ArgNames: []string{"x"}, Body: x}, Args: []Expr{y}}, "(lambda x -> x)(y)"},
		{&Func{ArgNames: []string{"f", "x"}, Body: &Call{Func: &Ident{Name: "f"}, Args: []Expr{x}}}, "lambda f x -> f(x)"},
	}
	for _, c := range cases {
		if s := ExprString(c.e); s != c.s {
			t.Fatalf("expected %q, found %q", c.s, s)
		}
	}
}

func TestDecl(t *testing.T) {
	body := &Op{Operator: Add, Left: &Ident{Name: "x"}, Right: &Ident{Name: "y"}}
	d := &Decl{Name: "add", Params: []string{"x", "y"}, Body: body}
	if s := DeclString(d); s != "add x y = x + y" {
		t.Fatalf("decl: %s", s)
	}
	fn, ok := d.Value().(*Func)
	if !ok || fn.Body != body || len(fn.ArgNames) != 2 {
		t.Fatalf("expected a function over the declaration body, found %s", ExprString(d.Value()))
	}

	d = &Decl{Name: "oops", Body: &Ident{Name: "undefinedName"}}
	if d.Value() != d.Body {
		t.Fatalf("expected a declaration without parameters to denote its body")
	}
	if s := DeclString(d); s != "oops = undefinedName" {
		t.Fatalf("decl: %s", s)
	}
}

func TestWalkExpr(t *testing.T) {
	e := &Func{
		ArgNames: []string{"x"},
		Body: &If{
			Cond: &Op{Operator: Lt, Left: &Ident{Name: "x"}, Right: &IntLit{Value: 1}},
			Then: &Call{Func: &Ident{Name: "f"}, Args: []Expr{&BoolLit{Value: false}}},
			Else: &Ident{Name: "x"},
		},
	}
	var names []string
	WalkExpr(e, func(e Expr) { names = append(names, e.ExprName()) })
	expected := []string{"Func", "If", "Op", "Ident", "IntLit", "Call", "Ident", "BoolLit", "Ident"}
	if len(names) != len(expected) {
		t.Fatalf("visited: %v", names)
	}
	for i := range names {
		if names[i] != expected[i] {
			t.Fatalf("visited: %v", names)
		}
	}
}

func TestOperators(t *testing.T) {
	for _, op := range []string{Eq, Ne, Lt, Le, Gt, Ge} {
		if !IsComparison(op) || IsArithmetic(op) {
			t.Fatalf("expected %s to be a comparison", op)
		}
	}
	for _, op := range []string{Add, Sub, Mul, Div} {
		if IsComparison(op) || !IsArithmetic(op) {
			t.Fatalf("expected %s to be arithmetic", op)
		}
	}
	if (&Op{Operator: "%"}).Valid() {
		t.Fatalf("expected unknown operator to be invalid")
	}
}

func TestCopyExpr(t *testing.T) {
	e := &Func{
		ArgNames: []string{"f", "x"},
		Body: &If{
			Cond: &Op{Operator: Le, Left: &Ident{Name: "x"}, Right: &IntLit{Value: 0}},
			Then: &BoolLit{Value: true},
			Else: &Call{Func: &Ident{Name: "f"}, Args: []Expr{&Ident{Name: "x"}}},
		},
	}
	c := CopyExpr(e).(*Func)
	if ExprString(c) != ExprString(e) {
		t.Fatalf("expected %s, found %s", ExprString(e), ExprString(c))
	}
	seen := make(map[Expr]bool)
	WalkExpr(e, func(e Expr) { seen[e] = true })
	WalkExpr(c, func(e Expr) {
		if seen[e] {
			t.Fatalf("expected the copy to share no nodes, found %s", ExprString(e))
		}
	})
	c.ArgNames[0] = "g"
	if e.ArgNames[0] != "f" {
		t.Fatalf("expected parameter names to be copied")
	}
}
