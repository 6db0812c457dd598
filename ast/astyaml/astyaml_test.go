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

package astyaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wdamron/mono/ast"
)

const decls = `
- name: add
  params: [x, y]
  body:
    op: {operator: "+", left: {ident: x}, right: {ident: y}}
  type: (Int, Int) -> Int

- name: pick
  params: [x, y]
  body:
    if:
      cond: {op: {operator: ">", left: {ident: x}, right: {int: 0}}}
      then: {ident: x}
      else: {ident: y}

- name: apply
  body:
    lambda:
      params: [f, x]
      body: {call: {func: {ident: f}, args: [{ident: x}, {bool: false}]}}

- name: oops
  body: {ident: undefinedName}
  error: unbound
`

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(decls))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"add x y = x + y",
		"pick x y = if x > 0 then x else y",
		"apply = lambda f x -> f(x, false)",
		"oops = undefinedName",
	}
	if len(ds) != len(expected) {
		t.Fatalf("expected %d declarations, found %d", len(expected), len(ds))
	}
	for i, d := range ds {
		if s := ast.DeclString(d.AST()); s != expected[i] {
			t.Fatalf("expected %q, found %q", expected[i], s)
		}
	}
	if ds[0].Type != "(Int, Int) -> Int" || ds[3].Error != "unbound" {
		t.Fatalf("expected declaration expectations to be decoded")
	}
	if ds[0].Line != 2 || ds[3].Line != 22 {
		t.Fatalf("unexpected declaration lines: %d, %d", ds[0].Line, ds[3].Line)
	}
}

func TestDecodeEmpty(t *testing.T) {
	ds, err := Decode(strings.NewReader(""))
	if err != nil || len(ds) != 0 {
		t.Fatalf("expected no declarations, found %d (%v)", len(ds), err)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		src  string
		line int
		msg  string
	}{
		{"name: x", 1, "expected a sequence of declarations"},
		{"- name: x\n  body: {int: 1}\n  kind: int", 3, `unknown declaration field "kind"`},
		{"- params: [x]\n  body: {ident: x}", 1, "declaration without a name"},
		{"- name: x", 1, "declaration x without a body"},
		{"- name: x\n  body: {int: 1, bool: true}", 2, "expression must be a mapping with exactly one key"},
		{"- name: x\n  body:\n    int: one", 3, `invalid integer "one"`},
		{"- name: x\n  body:\n    float: 1.5", 3, `unknown expression kind "float"`},
		{"- name: x\n  body:\n    op: {operator: +, left: {int: 1}}", 3, `missing field "right"`},
		{"- name: x\n  body:\n    call:\n      func: {ident: f}\n      args: [{int: 1}]\n      kwargs: []", 6, `unknown field "kwargs"`},
		{"- name: x\n  body: {int: 1}\n  type: Int\n  error: mismatch", 1, "declaration x expects both a type and an error"},
		{"- name: x\n  body: &a {op: {operator: \"+\", left: *a, right: {int: 1}}}", 2, `alias "a" contains itself`},
		{"- name: x\n  body:\n    call:\n      func: &f {call: {func: {ident: g}, args: [*f]}}\n      args: []", 4, `alias "f" contains itself`},
	}
	for _, c := range cases {
		_, err := Decode(strings.NewReader(c.src))
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("%q: expected a syntax error, found %v", c.src, err)
		}
		if serr.Line != c.line || serr.Msg != c.msg {
			t.Fatalf("%q: expected line %d: %s, found %v", c.src, c.line, c.msg, serr)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ds, err := Decode(strings.NewReader(decls))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = Encode(&buf, ds); err != nil {
		t.Fatal(err)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if len(again) != len(ds) {
		t.Fatalf("expected %d declarations, found %d", len(ds), len(again))
	}
	for i := range ds {
		before, after := ast.DeclString(ds[i].AST()), ast.DeclString(again[i].AST())
		if before != after || ds[i].Type != again[i].Type || ds[i].Error != again[i].Error {
			t.Fatalf("expected %q, found %q", before, after)
		}
	}
}

func TestExpr(t *testing.T) {
	e, err := UnmarshalExpr([]byte("lambda: {params: [b], body: {if: {cond: {ident: b}, then: {int: -1}, else: {int: 1}}}}"))
	if err != nil {
		t.Fatal(err)
	}
	if s := ast.ExprString(e); s != "lambda b -> if b then -1 else 1" {
		t.Fatalf("expr: %s", s)
	}
	data, err := MarshalExpr(e)
	if err != nil {
		t.Fatal(err)
	}
	again, err := UnmarshalExpr(data)
	if err != nil {
		t.Fatalf("%v\n%s", err, data)
	}
	if ast.ExprString(again) != ast.ExprString(e) {
		t.Fatalf("expected %s, found %s", ast.ExprString(e), ast.ExprString(again))
	}

	if _, err = MarshalExpr(&ast.Op{Operator: ast.Add, Left: &ast.IntLit{Value: 1}}); err == nil {
		t.Fatalf("expected a missing operand to fail encoding")
	}
	if _, err = UnmarshalExpr(nil); err == nil {
		t.Fatalf("expected an empty document to fail decoding")
	}
}

func TestAliases(t *testing.T) {
	src := `
- name: square
  params: [x]
  body:
    op:
      operator: "*"
      left: &sum {op: {operator: "+", left: {ident: x}, right: {int: 1}}}
      right: *sum
`
	ds, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	op := ds[0].Body.Expr.(*ast.Op)
	if ast.ExprString(op) != "(x + 1) * (x + 1)" {
		t.Fatalf("expr: %s", ast.ExprString(op))
	}
	if op.Left == op.Right {
		t.Fatalf("expected each alias to decode to a separate expression")
	}
}

func TestAliasLimits(t *testing.T) {
	_, err := UnmarshalExpr([]byte(`&a {op: {operator: "+", left: *a, right: {int: 1}}}`))
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.Line != 1 || serr.Msg != `alias "a" contains itself` {
		t.Fatalf("expected a self-referencing alias to be rejected, found %v", err)
	}

	// Each level refers to the previous level twice, doubling the size of the expanded tree.
	src := "{int: 1}"
	for i := 0; i < 20; i++ {
		src = fmt.Sprintf(`{op: {operator: "+", left: &x%d %s, right: *x%d}}`, i, src, i)
	}
	_, err = UnmarshalExpr([]byte(src))
	if !errors.As(err, &serr) || serr.Msg != fmt.Sprintf("expression exceeds %d nodes", MaxExprNodes) {
		t.Fatalf("expected alias expansion to be bounded, found %v", err)
	}

	// Smaller trees expand normally.
	src = "{int: 1}"
	for i := 0; i < 3; i++ {
		src = fmt.Sprintf(`{op: {operator: "+", left: &x%d %s, right: *x%d}}`, i, src, i)
	}
	e, err := UnmarshalExpr([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if s := ast.ExprString(e); s != "((1 + 1) + (1 + 1)) + ((1 + 1) + (1 + 1))" {
		t.Fatalf("expr: %s", s)
	}
}

func TestFromAST(t *testing.T) {
	d := &ast.Decl{Name: "id", Params: []string{"x"}, Body: &ast.Ident{Name: "x"}}
	var buf bytes.Buffer
	if err := Encode(&buf, []*Decl{FromAST(d)}); err != nil {
		t.Fatal(err)
	}
	expected := "- name: id\n  params: [x]\n  body:\n    ident: x\n"
	if buf.String() != expected {
		t.Fatalf("expected:\n%s\nfound:\n%s", expected, buf.String())
	}
}
