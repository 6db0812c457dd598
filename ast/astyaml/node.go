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
	"errors"

	"github.com/wdamron/mono/ast"
	"gopkg.in/yaml.v3"
)

// Node wraps an expression for encoding and decoding.
type Node struct {
	Expr ast.Expr
}

type opNode struct {
	Operator string `yaml:"operator"`
	Left     Node   `yaml:"left"`
	Right    Node   `yaml:"right"`
}

type ifNode struct {
	Cond Node `yaml:"cond"`
	Then Node `yaml:"then"`
	Else Node `yaml:"else"`
}

type callNode struct {
	Func Node   `yaml:"func"`
	Args []Node `yaml:"args"`
}

type lambdaNode struct {
	Params []string `yaml:"params,flow"`
	Body   Node     `yaml:"body"`
}

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	e, err := decodeExpr(value)
	if err != nil {
		return err
	}
	n.Expr = e
	return nil
}

func (n Node) MarshalYAML() (interface{}, error) {
	switch e := n.Expr.(type) {
	case *ast.IntLit:
		return map[string]int64{"int": e.Value}, nil
	case *ast.BoolLit:
		return map[string]bool{"bool": e.Value}, nil
	case *ast.Ident:
		return map[string]string{"ident": e.Name}, nil
	case *ast.Op:
		return map[string]opNode{"op": {Operator: e.Operator, Left: Node{e.Left}, Right: Node{e.Right}}}, nil
	case *ast.If:
		return map[string]ifNode{"if": {Cond: Node{e.Cond}, Then: Node{e.Then}, Else: Node{e.Else}}}, nil
	case *ast.Call:
		args := make([]Node, len(e.Args))
		for i, arg := range e.Args {
			args[i] = Node{arg}
		}
		return map[string]callNode{"call": {Func: Node{e.Func}, Args: args}}, nil
	case *ast.Func:
		return map[string]lambdaNode{"lambda": {Params: e.ArgNames, Body: Node{e.Body}}}, nil
	case nil:
		return nil, errors.New("cannot encode a missing expression")
	}
	return nil, errors.New("cannot encode expression " + n.Expr.ExprName())
}

// MaxExprNodes bounds the number of expressions decoded for a single tree. Each expansion of an
// alias counts separately.
const MaxExprNodes = 1 << 16

// exprDecoder decodes a tree by walking the document directly, so aliases are expanded in one
// place: an alias may not refer to a node which is being decoded, and expansion stops once
// MaxExprNodes expressions have been decoded.
type exprDecoder struct {
	active map[*yaml.Node]bool
	count  int
}

func decodeExpr(value *yaml.Node) (ast.Expr, error) {
	d := exprDecoder{active: make(map[*yaml.Node]bool)}
	return d.expr(value)
}

// Resolve an alias, and mark anchored nodes as active until leave is called.
func (d *exprDecoder) enter(n *yaml.Node) (*yaml.Node, error) {
	if n.Kind == yaml.AliasNode {
		if n.Alias == nil {
			return nil, syntaxErrorf(n, "unknown alias %q", n.Value)
		}
		if d.active[n.Alias] {
			return nil, syntaxErrorf(n, "alias %q contains itself", n.Value)
		}
		n = n.Alias
	}
	if n.Anchor != "" {
		d.active[n] = true
	}
	return n, nil
}

func (d *exprDecoder) leave(n *yaml.Node) { delete(d.active, n) }

func (d *exprDecoder) expr(value *yaml.Node) (ast.Expr, error) {
	value, err := d.enter(value)
	if err != nil {
		return nil, err
	}
	defer d.leave(value)

	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		return nil, nil
	}
	if d.count++; d.count > MaxExprNodes {
		return nil, syntaxErrorf(value, "expression exceeds %d nodes", MaxExprNodes)
	}
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return nil, syntaxErrorf(value, "expression must be a mapping with exactly one key")
	}
	key := value.Content[0]
	v, err := d.enter(value.Content[1])
	if err != nil {
		return nil, err
	}
	defer d.leave(v)

	switch key.Value {
	case "int":
		var i int64
		if err := v.Decode(&i); err != nil {
			return nil, syntaxErrorf(v, "invalid integer %q", v.Value)
		}
		return &ast.IntLit{Value: i}, nil

	case "bool":
		var b bool
		if err := v.Decode(&b); err != nil {
			return nil, syntaxErrorf(v, "invalid boolean %q", v.Value)
		}
		return &ast.BoolLit{Value: b}, nil

	case "ident":
		if v.Kind != yaml.ScalarNode || v.Value == "" {
			return nil, syntaxErrorf(v, "identifier must be a non-empty name")
		}
		return &ast.Ident{Name: v.Value}, nil

	case "op":
		f, err := fields(v, "operator", "left", "right")
		if err != nil {
			return nil, err
		}
		var operator string
		if err := f["operator"].Decode(&operator); err != nil || operator == "" {
			return nil, syntaxErrorf(f["operator"], "operator must be a non-empty string")
		}
		left, err := d.expr(f["left"])
		if err != nil {
			return nil, err
		}
		right, err := d.expr(f["right"])
		if err != nil {
			return nil, err
		}
		return &ast.Op{Operator: operator, Left: left, Right: right}, nil

	case "if":
		f, err := fields(v, "cond", "then", "else")
		if err != nil {
			return nil, err
		}
		var branches [3]ast.Expr
		for i, name := range [3]string{"cond", "then", "else"} {
			if branches[i], err = d.expr(f[name]); err != nil {
				return nil, err
			}
		}
		return &ast.If{Cond: branches[0], Then: branches[1], Else: branches[2]}, nil

	case "call":
		f, err := fields(v, "func", "args")
		if err != nil {
			return nil, err
		}
		fn, err := d.expr(f["func"])
		if err != nil {
			return nil, err
		}
		list, err := d.enter(f["args"])
		if err != nil {
			return nil, err
		}
		defer d.leave(list)
		if list.Kind != yaml.SequenceNode {
			return nil, syntaxErrorf(list, "arguments must be a sequence")
		}
		args := make([]ast.Expr, len(list.Content))
		for i, arg := range list.Content {
			if args[i], err = d.expr(arg); err != nil {
				return nil, err
			}
		}
		return &ast.Call{Func: fn, Args: args}, nil

	case "lambda":
		f, err := fields(v, "params", "body")
		if err != nil {
			return nil, err
		}
		var params []string
		if err := f["params"].Decode(&params); err != nil {
			return nil, syntaxErrorf(f["params"], "parameters must be a sequence of names")
		}
		body, err := d.expr(f["body"])
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, syntaxErrorf(v, "lambda without a body")
		}
		return &ast.Func{ArgNames: params, Body: body}, nil
	}

	return nil, syntaxErrorf(key, "unknown expression kind %q", key.Value)
}

// Collect the values of a mapping by key. Every field is required, and no other fields are allowed.
func fields(value *yaml.Node, names ...string) (map[string]*yaml.Node, error) {
	if value.Kind != yaml.MappingNode {
		return nil, syntaxErrorf(value, "expected a mapping with fields %v", names)
	}
	f := make(map[string]*yaml.Node, len(names))
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		known := false
		for _, name := range names {
			known = known || name == key.Value
		}
		if !known {
			return nil, syntaxErrorf(key, "unknown field %q", key.Value)
		}
		f[key.Value] = value.Content[i+1]
	}
	for _, name := range names {
		if f[name] == nil {
			return nil, syntaxErrorf(value, "missing field %q", name)
		}
	}
	return f, nil
}
