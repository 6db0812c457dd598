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

// Package astyaml encodes expression trees and declarations as YAML.
//
// Each expression is a mapping with exactly one key naming its kind:
//
//	int: 3
//	bool: true
//	ident: x
//	op: {operator: "+", left: {ident: x}, right: {int: 1}}
//	if: {cond: ..., then: ..., else: ...}
//	call: {func: {ident: f}, args: [...]}
//	lambda: {params: [x, y], body: ...}
//
// A file holds a sequence of declarations:
//
//	- name: add
//	  params: [x, y]
//	  body:
//	    op: {operator: "+", left: {ident: x}, right: {ident: y}}
//	  type: (Int, Int) -> Int
package astyaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wdamron/mono/ast"
	"gopkg.in/yaml.v3"
)

// SyntaxError reports a document which does not describe a valid tree.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

func syntaxErrorf(n *yaml.Node, format string, args ...interface{}) error {
	return &SyntaxError{Line: n.Line, Msg: fmt.Sprintf(format, args...)}
}

// Decl is a declaration along with optional expectations for its inferred type.
type Decl struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,flow,omitempty"`
	Body   Node     `yaml:"body"`
	// Expected type, printed canonically
	Type string `yaml:"type,omitempty"`
	// Expected kind of error
	Error string `yaml:"error,omitempty"`

	// Line of the declaration within the decoded document
	Line int `yaml:"-"`
}

type rawDecl Decl

var declKeys = map[string]bool{"name": true, "params": true, "body": true, "type": true, "error": true}

func (d *Decl) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return syntaxErrorf(value, "declaration must be a mapping")
	}
	for i := 0; i < len(value.Content); i += 2 {
		if key := value.Content[i]; !declKeys[key.Value] {
			return syntaxErrorf(key, "unknown declaration field %q", key.Value)
		}
	}
	var raw rawDecl
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Name == "" {
		return syntaxErrorf(value, "declaration without a name")
	}
	if raw.Body.Expr == nil {
		return syntaxErrorf(value, "declaration %s without a body", raw.Name)
	}
	if raw.Type != "" && raw.Error != "" {
		return syntaxErrorf(value, "declaration %s expects both a type and an error", raw.Name)
	}
	*d = Decl(raw)
	d.Line = value.Line
	return nil
}

// AST returns the declaration as an expression tree.
func (d *Decl) AST() *ast.Decl {
	return &ast.Decl{Name: d.Name, Params: d.Params, Body: d.Body.Expr}
}

// FromAST returns the YAML form of a declaration, without expectations.
func FromAST(d *ast.Decl) *Decl {
	return &Decl{Name: d.Name, Params: d.Params, Body: Node{Expr: d.Body}}
}

// Decode reads a sequence of declarations. An empty document contains no declarations.
func Decode(r io.Reader) ([]*Decl, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, syntaxErrorf(root, "expected a sequence of declarations")
	}
	decls := make([]*Decl, len(root.Content))
	for i, item := range root.Content {
		decls[i] = new(Decl)
		if err := item.Decode(decls[i]); err != nil {
			return nil, err
		}
	}
	return decls, nil
}

// DecodeFile reads a sequence of declarations from a file.
func DecodeFile(path string) ([]*Decl, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	decls, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}

// Encode writes a sequence of declarations.
func Encode(w io.Writer, decls []*Decl) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(decls); err != nil {
		return err
	}
	return enc.Close()
}

// UnmarshalExpr decodes a single expression.
func UnmarshalExpr(data []byte) (ast.Expr, error) {
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	if n.Expr == nil {
		return nil, errors.New("empty document")
	}
	return n.Expr, nil
}

// MarshalExpr encodes a single expression.
func MarshalExpr(e ast.Expr) ([]byte, error) { return yaml.Marshal(Node{Expr: e}) }
