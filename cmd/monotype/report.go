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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wdamron/mono"
	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/ast/astyaml"
	"github.com/wdamron/mono/types"
)

const (
	red   = "\x1b[31m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

type reporter struct {
	w       io.Writer
	ctx     *mono.InferenceContext
	verbose bool
	check   bool
	color   bool

	total, failed int
}

// Infer the type of d and print the result. Returns false if inference failed, or if the result
// does not match the expectations of d when checking.
func (r *reporter) report(d *astyaml.Decl) bool {
	r.total++
	decl := d.AST()
	ty, err := r.infer(decl)

	if err != nil {
		r.printf(red, "%s : error: %v\n", decl.Name, err)
	} else {
		fmt.Fprintf(r.w, "%s : %s\n", decl.Name, types.TypeString(ty))
	}

	if !r.check {
		if err != nil {
			r.failed++
		}
		return err == nil
	}
	if msg := mismatch(d, ty, err); msg != "" {
		r.failed++
		r.printf(red, "FAIL %s (line %d): %s\n", decl.Name, d.Line, msg)
		return false
	}
	r.printf(green, "ok   %s\n", decl.Name)
	return true
}

// Run each stage of inference separately, so intermediate results can be printed.
func (r *reporter) infer(decl *ast.Decl) (types.Type, error) {
	if r.verbose {
		fmt.Fprintln(r.w, ast.DeclString(decl))
	}
	a, err := r.ctx.AssignTypenames(decl.Value(), mono.NewTypeEnv())
	if err != nil {
		return nil, err
	}
	a.Equations = a.GenerateEquations()
	if r.verbose {
		r.section("typenames", strings.Split(strings.TrimSuffix(a.String(), "\n"), "\n"))
		eqs := make([]string, len(a.Equations))
		for i, eq := range a.Equations {
			eqs[i] = eq.String()
		}
		r.section("equations", eqs)
	}
	if a.Subst, err = mono.UnifyAll(a.Equations); err != nil {
		return nil, err
	}
	if r.verbose {
		fmt.Fprintf(r.w, "  unifier: %s\n", a.Subst.String())
	}
	return a.Type(), nil
}

func (r *reporter) section(title string, lines []string) {
	fmt.Fprintf(r.w, "  %s:\n", title)
	for _, line := range lines {
		fmt.Fprintf(r.w, "    %s\n", line)
	}
}

func (r *reporter) printf(color, format string, args ...interface{}) {
	if r.color {
		fmt.Fprint(r.w, color)
		defer fmt.Fprint(r.w, reset)
	}
	fmt.Fprintf(r.w, format, args...)
}

// Compare the result of inference against the expectations of d. An empty string is returned if
// the result matches.
func mismatch(d *astyaml.Decl, ty types.Type, err error) string {
	switch {
	case d.Error != "" && err == nil:
		return fmt.Sprintf("expected %s error, found %s", d.Error, types.TypeString(ty))
	case d.Error != "":
		if kind := mono.ErrorKind(err); kind != d.Error {
			return fmt.Sprintf("expected %s error, found %v", d.Error, err)
		}
	case err != nil:
		return fmt.Sprintf("unexpected error: %v", err)
	case d.Type != "" && types.TypeString(ty) != d.Type:
		return fmt.Sprintf("expected %s, found %s", d.Type, types.TypeString(ty))
	}
	return ""
}
