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

import "strconv"

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(uint(i))
	}
}

func varName(i uint) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return string(rune('a'+i%26)) + strconv.Itoa(int(i/26))
}

// VarName returns the canonical name for the i-th distinct type-variable: a, b, ..., z, a1, b1, ...
func VarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return varName(uint(i))
}

// Canonicalize renames the type-variables within t to canonical names (see VarName), assigned in
// order of first occurrence (arguments before the return type). Occurrences of the same
// type-variable receive the same name.
//
// A new type is returned; t is not modified.
func Canonicalize(t Type) Type {
	names := make(map[string]*Var, 4)
	return canonicalize(t, names)
}

func canonicalize(t Type, names map[string]*Var) Type {
	switch t := t.(type) {
	case *Var:
		if v, ok := names[t.Name]; ok {
			return v
		}
		v := &Var{Name: VarName(len(names))}
		names[t.Name] = v
		return v
	case *Arrow:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = canonicalize(arg, names)
		}
		return &Arrow{Args: args, Return: canonicalize(t.Return, names)}
	default:
		return t
	}
}
