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
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// EmptySubst is a substitution without bindings.
var EmptySubst = Subst{emptyMap}

// Subst contains immutable mappings from type-variable names to types.
//
// Extending a substitution produces a new substitution; the existing substitution is never modified,
// so each state may be retained independently of the states derived from it.
type Subst struct {
	m *immutable.SortedMap
}

func NewSubst() Subst { return Subst{emptyMap} }

// Get the number of bindings in the substitution.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the type bound to the type-variable with the given name.
func (s Subst) Get(name string) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Lookup the type bound to v.
func (s Subst) Lookup(v *Var) (Type, bool) { return s.Get(v.Name) }

// Extend the substitution with a binding from v to t, without mutating the existing substitution.
// Callers must ensure v is unbound in s and does not occur within t.
func (s Subst) Extend(v *Var, t Type) Subst {
	m := s.m
	if m == nil {
		m = emptyMap
	}
	return Subst{m.Set(v.Name, t)}
}

// Iterate over bindings in the substitution, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Equal reports whether s and o contain the same bindings.
func (s Subst) Equal(o Subst) bool {
	if s.m == o.m {
		return true
	}
	if s.Len() != o.Len() {
		return false
	}
	equal := true
	s.Range(func(name string, t Type) bool {
		ot, ok := o.Get(name)
		equal = ok && Equal(t, ot)
		return equal
	})
	return equal
}

// String returns a representation of the substitution: `{t0: Int, t1: t0 -> Bool}`
func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(name string, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(TypeString(t))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
