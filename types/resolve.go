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

// Get the underlying type for a chain of bound type-variables, when applicable.
// Components of function types are not resolved.
func RealType(t Type, s Subst) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, ok := s.Lookup(tv)
		if !ok {
			return t
		}
		t = bound
	}
}

// Resolve applies s to t. Bound type-variables are replaced by their (resolved) bindings;
// unbound type-variables are left in place.
//
// The occurs-check performed during unification guarantees that resolution terminates.
func Resolve(t Type, s Subst) Type {
	if s.Len() == 0 {
		return t
	}
	switch t := RealType(t, s).(type) {
	case *Arrow:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Resolve(arg, s)
		}
		return &Arrow{Args: args, Return: Resolve(t.Return, s)}
	default:
		return t
	}
}
