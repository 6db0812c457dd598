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
	"strconv"

	"github.com/benbjohnson/immutable"
	"github.com/wdamron/mono/internal/typeutil"
	"github.com/wdamron/mono/types"
)

var emptyEnv = immutable.NewSortedMap(nil)

// TypeEnv is a type-environment containing mappings from identifiers to types.
//
// A type-environment is immutable. Declaring an identifier returns a new environment which
// shadows any existing binding of the identifier; the existing environment is not affected.
// A type-environment may be shared across concurrent inference runs.
type TypeEnv struct {
	// Next unused type-variable id. Type-variables allocated during inference are numbered from NextVarId.
	NextVarId int

	m *immutable.SortedMap
}

// Create an empty type-environment.
func NewTypeEnv() TypeEnv { return TypeEnv{m: emptyEnv} }

// Declare a type for an identifier. A new type-environment is returned.
func (e TypeEnv) Declare(name string, t types.Type) TypeEnv {
	m := e.m
	if m == nil {
		m = emptyEnv
	}
	return TypeEnv{NextVarId: e.NextVarId, m: m.Set(name, t)}
}

// Declare a fresh type-variable for an identifier. A new type-environment is returned, along with the
// type-variable.
//
// Type-variables in a type-environment should be allocated with DeclareVar or NewVar, so they cannot
// collide with type-variables allocated during inference.
func (e TypeEnv) DeclareVar(name string) (TypeEnv, *types.Var) {
	env, tv := e.NewVar()
	return env.Declare(name, tv), tv
}

// Create a fresh type-variable. A new type-environment is returned, along with the type-variable.
func (e TypeEnv) NewVar() (TypeEnv, *types.Var) {
	tv := types.NewVar(typeutil.DefaultPrefix + strconv.Itoa(e.NextVarId))
	e.NextVarId++
	return e, tv
}

// Lookup the type for an identifier.
func (e TypeEnv) Lookup(name string) (types.Type, bool) {
	if e.m == nil {
		return nil, false
	}
	t, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Get the number of identifiers in the type-environment.
func (e TypeEnv) Len() int {
	if e.m == nil {
		return 0
	}
	return e.m.Len()
}

// Iterate over identifiers in the type-environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e TypeEnv) Range(f func(string, types.Type) bool) {
	if e.m == nil {
		return
	}
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}
