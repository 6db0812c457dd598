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

package typeutil

import (
	"strconv"

	"github.com/wdamron/mono/types"
)

// DefaultPrefix is prepended to the ids of type-variables allocated by a VarTracker.
const DefaultPrefix = "t"

// VarTracker allocates fresh type-variables and tracks allocations.
//
// A VarTracker belongs to a single inference run; names are unique within the run, and separate
// trackers never share state.
type VarTracker struct {
	Prefix string
	NextId int
	vars   []*types.Var
	block  []types.Var
}

// Reset the tracker. Names allocated after a reset may repeat names allocated before it.
func (vt *VarTracker) Reset() {
	for i := range vt.vars {
		vt.vars[i] = nil
	}
	vt.NextId, vt.vars, vt.block = 0, vt.vars[:0], nil
}

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return len(vt.vars) }

// Vars returns the type-variables allocated since the last reset, in allocation order.
func (vt *VarTracker) Vars() []*types.Var { return vt.vars }

// New allocates a type-variable with a fresh name.
func (vt *VarTracker) New() *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, 8)
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	prefix := vt.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	tv.Name = prefix + strconv.Itoa(vt.NextId)
	vt.NextId++
	vt.vars = append(vt.vars, tv)
	return tv
}

// NewList allocates count type-variables with fresh names.
func (vt *VarTracker) NewList(count int) []*types.Var {
	list := make([]*types.Var, count)
	for i := range list {
		list[i] = vt.New()
	}
	return list
}
