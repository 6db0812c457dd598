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

package construct

import (
	"github.com/wdamron/mono/ast"
	"github.com/wdamron/mono/types"
)

// Types

// Create a new type-variable with the given name.
func TVar(name string) *types.Var {
	return types.NewVar(name)
}

// Type constant: `Int`
func TInt() types.Base { return types.Int }

// Type constant: `Bool`
func TBool() types.Base { return types.Bool }

// Function type: `(Int, Int) -> Int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return types.NewArrow(args, ret)
}

// Function type: `Int -> Int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(Int, Int) -> Int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Function type: `(Int, Int, Int) -> Int`
func TArrow3(arg1, arg2, arg3 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2, arg3}, Return: ret}
}

// Expressions:

// Integer literal: `1`
func Int(value int64) *ast.IntLit {
	return &ast.IntLit{Value: value}
}

// Boolean literal: `true`
func Bool(value bool) *ast.BoolLit {
	return &ast.BoolLit{Value: value}
}

// Identifier
func Ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Binary operator: `x + y`
func Op(operator string, left, right ast.Expr) *ast.Op {
	return &ast.Op{Operator: operator, Left: left, Right: right}
}

// Conditional: `if c then x else y`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Abstraction: `lambda x y -> x`
func Func(args []string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: args, Body: body}
}

// Abstraction: `lambda x -> x`
func Func1(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg}, Body: body}
}

// Abstraction: `lambda x y -> x`
func Func2(arg1, arg2 string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg1, arg2}, Body: body}
}

// Abstraction: `lambda x y z -> x`
func Func3(arg1, arg2, arg3 string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgNames: []string{arg1, arg2, arg3}, Body: body}
}

// Declaration: `add x y = x + y`
func Decl(name string, params []string, body ast.Expr) *ast.Decl {
	return &ast.Decl{Name: name, Params: params, Body: body}
}
