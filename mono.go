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

// mono provides constraint-based type inference for a small expression language with integers,
// booleans, binary operators, conditionals, function application, and multi-argument functions.
//
// Inference proceeds in separate stages:
//
//   * Typename assignment: each expression is assigned a base type (literals) or a fresh type-variable;
//     identifiers share the type bound in scope.
//   * Equation generation: each expression's typing rule produces equations between types.
//   * Unification: equations are unified in order into a substitution, failing at the first conflict.
//   * Resolution: the substitution is applied to the inferred type, and type-variables are renamed.
//
// Types are monomorphic within a single inference run; there is no let-polymorphism.
//
// Links:
//
// * Unification (Wikipedia): https://en.wikipedia.org/wiki/Unification_(computer_science)
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package mono
