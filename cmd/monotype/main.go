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

// Command monotype infers the types of YAML-encoded declarations.
//
// Usage:
//
//	monotype [-v] [-check] [-no-color] file.yaml...
//
// Each declaration is printed as `name : type`, or with the error which caused inference to fail.
// With -v, the typename assignment and the generated equations are printed before unification.
// With -check, inferred types and errors are compared against the `type` and `error` fields of
// each declaration.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/wdamron/mono"
	"github.com/wdamron/mono/ast/astyaml"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("monotype", flag.ContinueOnError)
	fs.SetOutput(log.Writer())
	verbose := fs.Bool("v", false, "print typename assignments and equations")
	check := fs.Bool("check", false, "compare results against the expected type or error of each declaration")
	noColor := fs.Bool("no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: monotype [-v] [-check] [-no-color] file.yaml...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	r := &reporter{
		w:       stdout,
		ctx:     mono.NewContext(),
		verbose: *verbose,
		check:   *check,
		color:   !*noColor && colorEnabled(stdout),
	}
	status := exitOK
	for _, path := range fs.Args() {
		decls, err := astyaml.DecodeFile(path)
		if err != nil {
			log.Print(err)
			status = exitFailed
			continue
		}
		for _, d := range decls {
			if !r.report(d) {
				status = exitFailed
			}
		}
	}
	if r.failed > 0 {
		log.Printf("%d of %d declarations failed", r.failed, r.total)
	}
	return status
}

func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
