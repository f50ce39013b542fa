// cmd/symdiff/main.go — Differentiate symtree's sample expressions
//
// Builds a catalog of expressions in Go (there is no text parser) and prints
// each one with its derivative.
//
// Usage:
//   go run ./cmd/symdiff -var x -order 1 quotient power
//   go run ./cmd/symdiff -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/njchilds90/symtree"
	"github.com/unixpickle/essentials"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		essentials.Die(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("symdiff", flag.ContinueOnError)
	varName := fs.String("var", "x", "Variable to differentiate with respect to")
	order := fs.Int("order", 1, "Derivative order")
	latex := fs.Bool("latex", false, "Also print LaTeX")
	list := fs.Bool("list", false, "List catalog entries and exit")
	verbose := fs.Bool("v", false, "Log tree sizes to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "symdiff: ", log.LstdFlags)
	}

	cat := catalog()
	if *list {
		for _, name := range sortedNames(cat) {
			fmt.Fprintf(w, "%-10s %s\n", name, cat[name])
		}
		return nil
	}

	names := fs.Args()
	if len(names) == 0 {
		names = sortedNames(cat)
	}
	for _, name := range names {
		e, ok := cat[name]
		if !ok {
			return fmt.Errorf("unknown catalog entry: %s (try -list)", name)
		}
		d, err := symtree.DiffN(e, *varName, *order)
		if err != nil {
			return essentials.AddCtx("differentiate "+name, err)
		}
		logger.Printf("%s: %d nodes in, %d nodes out", name, symtree.Size(e), symtree.Size(d))
		fmt.Fprintf(w, "%s\n  f       = %s\n  d^%d/d%s^%d = %s\n", name, e, *order, *varName, *order, d)
		if *latex {
			fmt.Fprintf(w, "  LaTeX   = %s\n", symtree.LaTeX(d))
		}
	}
	return nil
}

func catalog() map[string]symtree.Expr {
	x, y := symtree.S("x"), symtree.S("y")
	sq := symtree.Pow(x, 2)
	return map[string]symtree.Expr{
		"linear":   symtree.Add(symtree.Mul(2, x), 3),
		"square":   symtree.Mul(x, x),
		"power":    symtree.Pow(x, 3),
		"quotient": symtree.Div(symtree.Add(x, 1), symtree.Sub(x, 1)),
		"poly":     symtree.Add(symtree.Sub(symtree.Mul(5, symtree.Pow(x, 3)), symtree.Mul(2, sq)), 7),
		"shared":   symtree.Mul(symtree.Add(sq, y), symtree.Sub(sq, y)),
		"bivar":    symtree.Add(symtree.Mul(x, y), symtree.Div(y, x)),
	}
}

func sortedNames(cat map[string]symtree.Expr) []string {
	names := make([]string, 0, len(cat))
	for name := range cat {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
