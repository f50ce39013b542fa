package symtree

import (
	"errors"
	"fmt"
)

// ErrNilExpr is returned when a nil expression is used as a root or operand.
var ErrNilExpr = errors.New("symtree: nil expression")

// TypeError reports a value of the wrong category at construction time.
type TypeError struct {
	Want  string
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("symtree: type error: want %s, got %T (%v)", e.Want, e.Value, e.Value)
}

// UnsupportedKindError reports a node kind that a per-kind dispatch has no
// case for.
type UnsupportedKindError struct {
	Op   string
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("symtree: %s: unsupported node kind %s", e.Op, e.Kind)
}
