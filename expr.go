// Package symtree provides a minimal symbolic expression kernel for Go.
//
// Design goals:
//   - Immutable nodes; trees may share subtrees (DAG, not strictly a tree)
//   - Local, precedence-driven infix rendering
//   - One generic postorder fold (PostVisit) that every traversal is built on
//   - Literal, unsimplified symbolic derivatives
package symtree

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

// Kind identifies a node variant. The set is closed.
type Kind int

// The zero Kind is invalid, so a zero-value node never passes for a leaf.
const (
	KindNumber Kind = iota + 1
	KindSymbol
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPow
)

// TerminalPrecedence is the precedence of leaves. It is higher than any
// operator's, so a leaf is never parenthesized.
const TerminalPrecedence = 4

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "Symbol"
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindPow:
		return "Pow"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Precedence governs parenthesization only.
func (k Kind) Precedence() int {
	switch k {
	case KindAdd, KindSub:
		return 1
	case KindMul, KindDiv:
		return 2
	case KindPow:
		return 3
	}
	return TerminalPrecedence
}

// Symbol returns the infix operator text, or "" for leaves.
func (k Kind) Symbol() string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindPow:
		return "^"
	}
	return ""
}

// IsOperator reports whether k is one of the binary operator kinds.
func (k Kind) IsOperator() bool { return k >= KindAdd && k <= KindPow }

// Expr is an immutable expression node. All implementations are pointers,
// so two Expr values are the same node iff they compare equal with ==.
type Expr interface {
	Kind() Kind
	// Operands returns the node's operands in declared order. The slice is a
	// copy; leaves return nil.
	Operands() []Expr
	String() string
	sealed()
}

// ============================================================
// Number — numeric leaf (integer or float)
// ============================================================

// Number holds an integer or a float. Integers outside the int64 range are
// kept in big; floats remember whether they came from a float32 so they
// print with that type's shortest digits.
type Number struct {
	i       int64
	big     *big.Int
	f       float64
	isFloat bool
	bits    int
}

func N(n int64) *Number        { return &Number{i: n} }
func NFloat(f float64) *Number { return &Number{f: f, isFloat: true, bits: 64} }

// NBig wraps an arbitrary-size integer. The value is copied.
func NBig(b *big.Int) *Number {
	if b.IsInt64() {
		return N(b.Int64())
	}
	return &Number{big: new(big.Int).Set(b)}
}

// NumberOf wraps any Go integer or floating-point value, or a *big.Int.
// Other values, including bool and numeric strings, are rejected with a
// *TypeError.
func NumberOf(v any) (*Number, error) {
	switch x := v.(type) {
	case int:
		return N(int64(x)), nil
	case int8:
		return N(int64(x)), nil
	case int16:
		return N(int64(x)), nil
	case int32:
		return N(int64(x)), nil
	case int64:
		return N(x), nil
	case uint:
		return numberFromUint(uint64(x)), nil
	case uint8:
		return N(int64(x)), nil
	case uint16:
		return N(int64(x)), nil
	case uint32:
		return N(int64(x)), nil
	case uint64:
		return numberFromUint(x), nil
	case uintptr:
		return numberFromUint(uint64(x)), nil
	case float32:
		return &Number{f: float64(x), isFloat: true, bits: 32}, nil
	case float64:
		return NFloat(x), nil
	case *big.Int:
		if x != nil {
			return NBig(x), nil
		}
	}
	return nil, &TypeError{Want: "int or float", Value: v}
}

func numberFromUint(u uint64) *Number {
	if u > math.MaxInt64 {
		return &Number{big: new(big.Int).SetUint64(u)}
	}
	return N(int64(u))
}

func (n *Number) Kind() Kind       { return KindNumber }
func (n *Number) Operands() []Expr { return nil }
func (n *Number) IsFloat() bool    { return n.isFloat }
func (n *Number) sealed()          {}

// Int returns the integer value; ok is false for floats and for integers
// outside the int64 range.
func (n *Number) Int() (int64, bool) { return n.i, !n.isFloat && n.big == nil }

// BigInt returns a copy of the integer value, or nil for floats.
func (n *Number) BigInt() *big.Int {
	switch {
	case n.isFloat:
		return nil
	case n.big != nil:
		return new(big.Int).Set(n.big)
	}
	return big.NewInt(n.i)
}

func (n *Number) Float64() float64 {
	switch {
	case n.isFloat:
		return n.f
	case n.big != nil:
		f, _ := new(big.Float).SetInt(n.big).Float64()
		return f
	}
	return float64(n.i)
}

func (n *Number) String() string {
	switch {
	case n.isFloat:
		return formatFloat(n.f, n.bits)
	case n.big != nil:
		return n.big.String()
	}
	return strconv.FormatInt(n.i, 10)
}

// formatFloat renders f the way a Python float prints: shortest round-trip
// digits for the given bit size, a trailing ".0" on integral values, and
// scientific notation outside [1e-4, 1e16).
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if bits != 32 {
		bits = 64
	}
	sci := strconv.FormatFloat(f, 'e', -1, bits)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// ============================================================
// Symbol — named variable
// ============================================================

type Symbol struct{ name string }

func S(name string) *Symbol { return &Symbol{name: name} }

// SymbolOf wraps a string name. Any other value is a *TypeError.
func SymbolOf(v any) (*Symbol, error) {
	name, ok := v.(string)
	if !ok {
		return nil, &TypeError{Want: "string", Value: v}
	}
	return S(name), nil
}

func (s *Symbol) Kind() Kind       { return KindSymbol }
func (s *Symbol) Operands() []Expr { return nil }
func (s *Symbol) Name() string     { return s.name }
func (s *Symbol) String() string   { return s.name }
func (s *Symbol) sealed()          {}

// ============================================================
// Operator — binary node
// ============================================================

// Operator is a binary node. Only Add, Sub, Mul, Div, Pow, their Try
// variants and Binary produce valid operators; a zero Operator has no kind
// and no operands and renders as "<invalid>".
type Operator struct {
	kind     Kind
	operands [2]Expr
}

func newOperator(kind Kind, left, right Expr) *Operator {
	return &Operator{kind: kind, operands: [2]Expr{left, right}}
}

func (o *Operator) Kind() Kind       { return o.kind }
func (o *Operator) Operands() []Expr { return []Expr{o.operands[0], o.operands[1]} }
func (o *Operator) Left() Expr       { return o.operands[0] }
func (o *Operator) Right() Expr      { return o.operands[1] }
func (o *Operator) String() string   { return String(o) }
func (o *Operator) sealed()          {}

// ============================================================
// Construction
// ============================================================

// Ensure promotes v to an Expr: expressions pass through, Go numerics
// become a *Number, and anything else is a *TypeError.
func Ensure(v any) (Expr, error) {
	if e, ok := v.(Expr); ok {
		if isNilPointer(e) {
			return nil, ErrNilExpr
		}
		return e, nil
	}
	if v == nil {
		return nil, ErrNilExpr
	}
	n, err := NumberOf(v)
	if err != nil {
		return nil, &TypeError{Want: "Expr, int or float", Value: v}
	}
	return n, nil
}

func isNilPointer(e Expr) bool {
	switch x := e.(type) {
	case *Number:
		return x == nil
	case *Symbol:
		return x == nil
	case *Operator:
		return x == nil
	}
	return false
}

func build(kind Kind, a, b any) (Expr, error) {
	left, err := Ensure(a)
	if err != nil {
		return nil, fmt.Errorf("%s: left operand: %w", kind, err)
	}
	right, err := Ensure(b)
	if err != nil {
		return nil, fmt.Errorf("%s: right operand: %w", kind, err)
	}
	return newOperator(kind, left, right), nil
}

func mustBuild(kind Kind, a, b any) Expr {
	e, err := build(kind, a, b)
	if err != nil {
		panic(err)
	}
	return e
}

// Add, Sub, Mul, Div and Pow build a new operator node from two operands.
// Either operand may be an Expr or a raw Go number. They panic if an operand
// cannot be promoted; the Try variants return the error instead.
func Add(a, b any) Expr { return mustBuild(KindAdd, a, b) }
func Sub(a, b any) Expr { return mustBuild(KindSub, a, b) }
func Mul(a, b any) Expr { return mustBuild(KindMul, a, b) }
func Div(a, b any) Expr { return mustBuild(KindDiv, a, b) }
func Pow(a, b any) Expr { return mustBuild(KindPow, a, b) }

func TryAdd(a, b any) (Expr, error) { return build(KindAdd, a, b) }
func TrySub(a, b any) (Expr, error) { return build(KindSub, a, b) }
func TryMul(a, b any) (Expr, error) { return build(KindMul, a, b) }
func TryDiv(a, b any) (Expr, error) { return build(KindDiv, a, b) }
func TryPow(a, b any) (Expr, error) { return build(KindPow, a, b) }

// Binary builds an operator of the given kind. It is the generic form of
// TryAdd and friends.
func Binary(kind Kind, a, b any) (Expr, error) {
	if !kind.IsOperator() {
		return nil, &UnsupportedKindError{Op: "build", Kind: kind.String()}
	}
	return build(kind, a, b)
}
