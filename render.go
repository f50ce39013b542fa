package symtree

import (
	"sort"
	"strings"
)

// ============================================================
// Infix and LaTeX rendering
// ============================================================

// String renders e as infix text. An operand is parenthesized iff it is an
// operator of strictly lower precedence than its parent. A graph with a
// missing operand renders as "<invalid>".
func String(e Expr) string {
	if e == nil || isNilPointer(e) {
		return "<nil>"
	}
	s, err := PostVisit(e, renderInfix, nil)
	if err != nil {
		return "<invalid>"
	}
	return s
}

func renderInfix(node Expr, operands []string, _ Params) (string, error) {
	if len(operands) == 0 {
		return node.String(), nil
	}
	children := node.Operands()
	prec := node.Kind().Precedence()
	parts := make([]string, len(operands))
	for i, s := range operands {
		if needsParens(children[i], prec) {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " "+opText(node.Kind())+" "), nil
}

func needsParens(child Expr, parentPrec int) bool {
	return child.Kind().IsOperator() && child.Kind().Precedence() < parentPrec
}

func opText(k Kind) string {
	if s := k.Symbol(); s != "" {
		return s
	}
	return k.String()
}

// LaTeX renders e for a LaTeX math environment.
func LaTeX(e Expr) string {
	if e == nil || isNilPointer(e) {
		return ""
	}
	s, err := PostVisit(e, renderLaTeX, nil)
	if err != nil {
		return ""
	}
	return s
}

func renderLaTeX(node Expr, operands []string, _ Params) (string, error) {
	if len(operands) == 0 {
		return node.String(), nil
	}
	kind := node.Kind()
	if len(operands) != 2 {
		return strings.Join(operands, " "+opText(kind)+" "), nil
	}
	if kind == KindDiv {
		return "\\frac{" + operands[0] + "}{" + operands[1] + "}", nil
	}
	children := node.Operands()
	prec := kind.Precedence()
	parts := make([]string, len(operands))
	for i, s := range operands {
		// \frac already groups its parts, so a Div child needs no brackets.
		if needsParens(children[i], prec) && children[i].Kind() != KindDiv {
			s = "\\left(" + s + "\\right)"
		}
		parts[i] = s
	}
	switch kind {
	case KindMul:
		return strings.Join(parts, " \\cdot "), nil
	case KindPow:
		base := operands[0]
		if children[0].Kind().IsOperator() {
			base = "\\left(" + base + "\\right)"
		}
		return base + "^{" + operands[1] + "}", nil
	}
	return strings.Join(parts, " "+opText(kind)+" "), nil
}

// ============================================================
// Structural equality
// ============================================================

// Equal reports whether a and b have the same structure: same kinds, same
// leaf values and pairwise equal operands. Shared and separately built
// subtrees compare the same way.
func Equal(a, b Expr) bool {
	type pair struct{ a, b Expr }
	seen := map[pair]bool{}
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == p.b {
			continue
		}
		if p.a == nil || p.b == nil || isNilPointer(p.a) || isNilPointer(p.b) {
			return false
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		if p.a.Kind() != p.b.Kind() {
			return false
		}
		switch x := p.a.(type) {
		case *Number:
			if y, ok := p.b.(*Number); !ok || !sameNumber(x, y) {
				return false
			}
			continue
		case *Symbol:
			if y, ok := p.b.(*Symbol); !ok || x.name != y.name {
				return false
			}
			continue
		}
		ao, bo := p.a.Operands(), p.b.Operands()
		if len(ao) != len(bo) {
			return false
		}
		for i := range ao {
			stack = append(stack, pair{ao[i], bo[i]})
		}
	}
	return true
}

func sameNumber(x, y *Number) bool {
	if x.isFloat || y.isFloat {
		return x.isFloat && y.isFloat && x.f == y.f
	}
	if x.big != nil || y.big != nil {
		return x.big != nil && y.big != nil && x.big.Cmp(y.big) == 0
	}
	return x.i == y.i
}

// ============================================================
// Tree utilities
// ============================================================

// FreeSymbols returns the distinct symbol names in e, sorted.
func FreeSymbols(e Expr) []string {
	set := map[string]struct{}{}
	_, err := PostVisit(e, func(node Expr, _ []struct{}, _ Params) (struct{}, error) {
		if s, ok := node.(*Symbol); ok {
			set[s.name] = struct{}{}
		}
		return struct{}{}, nil
	}, nil)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of distinct nodes reachable from e. A subtree
// shared by several parents counts once.
func Size(e Expr) int {
	n := 0
	_, err := PostVisit(e, func(Expr, []struct{}, Params) (struct{}, error) {
		n++
		return struct{}{}, nil
	}, nil)
	if err != nil {
		return 0
	}
	return n
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(e Expr) int {
	d, _ := PostVisit(e, func(_ Expr, operands []int, _ Params) (int, error) {
		deepest := 0
		for _, o := range operands {
			if o > deepest {
				deepest = o
			}
		}
		return deepest + 1, nil
	}, nil)
	return d
}
