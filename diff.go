package symtree

import (
	"errors"
	"fmt"
)

// ============================================================
// Differentiation
// ============================================================

// VarParam is the Params key holding the name of the variable that
// diffRule differentiates with respect to.
const VarParam = "var"

var errMissingVar = errors.New("symtree: diff: missing string param " + VarParam)

// Diff returns d(e)/d(varName). The result is not simplified: d/dx(x + 3)
// is "1 + 0". Subtrees of e may be shared by the result.
func Diff(e Expr, varName string) (Expr, error) {
	return PostVisit(e, diffRule, Params{VarParam: varName})
}

// diffRule is the per-kind derivative rule. operands holds the derivatives
// of node's operands.
func diffRule(node Expr, operands []Expr, params Params) (Expr, error) {
	name, ok := params.StringValue(VarParam)
	if !ok {
		return nil, errMissingVar
	}
	switch n := node.(type) {
	case *Number:
		return N(0), nil
	case *Symbol:
		if n.name == name {
			return N(1), nil
		}
		return N(0), nil
	case *Operator:
		u, v := n.Left(), n.Right()
		du, dv := operands[0], operands[1]
		switch n.kind {
		case KindAdd:
			return newOperator(KindAdd, du, dv), nil
		case KindSub:
			return newOperator(KindSub, du, dv), nil
		case KindMul:
			return newOperator(KindAdd,
				newOperator(KindMul, du, v),
				newOperator(KindMul, u, dv)), nil
		case KindDiv:
			return newOperator(KindDiv,
				newOperator(KindSub,
					newOperator(KindMul, du, v),
					newOperator(KindMul, u, dv)),
				newOperator(KindPow, v, N(2))), nil
		case KindPow:
			// The exponent is taken as constant in varName; dv is unused.
			return newOperator(KindMul,
				newOperator(KindMul, v, newOperator(KindPow, u, newOperator(KindSub, v, N(1)))),
				du), nil
		}
	}
	return nil, &UnsupportedKindError{Op: "diff", Kind: describeKind(node)}
}

func describeKind(node Expr) string {
	switch node.(type) {
	case *Number, *Symbol, *Operator:
		return node.Kind().String()
	}
	return fmt.Sprintf("%s (%T)", node.Kind(), node)
}

// DiffN applies Diff n times. DiffN(e, x, 0) returns e.
func DiffN(e Expr, varName string, n int) (Expr, error) {
	if n < 0 {
		return nil, fmt.Errorf("symtree: diff: negative order %d", n)
	}
	result := e
	for i := 0; i < n; i++ {
		d, err := Diff(result, varName)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i+1, err)
		}
		result = d
	}
	return result, nil
}

// Gradient returns the partial derivatives of e with respect to each name,
// in order.
func Gradient(e Expr, varNames []string) ([]Expr, error) {
	grad := make([]Expr, len(varNames))
	for i, name := range varNames {
		d, err := Diff(e, name)
		if err != nil {
			return nil, fmt.Errorf("d/d%s: %w", name, err)
		}
		grad[i] = d
	}
	return grad, nil
}
