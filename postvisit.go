package symtree

import "fmt"

// ============================================================
// PostVisit — generic postorder fold over an expression DAG
// ============================================================

// Params carries named context forwarded unchanged to every VisitFunc call.
type Params map[string]any

// StringValue returns the string stored under key.
func (p Params) StringValue(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// VisitFunc combines a node with the already computed results of its
// operands, given in declared order.
type VisitFunc[R any] func(node Expr, operands []R, params Params) (R, error)

// PostVisit folds fn over the graph rooted at root, bottom-up. Each distinct
// node (by identity) is combined exactly once, however many parents share
// it. The walk uses an explicit stack, so depth is bounded only by memory.
// The first error returned by fn aborts the walk.
func PostVisit[R any](root Expr, fn VisitFunc[R], params Params) (R, error) {
	var zero R
	if root == nil || isNilPointer(root) {
		return zero, ErrNilExpr
	}

	visited := map[Expr]R{}
	stack := []Expr{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := visited[node]; done {
			continue
		}

		operands := node.Operands()
		pending := false
		// Push right to left so the left operand is combined first.
		for i := len(operands) - 1; i >= 0; i-- {
			op := operands[i]
			if op == nil || isNilPointer(op) {
				return zero, fmt.Errorf("%s operand %d: %w", node.Kind(), i, ErrNilExpr)
			}
			if _, done := visited[op]; done {
				continue
			}
			if !pending {
				stack = append(stack, node)
				pending = true
			}
			stack = append(stack, op)
		}
		if pending {
			continue
		}

		results := make([]R, len(operands))
		for i, op := range operands {
			results[i] = visited[op]
		}
		r, err := fn(node, results, params)
		if err != nil {
			return zero, err
		}
		visited[node] = r
	}
	return visited[root], nil
}
