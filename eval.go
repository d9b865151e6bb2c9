package arith

import "fmt"

// Eval computes the value of the tree. Sums and products wrap modulo 2^64.
// It panics if the tree is malformed.
func Eval(n *Node) uint64 {
	switch n.Kind {
	case NumberNode:
		return n.Value
	case ParenthesizedNode:
		return Eval(n.Inner())
	case SumNode:
		return Eval(n.Left()) + Eval(n.Right())
	case ProductNode:
		return Eval(n.Left()) * Eval(n.Right())
	}
	panic(fmt.Sprintf("arith: unknown node kind %s", n.Kind))
}
