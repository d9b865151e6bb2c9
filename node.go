package arith

import (
	"fmt"
	"strconv"
)

type NodeKind int

const (
	SumNode           NodeKind = iota // lhs + rhs
	ProductNode                       // lhs * rhs
	ParenthesizedNode                 // ( inner )
	NumberNode                        // literal
)

func (k NodeKind) String() string {
	switch k {
	case SumNode:
		return "Sum"
	case ProductNode:
		return "Product"
	case ParenthesizedNode:
		return "Parenthesized"
	case NumberNode:
		return "Number"
	}
	return "NodeKind(" + strconv.Itoa(int(k)) + ")"
}

// arity is the number of children a well-formed node of kind k has.
func (k NodeKind) arity() int {
	switch k {
	case SumNode, ProductNode:
		return 2
	case ParenthesizedNode:
		return 1
	}
	return 0
}

// A Node is one element of a syntax tree.
//
// Sum and Product nodes have exactly two children, Parenthesized nodes have
// one and Number nodes none. The constructors below always produce nodes of
// the right shape; a hand-built Node that breaks this makes the consumers
// (Eval, Render, Emitter) panic.
type Node struct {
	Kind     NodeKind
	Value    uint64 // used if Kind == NumberNode
	Children []*Node
}

func NewNumber(v uint64) *Node {
	return &Node{Kind: NumberNode, Value: v}
}

func NewSum(lhs, rhs *Node) *Node {
	return &Node{Kind: SumNode, Children: []*Node{lhs, rhs}}
}

func NewProduct(lhs, rhs *Node) *Node {
	return &Node{Kind: ProductNode, Children: []*Node{lhs, rhs}}
}

func NewParenthesized(inner *Node) *Node {
	return &Node{Kind: ParenthesizedNode, Children: []*Node{inner}}
}

// child returns the i-th child, panicking if n does not have the number of
// children its kind requires.
func (n *Node) child(i int) *Node {
	if want := n.Kind.arity(); len(n.Children) != want {
		panic(fmt.Sprintf("arith: malformed %s node: want %d children, have %d",
			n.Kind, want, len(n.Children)))
	}
	if n.Children[i] == nil {
		panic(fmt.Sprintf("arith: malformed %s node: child %d is nil", n.Kind, i))
	}
	return n.Children[i]
}

// Left returns the left operand of a Sum or Product.
func (n *Node) Left() *Node { return n.binary().child(0) }

// Right returns the right operand of a Sum or Product.
func (n *Node) Right() *Node { return n.binary().child(1) }

// Inner returns the wrapped expression of a Parenthesized node.
func (n *Node) Inner() *Node {
	if n.Kind != ParenthesizedNode {
		panic("arith: Inner called on " + n.Kind.String() + " node")
	}
	return n.child(0)
}

func (n *Node) binary() *Node {
	if n.Kind != SumNode && n.Kind != ProductNode {
		panic("arith: operand requested from " + n.Kind.String() + " node")
	}
	return n
}

// String returns the canonical rendering of the tree.
func (n *Node) String() string {
	return Render(n)
}
