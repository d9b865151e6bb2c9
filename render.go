package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// Render prints the tree in canonical form: one space around each operator,
// every bracket pair written as "(" ")", and only the brackets present as
// Parenthesized nodes. Parse(Render(n)) yields a tree that renders the same.
func Render(n *Node) string {
	var sb strings.Builder
	render(&sb, n)
	return sb.String()
}

func render(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case NumberNode:
		sb.WriteString(strconv.FormatUint(n.Value, 10))
	case ParenthesizedNode:
		sb.WriteByte('(')
		render(sb, n.Inner())
		sb.WriteByte(')')
	case SumNode:
		render(sb, n.Left())
		sb.WriteString(" + ")
		render(sb, n.Right())
	case ProductNode:
		render(sb, n.Left())
		sb.WriteString(" * ")
		render(sb, n.Right())
	default:
		panic(fmt.Sprintf("arith: unknown node kind %s", n.Kind))
	}
}
