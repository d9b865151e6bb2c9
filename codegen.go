package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// Emitter writes Intel-syntax x86-64 assembly that computes a tree's value
// in rax. Prologue and Epilogue wrap it in a main function that prints rax
// as an unsigned 64-bit integer using the calling convention of ABI.
type Emitter struct {
	ABI ABI

	sb    strings.Builder
	depth int // values currently pushed on the machine stack
	max   int
}

func (e *Emitter) String() string { return e.sb.String() }
func (e *Emitter) line(s string)  { e.sb.WriteString(s); e.sb.WriteByte('\n') }

// MaxStack reports the deepest operand stack the emitted code uses, in
// 8-byte slots.
func (e *Emitter) MaxStack() int { return e.max }

// Compile returns a complete assembly program for the host that prints
// Eval(n).
func Compile(n *Node) string {
	e := Emitter{ABI: HostABI()}
	e.Prologue()
	e.Gen(n)
	e.Epilogue()
	return e.String()
}

// Gen emits code for n. It panics if the tree is malformed.
func (e *Emitter) Gen(n *Node) {
	switch n.Kind {
	case NumberNode:
		e.line("  mov rax, " + strconv.FormatUint(n.Value, 10))

	case ParenthesizedNode:
		e.Gen(n.Inner())

	case SumNode, ProductNode:
		// Right operand first so the left one ends up in rax.
		e.Gen(n.Right())
		e.push()
		e.Gen(n.Left())
		e.pop("rbx")
		if n.Kind == SumNode {
			e.line("  add rax, rbx")
		} else {
			e.line("  imul rax, rbx")
		}

	default:
		panic(fmt.Sprintf("arith: unknown node kind %s", n.Kind))
	}
}

func (e *Emitter) push() {
	e.line("  push rax")
	e.depth++
	if e.depth > e.max {
		e.max = e.depth
	}
}

func (e *Emitter) pop(reg string) {
	e.line("  pop " + reg)
	e.depth--
}
