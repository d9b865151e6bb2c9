package arith

import (
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"pgregory.net/rapid"
)

const genMaxDepth = 5

// drawTree builds a random well-formed tree no deeper than depth. Unlike
// parser output, it may contain left-nested sums and products.
func drawTree(t *rapid.T, depth int, nums *rapid.Generator[uint64]) *Node {
	if depth <= 1 {
		return NewNumber(nums.Draw(t, "n"))
	}
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0:
		return NewSum(drawTree(t, depth-1, nums), drawTree(t, depth-1, nums))
	case 1:
		return NewProduct(drawTree(t, depth-1, nums), drawTree(t, depth-1, nums))
	case 2:
		return NewParenthesized(drawTree(t, depth-1, nums))
	}
	return NewNumber(nums.Draw(t, "n"))
}

var brackets = []string{"()", "[]", "{}"}

// drawSource writes a random valid expression using all three bracket
// styles and irregular spacing.
func drawSource(t *rapid.T, depth int, nums *rapid.Generator[uint64]) string {
	var sb strings.Builder
	writeSource(t, &sb, depth, nums)
	return sb.String()
}

func writeSource(t *rapid.T, sb *strings.Builder, depth int, nums *rapid.Generator[uint64]) {
	space := func() {
		sb.WriteString(strings.Repeat(" ", rapid.IntRange(0, 2).Draw(t, "space")))
	}
	space()
	if depth <= 1 {
		sb.WriteString(strconv.FormatUint(nums.Draw(t, "n"), 10))
		space()
		return
	}
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0, 1:
		writeSource(t, sb, depth-1, nums)
		sb.WriteString(rapid.SampledFrom([]string{"+", "*"}).Draw(t, "op"))
		writeSource(t, sb, depth-1, nums)
	case 2:
		b := rapid.SampledFrom(brackets).Draw(t, "bracket")
		sb.WriteByte(b[0])
		writeSource(t, sb, depth-1, nums)
		sb.WriteByte(b[1])
	default:
		sb.WriteString(strconv.FormatUint(nums.Draw(t, "n"), 10))
	}
	space()
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := drawTree(t, genMaxDepth, rapid.Uint64())
		s := Render(tree)

		reparsed, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v\ntree:\n%s", s, err, spew.Sdump(tree))
		}
		if got := Render(reparsed); got != s {
			t.Fatalf("render changed after reparse:\n got: %s\nwant: %s", got, s)
		}
	})
}

func TestRenderIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := drawSource(t, genMaxDepth, rapid.Uint64())

		first, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		once := Render(first)
		second, err := Parse(once)
		if err != nil {
			t.Fatalf("Parse(%q): %v", once, err)
		}
		if twice := Render(second); twice != once {
			t.Fatalf("render not idempotent for %q:\n got: %s\nwant: %s", src, twice, once)
		}
		if Eval(first) != Eval(second) {
			t.Fatalf("value changed across render for %q", src)
		}
	})
}
