package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/cjcho/arith"
)

var cli struct {
	Expr     string `arg:"" optional:"" help:"Expression to evaluate. Read from stdin when omitted."`
	Tree     bool   `help:"Dump the syntax tree."`
	Tokens   bool   `help:"Dump the token sequence."`
	EmitAsm  bool   `name:"emit-asm" help:"Print x86-64 assembly instead of evaluating."`
	MaxDepth int    `name:"max-depth" default:"${max_depth}" help:"Maximum bracket nesting."`
	Verbose  bool   `short:"v" help:"Log stage timings to stderr."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description("Parse, print and evaluate expressions over +, * and (), [], {} brackets."),
		kong.Vars{"max_depth": fmt.Sprint(arith.DefaultMaxDepth)},
	)

	log.SetFlags(0)
	log.SetPrefix("arith: ")
	if !cli.Verbose {
		log.SetOutput(io.Discard)
	}

	src := cli.Expr
	if src == "" {
		var err error
		src, err = readStdin(os.Stdin)
		kctx.FatalIfErrorf(err, "read error")
	}
	if src == "" {
		fmt.Fprintln(os.Stderr, `usage: arith "1 + 2 * [3 + 4]"  or  echo "1 + 2" | arith`)
		os.Exit(2)
	}

	start := time.Now()
	toks, err := arith.Lex(src)
	if err != nil {
		fail(src, err)
	}
	log.Printf("lexed %d tokens in %s", len(toks), time.Since(start))
	if cli.Tokens {
		repr.Println(toks)
	}

	start = time.Now()
	tree, err := arith.ParseTokens(toks, arith.WithMaxDepth(cli.MaxDepth))
	if err != nil {
		fail(src, err)
	}
	log.Printf("parsed in %s", time.Since(start))
	if cli.Tree {
		repr.Println(tree)
	}

	if cli.EmitAsm {
		os.Stdout.WriteString(arith.Compile(tree))
		return
	}

	start = time.Now()
	val := arith.Eval(tree)
	log.Printf("evaluated in %s", time.Since(start))
	fmt.Printf("%s = %d\n", arith.Render(tree), val)
}

// readStdin joins all input lines with spaces, since newlines are not
// valid inside an expression.
func readStdin(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, " ")), nil
}

// fail prints err with a caret under the offending character and exits.
func fail(src string, err error) {
	offset := -1
	code := 1
	var lexErr *arith.LexError
	var parseErr *arith.ParseError
	switch {
	case errors.As(err, &lexErr):
		offset = lexErr.Offset
		code = 3
	case errors.As(err, &parseErr):
		offset = parseErr.Offset()
		if offset < 0 {
			offset = len(src)
		}
		code = 4
	}
	fmt.Fprintln(os.Stderr, src)
	if offset >= 0 {
		fmt.Fprintf(os.Stderr, "%*s^ ", offset, "")
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}
