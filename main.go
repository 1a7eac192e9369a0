package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/kr/pretty"

	"go.creack.net/ratcalc/ast"
	"go.creack.net/ratcalc/executor"
	"go.creack.net/ratcalc/lexer"
	"go.creack.net/ratcalc/parser"
)

const usage = "usage: ratcalc [-t] [-d] [-a] [-n] [-s maxshift] [expression ...]"

var errHelp = errors.New("help requested")

type config struct {
	showTree bool // -t: dump the tree before and after reduction.
	debug    bool // -d: pretty print tokens and trees.
	noColor  bool // -n.

	opts executor.Options
}

func parseFlags(argv []string) (config, []string, error) {
	var cfg config
	opts, optind, err := getopt.Getopts(argv, "tdans:h")
	if err != nil {
		return cfg, nil, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			cfg.showTree = true
		case 'd':
			cfg.debug = true
		case 'a':
			cfg.opts.PermissiveAsm = true
		case 'n':
			cfg.noColor = true
		case 's':
			n, err := strconv.ParseUint(opt.Value, 0, 0)
			if err != nil || n == 0 {
				return cfg, nil, fmt.Errorf("invalid -s value %q", opt.Value)
			}
			cfg.opts.MaxShift = uint(n)
		case 'h':
			return cfg, nil, errHelp
		}
	}
	return cfg, argv[optind:], nil
}

// evaluate runs the pipeline stage by stage so intermediate forms can be
// shown.
func evaluate(cfg config, input string, stderr io.Writer) (*ast.Node, error) {
	tokens, err := lexer.Scan(input)
	if cfg.debug {
		_, _ = pretty.Fprintf(stderr, "tokens: %# v\n", tokens.Slice())
	}
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, parser.ErrEmpty
	}
	if cfg.showTree {
		fmt.Fprint(stderr, root.Dump())
	}
	if cfg.debug {
		_, _ = pretty.Fprintf(stderr, "tree: %# v\n", root)
	}
	if err := executor.Reduce(root, cfg.opts); err != nil {
		return nil, err
	}
	if cfg.showTree {
		fmt.Fprint(stderr, root.Dump())
	}
	return root, nil
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, args, err := parseFlags(argv)
	if errors.Is(err, errHelp) {
		fmt.Fprintln(stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "ratcalc: %s\n%s\n", err, usage)
		return 2
	}

	errColor := color.New(color.FgRed, color.Bold)
	if cfg.noColor {
		errColor.DisableColor()
	}

	input := strings.Join(args, " ")
	if len(args) == 0 {
		buf, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "ratcalc: read stdin: %s\n", err)
			return 1
		}
		input = string(buf)
	}

	value, err := evaluate(cfg, input, stderr)
	if err != nil {
		_, _ = errColor.Fprint(stderr, "ratcalc:")
		fmt.Fprintf(stderr, " %s\n", err)
		return 1
	}
	fmt.Fprintln(stdout, value)
	return 0
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ratcalc: ")
	if code := run(os.Args, os.Stdin, os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
	if err := os.Stdout.Close(); err != nil {
		log.Fatalf("close stdout: %s.", err)
	}
}
