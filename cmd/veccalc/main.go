package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"

	"github.com/zephyrtronium/veccalc"
)

const banner = `Welcome to the vector calculator!
Operators: + add, - subtract, * multiply, / divide, x cross product
Brackets: ( ) [ ]
Vectors: (1,2,3), [1,2,3], (1 2 3), [1 2 3]
Example: ((1,2,3) + (4,5,6)) - (7,8,9)
Example: 1 + 2 * (3 - 4) / 5
Enter a (vector) calculation, or 'exit' to quit.
`

// config controls the shell. prompt is printed before reading each line only
// when interactive is set.
type config struct {
	prompt      string
	interactive bool
	banner      bool
	trace       bool
	echo        bool
}

func main() {
	log.SetFlags(0)
	var (
		inname string
		cfg    config
	)
	flag.StringVar(&inname, "in", env.Str("VECCALC_IN"), "input file (default stdin if no args given)")
	flag.StringVar(&cfg.prompt, "prompt", env.Str("VECCALC_PROMPT", "input (vector) calculation: "), "prompt for interactive input")
	flag.BoolVar(&cfg.banner, "banner", false, "print the help banner even if input is not a terminal")
	flag.BoolVar(&cfg.trace, "trace", env.Bool("VECCALC_TRACE"), "print each operation as it is performed")
	flag.BoolVar(&cfg.echo, "echo", env.Bool("VECCALC_ECHO"), "print parsed expressions")
	flag.Parse()

	if flag.NArg() > 0 && inname == "" {
		if !evalArgs(os.Stdout, flag.Args(), cfg) {
			os.Exit(1)
		}
		return
	}

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	if inname == "" || inname == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			cfg.interactive = true
			cfg.banner = true
		}
	}
	if err := repl(in, os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}

// repl evaluates each line of in until EOF or a line containing "exit".
func repl(in io.Reader, out io.Writer, cfg config) error {
	if cfg.banner {
		fmt.Fprint(out, banner)
	}
	ctx := newContext(out, cfg)
	sc := bufio.NewScanner(in)
	for {
		if cfg.interactive {
			fmt.Fprint(out, cfg.prompt)
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.Contains(strings.ToLower(line), "exit") {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(ctx, out, line, cfg.echo)
	}
	if cfg.interactive {
		fmt.Fprintln(out)
	}
	return sc.Err()
}

// evalArgs evaluates each argument as its own expression. The result is false
// if any of them fails.
func evalArgs(out io.Writer, args []string, cfg config) bool {
	ctx := newContext(out, cfg)
	ok := true
	for _, arg := range args {
		ok = evalLine(ctx, out, arg, cfg.echo) && ok
	}
	return ok
}

func newContext(out io.Writer, cfg config) *veccalc.Context {
	var opts []veccalc.ContextOption
	if cfg.trace {
		opts = append(opts, veccalc.Trace(func(s veccalc.Step) {
			fmt.Fprintln(out, "  ", s)
		}))
	}
	return veccalc.NewContext(opts...)
}

// evalLine prints the result of one expression or its error.
func evalLine(ctx *veccalc.Context, out io.Writer, line string, echo bool) bool {
	a, err := veccalc.ParseString(line)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return false
	}
	if echo {
		fmt.Fprintln(out, a)
	}
	r := ctx.Eval(a)
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(out, "error:", err)
		return false
	}
	fmt.Fprintln(out, r)
	return true
}
