package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"minilisp/pkg/core"
	"minilisp/pkg/repl"
)

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		eval     = flag.String("e", "", "Evaluate code directly instead of reading from standard input")
		filename = flag.String("f", "", "File to execute")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                     # Start interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f script.lisp      # Execute a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)'      # Evaluate code directly\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s < script.lisp       # Read forms from standard input\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	r := core.NewREPL()

	if *eval != "" {
		result, err := r.EvalString(*eval)
		if err != nil {
			fatal(err)
		}
		fmt.Println(result)
		return
	}

	if *filename != "" {
		if err := r.LoadFile(*filename); err != nil {
			fatal(err)
		}
		return
	}

	if len(flag.Args()) > 0 {
		if err := r.LoadFile(flag.Args()[0]); err != nil {
			fatal(err)
		}
		return
	}

	// A terminal gets the line-edited front end; a pipe gets the plain
	// stream loop so output stays byte-exact.
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := repl.Run(r.Env()); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := r.Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
