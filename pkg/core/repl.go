package core

import (
	"fmt"
	"io"
	"os"
)

// Banner is the line written to output on startup.
const Banner = "minilisp"

// REPL is a read-evaluate-print loop over a byte stream.
type REPL struct {
	env *Env
	in  io.Reader
	out io.Writer
}

// NewREPL creates a REPL over standard input and output with a fresh
// root environment.
func NewREPL() *REPL {
	return &REPL{env: NewRootEnv(), in: os.Stdin, out: Stdout}
}

// NewREPLWith creates a REPL over the given streams.
func NewREPLWith(env *Env, in io.Reader, out io.Writer) *REPL {
	return &REPL{env: env, in: in, out: out}
}

// Env returns the REPL's global environment.
func (r *REPL) Env() *Env {
	return r.env
}

// Run prints the banner, then reads, evaluates, and prints top-level
// forms until end of input. The first error stops the loop; per the
// failure model there is no recovery.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, Banner)
	rd := NewReader(r.in)
	for {
		obj, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		result, err := Eval(r.env, obj)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, result.String())
	}
}

// EvalString evaluates every form in src against the REPL's environment
// and returns the last result, or Nil for empty input.
func (r *REPL) EvalString(src string) (Obj, error) {
	forms, err := ReadString(src)
	if err != nil {
		return nil, err
	}
	result := Nil
	for _, form := range forms {
		result, err = Eval(r.env, form)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// LoadFile reads and evaluates a file of forms, discarding results.
func (r *REPL) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %v", filename, err)
	}
	defer f.Close()
	forms, err := ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to parse file %s: %v", filename, err)
	}
	for _, form := range forms {
		if _, err := Eval(r.env, form); err != nil {
			return fmt.Errorf("failed to evaluate expression in file %s: %v", filename, err)
		}
	}
	return nil
}
