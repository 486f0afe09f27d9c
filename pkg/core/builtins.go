package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Stdout is where println and the REPL write. Tests swap it to capture
// output.
var Stdout io.Writer = os.Stdout

// NewRootEnv creates the initial global environment: the binding t and
// one primitive per built-in operation.
func NewRootEnv() *Env {
	env := NewEnv(Nil, nil)
	env.Define(Intern("t"), True)
	addPrimitive(env, "quote", primQuote)
	addPrimitive(env, "list", primList)
	addPrimitive(env, "setq", primSetq)
	addPrimitive(env, "+", primPlus)
	addPrimitive(env, "define", primDefine)
	addPrimitive(env, "defun", primDefun)
	addPrimitive(env, "defmacro", primDefmacro)
	addPrimitive(env, "macroexpand", primMacroexpand)
	addPrimitive(env, "lambda", primLambda)
	addPrimitive(env, "if", primIf)
	addPrimitive(env, "=", primNumEq)
	addPrimitive(env, "println", primPrintln)
	addPrimitive(env, "exit", primExit)
	return env
}

func addPrimitive(env *Env, name string, fn PrimFn) {
	env.Define(Intern(name), &Primitive{Name: name, Fn: fn})
}

// (quote expr)
func primQuote(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	if n != 1 {
		return nil, errors.New("malformed quote")
	}
	return args.(*Cell).Car, nil
}

// (list expr ...)
func primList(env *Env, args Obj) (Obj, error) {
	return EvalList(env, args)
}

// (setq sym expr) mutates an existing binding anywhere up the chain.
func primSetq(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	cell, _ := args.(*Cell)
	if n != 2 {
		return nil, errors.New("malformed setq")
	}
	sym, ok := cell.Car.(*Symbol)
	if !ok {
		return nil, errors.New("malformed setq")
	}
	bind := env.Lookup(sym)
	if bind == nil {
		return nil, fmt.Errorf("unbound variable %s", sym.Name)
	}
	value, err := Eval(env, cell.Cdr.(*Cell).Car)
	if err != nil {
		return nil, err
	}
	bind.Cdr = value
	return value, nil
}

// (+ expr ...) sums integers; the empty sum is 0.
func primPlus(env *Env, args Obj) (Obj, error) {
	values, err := EvalList(env, args)
	if err != nil {
		return nil, err
	}
	sum := Int(0)
	for p := values; p != Nil; p = p.(*Cell).Cdr {
		i, ok := p.(*Cell).Car.(Int)
		if !ok {
			return nil, errors.New("+ takes only numbers")
		}
		sum += i
	}
	return sum, nil
}

// (define sym expr) prepends a binding to the current frame.
func primDefine(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	cell, _ := args.(*Cell)
	if n != 2 {
		return nil, errors.New("malformed define")
	}
	sym, ok := cell.Car.(*Symbol)
	if !ok {
		return nil, errors.New("malformed define")
	}
	value, err := Eval(env, cell.Cdr.(*Cell).Car)
	if err != nil {
		return nil, err
	}
	env.Define(sym, value)
	return value, nil
}

// makeFunction validates ((params ...) body ...) and captures env.
func makeFunction(env *Env, list Obj, macro bool) (Obj, error) {
	cell, ok := list.(*Cell)
	if !ok || !IsList(cell.Car) {
		return nil, errors.New("malformed lambda")
	}
	if _, ok := cell.Cdr.(*Cell); !ok {
		return nil, errors.New("malformed lambda")
	}
	for p := cell.Car; p != Nil; p = p.(*Cell).Cdr {
		if _, ok := p.(*Cell).Car.(*Symbol); !ok {
			return nil, errors.New("parameter must be a symbol")
		}
		if !IsList(p.(*Cell).Cdr) {
			return nil, errors.New("parameter list is not a flat list")
		}
	}
	fn := Function{Params: cell.Car, Body: cell.Cdr, Env: env}
	if macro {
		m := Macro(fn)
		return &m, nil
	}
	return &fn, nil
}

// (lambda (params ...) body ...)
func primLambda(env *Env, args Obj) (Obj, error) {
	return makeFunction(env, args, false)
}

// handleDefun binds a freshly made function or macro in the current frame.
func handleDefun(env *Env, args Obj, macro bool) (Obj, error) {
	cell, ok := args.(*Cell)
	if !ok {
		return nil, errors.New("malformed defun")
	}
	sym, ok := cell.Car.(*Symbol)
	if !ok {
		return nil, errors.New("malformed defun")
	}
	if _, ok := cell.Cdr.(*Cell); !ok {
		return nil, errors.New("malformed defun")
	}
	fn, err := makeFunction(env, cell.Cdr, macro)
	if err != nil {
		return nil, err
	}
	env.Define(sym, fn)
	return fn, nil
}

// (defun name (params ...) body ...)
func primDefun(env *Env, args Obj) (Obj, error) {
	return handleDefun(env, args, false)
}

// (defmacro name (params ...) body ...)
func primDefmacro(env *Env, args Obj) (Obj, error) {
	return handleDefun(env, args, true)
}

// (macroexpand form) returns the one-level expansion without evaluating it.
func primMacroexpand(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	if n != 1 {
		return nil, errors.New("malformed macroexpand")
	}
	return Macroexpand(env, args.(*Cell).Car)
}

// (if cond then else ...) treats only Nil as false; the else forms run
// as an implicit progn.
func primIf(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, errors.New("malformed if")
	}
	cell := args.(*Cell)
	cond, err := Eval(env, cell.Car)
	if err != nil {
		return nil, err
	}
	if cond != Nil {
		return Eval(env, cell.Cdr.(*Cell).Car)
	}
	els := cell.Cdr.(*Cell).Cdr
	if els == Nil {
		return Nil, nil
	}
	return Progn(env, els)
}

// (= a b) compares two integers.
func primNumEq(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, errors.New("malformed =")
	}
	values, err := EvalList(env, args)
	if err != nil {
		return nil, err
	}
	x, xok := values.(*Cell).Car.(Int)
	y, yok := values.(*Cell).Cdr.(*Cell).Car.(Int)
	if !xok || !yok {
		return nil, errors.New("= only takes numbers")
	}
	if x == y {
		return True, nil
	}
	return Nil, nil
}

// (println expr) prints the value followed by a newline and returns Nil.
func primPrintln(env *Env, args Obj) (Obj, error) {
	n, err := ListLength(args)
	if err != nil {
		return nil, err
	}
	if n != 1 {
		return nil, errors.New("malformed println")
	}
	value, err := Eval(env, args.(*Cell).Car)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(Stdout, value.String())
	return Nil, nil
}

// (exit) terminates the process with success status.
func primExit(env *Env, args Obj) (Obj, error) {
	os.Exit(0)
	return Nil, nil
}
