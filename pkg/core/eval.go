package core

import (
	"errors"
	"fmt"
)

var errBadArgList = errors.New("argument must be a list")

// Eval evaluates obj against the environment env.
func Eval(env *Env, obj Obj) (Obj, error) {
	switch o := obj.(type) {
	case Int, String, NilType, TrueType, *Primitive, *Function:
		return obj, nil
	case *Symbol:
		bind := env.Lookup(o)
		if bind == nil {
			return nil, fmt.Errorf("Undefined symbol: %s", o.Name)
		}
		return bind.Cdr, nil
	case *Cell:
		expanded, err := Macroexpand(env, obj)
		if err != nil {
			return nil, err
		}
		if expanded != obj {
			return Eval(env, expanded)
		}
		fn, err := Eval(env, o.Car)
		if err != nil {
			return nil, err
		}
		switch fn.(type) {
		case *Primitive, *Function:
		default:
			return nil, errors.New("the head of a list must be a function")
		}
		return Apply(env, fn, o.Cdr)
	default:
		return nil, fmt.Errorf("eval: unexpected object %s", obj)
	}
}

// Apply applies fn to the unevaluated argument list args. Primitives
// evaluate what they need; functions evaluate every argument in the
// caller's environment and run their body in a fresh frame parented on
// the captured environment.
func Apply(env *Env, fn Obj, args Obj) (Obj, error) {
	if !IsList(args) {
		return nil, errBadArgList
	}
	switch f := fn.(type) {
	case *Primitive:
		return f.Fn(env, args)
	case *Function:
		eargs, err := EvalList(env, args)
		if err != nil {
			return nil, err
		}
		newenv, err := pushEnv(f.Env, f.Params, eargs)
		if err != nil {
			return nil, err
		}
		return Progn(newenv, f.Body)
	default:
		return nil, fmt.Errorf("apply: not a function: %s", fn)
	}
}

// Macroexpand performs one macro expansion at the head of obj. Anything
// that is not a call of a symbol bound to a macro is returned unchanged.
// The macro body runs in a frame binding parameters to the unevaluated
// argument forms.
func Macroexpand(env *Env, obj Obj) (Obj, error) {
	cell, ok := obj.(*Cell)
	if !ok {
		return obj, nil
	}
	sym, ok := cell.Car.(*Symbol)
	if !ok {
		return obj, nil
	}
	bind := env.Lookup(sym)
	if bind == nil {
		return obj, nil
	}
	mac, ok := bind.Cdr.(*Macro)
	if !ok {
		return obj, nil
	}
	newenv, err := pushEnv(env, mac.Params, cell.Cdr)
	if err != nil {
		return nil, err
	}
	return Progn(newenv, mac.Body)
}

// pushEnv creates a frame binding each parameter symbol to the
// corresponding value, parented on env.
func pushEnv(env *Env, params, values Obj) (*Env, error) {
	np, err := ListLength(params)
	if err != nil {
		return nil, err
	}
	nv, err := ListLength(values)
	if err != nil {
		return nil, err
	}
	if np != nv {
		return nil, errors.New("cannot apply function: number of arguments does not match")
	}
	vars := Obj(Nil)
	p, q := params, values
	for p != Nil {
		sym := p.(*Cell).Car
		val := q.(*Cell).Car
		vars = Acons(sym, val, vars)
		p = p.(*Cell).Cdr
		q = q.(*Cell).Cdr
	}
	return NewEnv(vars, env), nil
}

// Progn evaluates each form in list sequentially and returns the last
// result. The empty sequence yields Nil.
func Progn(env *Env, list Obj) (Obj, error) {
	result := Nil
	for lp := list; lp != Nil; {
		cell, ok := lp.(*Cell)
		if !ok {
			return nil, errBadArgList
		}
		var err error
		result, err = Eval(env, cell.Car)
		if err != nil {
			return nil, err
		}
		lp = cell.Cdr
	}
	return result, nil
}

// EvalList evaluates each element of list and returns a new list of the
// results.
func EvalList(env *Env, list Obj) (Obj, error) {
	var head, tail *Cell
	for lp := list; lp != Nil; {
		cell, ok := lp.(*Cell)
		if !ok {
			return nil, errBadArgList
		}
		val, err := Eval(env, cell.Car)
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = Cons(val, Nil)
			tail = head
		} else {
			tail.Cdr = Cons(val, Nil)
			tail = tail.Cdr.(*Cell)
		}
		lp = cell.Cdr
	}
	if head == nil {
		return Nil, nil
	}
	return head, nil
}
