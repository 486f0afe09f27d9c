package core

import (
	"errors"
	"strconv"
	"strings"
)

var errDottedList = errors.New("length: cannot handle dotted list")

// Obj is the interface implemented by every runtime value. The String
// method doubles as the printer: it produces the external form written
// by the REPL.
type Obj interface {
	String() string
}

// Int is a machine-word signed integer.
type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String is a byte sequence. The reader never produces one, but the
// constructor exists for primitives that want it.
type String string

func (s String) String() string {
	return string(s)
}

// Symbol is an interned identifier. Two symbols with the same name are
// the same *Symbol; identity is pointer equality.
type Symbol struct {
	Name string
}

func (s *Symbol) String() string {
	return s.Name
}

// Intern table for symbols
var symbols = make(map[string]*Symbol)

// Intern returns the unique symbol for name, allocating it on first use.
func Intern(name string) *Symbol {
	if sym, ok := symbols[name]; ok {
		return sym
	}
	sym := &Symbol{Name: name}
	symbols[name] = sym
	return sym
}

// Cell is a cons cell. Cdr may be any Obj; dotted pairs are permitted.
type Cell struct {
	Car Obj
	Cdr Obj
}

func (c *Cell) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for {
		sb.WriteString(c.Car.String())
		if c.Cdr == Nil {
			break
		}
		next, ok := c.Cdr.(*Cell)
		if !ok {
			sb.WriteString(" . ")
			sb.WriteString(c.Cdr.String())
			break
		}
		sb.WriteByte(' ')
		c = next
	}
	sb.WriteByte(')')
	return sb.String()
}

// Cons allocates a new cell.
func Cons(car, cdr Obj) *Cell {
	return &Cell{Car: car, Cdr: cdr}
}

// Acons prepends the pair (k . v) to the association list alist.
func Acons(k, v, alist Obj) *Cell {
	return Cons(Cons(k, v), alist)
}

// NilType is the type of the unique empty list, which is also the sole
// false value.
type NilType struct{}

// Nil is the empty list.
var Nil Obj = NilType{}

func (NilType) String() string {
	return "()"
}

// TrueType is the type of the truth constant.
type TrueType struct{}

// True is the truth value, bound to the symbol t in the root environment.
var True Obj = TrueType{}

func (TrueType) String() string {
	return "t"
}

// PrimFn is a native operation. It receives its argument forms
// unevaluated and evaluates what it needs.
type PrimFn func(env *Env, args Obj) (Obj, error)

// Primitive wraps a native operation as a first-class value.
type Primitive struct {
	Name string
	Fn   PrimFn
}

func (p *Primitive) String() string {
	return "<primitive>"
}

// Function is a user-defined function: a flat list of parameter symbols,
// a list of body forms, and the environment captured at creation time.
type Function struct {
	Params Obj
	Body   Obj
	Env    *Env
}

func (f *Function) String() string {
	return "<function>"
}

// Macro has the same shape as Function but receives its argument forms
// unevaluated and returns a form to evaluate in its place.
type Macro Function

func (m *Macro) String() string {
	return "<macro>"
}

// Env is an environment frame: an association list from *Symbol to value
// plus a parent pointer. The chain terminates in a root frame with no
// parent. Frames never appear in evaluated trees.
type Env struct {
	Vars   Obj
	Parent *Env
}

// NewEnv creates a frame with the given bindings and parent.
func NewEnv(vars Obj, parent *Env) *Env {
	return &Env{Vars: vars, Parent: parent}
}

// Define prepends a binding to the frame's local variables. The leftmost
// binding for a symbol shadows any later one in the same frame.
func (e *Env) Define(sym *Symbol, val Obj) {
	e.Vars = Acons(sym, val, e.Vars)
}

// Lookup walks the frame chain and returns the first binding cell whose
// car is sym, or nil if the symbol is unbound. Callers may mutate the
// cell's Cdr to implement assignment.
func (e *Env) Lookup(sym *Symbol) *Cell {
	for p := e; p != nil; p = p.Parent {
		for vars := p.Vars; vars != Nil; {
			cell := vars.(*Cell)
			bind := cell.Car.(*Cell)
			if bind.Car == Obj(sym) {
				return bind
			}
			vars = cell.Cdr
		}
	}
	return nil
}

// Symbols returns the names bound anywhere on the frame chain, innermost
// first. The interactive front end uses this for completion.
func (e *Env) Symbols() []string {
	var names []string
	for p := e; p != nil; p = p.Parent {
		for vars := p.Vars; vars != Nil; {
			cell := vars.(*Cell)
			bind := cell.Car.(*Cell)
			names = append(names, bind.Car.(*Symbol).Name)
			vars = cell.Cdr
		}
	}
	return names
}

// IsList reports whether obj is Nil or a cons cell.
func IsList(obj Obj) bool {
	if obj == Nil {
		return true
	}
	_, ok := obj.(*Cell)
	return ok
}

// ListLength returns the number of elements in a proper list.
func ListLength(list Obj) (int, error) {
	n := 0
	for list != Nil {
		cell, ok := list.(*Cell)
		if !ok {
			return 0, errDottedList
		}
		list = cell.Cdr
		n++
	}
	return n, nil
}
