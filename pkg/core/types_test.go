package core

import (
	"testing"
)

func TestInternIdentity(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	if a != b {
		t.Errorf("Expected identical symbols for repeated intern of 'foo', got %p and %p", a, b)
	}
	c := Intern("bar")
	if a == c {
		t.Errorf("Expected distinct symbols for 'foo' and 'bar'")
	}
}

func TestReaderInternsSymbols(t *testing.T) {
	first, err := ReadString("hello")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := ReadString("hello")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first[0] != second[0] {
		t.Errorf("Expected two reads of 'hello' to yield the identical symbol")
	}
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		obj      Obj
		expected string
	}{
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Nil, "()"},
		{True, "t"},
		{Intern("foo"), "foo"},
		{String("hello"), "hello"},
		{Cons(Int(1), Int(2)), "(1 . 2)"},
		{Cons(Int(1), Cons(Int(2), Cons(Int(3), Nil))), "(1 2 3)"},
		{Cons(Cons(Int(1), Nil), Cons(Nil, Nil)), "((1) ())"},
		{Cons(Int(1), Cons(Int(2), Int(3))), "(1 2 . 3)"},
		{&Primitive{Name: "car"}, "<primitive>"},
		{&Function{}, "<function>"},
		{&Macro{}, "<macro>"},
	}

	for _, test := range tests {
		if got := test.obj.String(); got != test.expected {
			t.Errorf("Expected '%s', got '%s'", test.expected, got)
		}
	}
}

func TestAcons(t *testing.T) {
	alist := Acons(Intern("a"), Int(1), Nil)
	alist = Acons(Intern("b"), Int(2), alist)

	if alist.String() != "((b . 2) (a . 1))" {
		t.Errorf("Expected '((b . 2) (a . 1))', got '%s'", alist.String())
	}
}

func TestEnvLookup(t *testing.T) {
	root := NewEnv(Nil, nil)
	root.Define(Intern("x"), Int(1))
	child := NewEnv(Nil, root)
	child.Define(Intern("y"), Int(2))

	if bind := child.Lookup(Intern("y")); bind == nil || bind.Cdr != Obj(Int(2)) {
		t.Errorf("Expected y bound to 2 in child frame")
	}
	if bind := child.Lookup(Intern("x")); bind == nil || bind.Cdr != Obj(Int(1)) {
		t.Errorf("Expected x found through parent frame")
	}
	if bind := root.Lookup(Intern("y")); bind != nil {
		t.Errorf("Expected y unbound in root frame, got %v", bind.Cdr)
	}
	if bind := child.Lookup(Intern("z")); bind != nil {
		t.Errorf("Expected z unbound, got %v", bind.Cdr)
	}
}

func TestEnvShadowing(t *testing.T) {
	env := NewEnv(Nil, nil)
	env.Define(Intern("x"), Int(1))
	env.Define(Intern("x"), Int(2))

	bind := env.Lookup(Intern("x"))
	if bind == nil || bind.Cdr != Obj(Int(2)) {
		t.Errorf("Expected leftmost binding to shadow, got %v", bind.Cdr)
	}
}

func TestBindingCellMutation(t *testing.T) {
	root := NewEnv(Nil, nil)
	root.Define(Intern("x"), Int(1))
	child := NewEnv(Nil, root)

	bind := child.Lookup(Intern("x"))
	if bind == nil {
		t.Fatalf("Expected x bound")
	}
	bind.Cdr = Int(99)

	again := root.Lookup(Intern("x"))
	if again.Cdr != Obj(Int(99)) {
		t.Errorf("Expected mutation through the binding cell to be visible, got %v", again.Cdr)
	}
}

func TestEnvSymbols(t *testing.T) {
	root := NewEnv(Nil, nil)
	root.Define(Intern("outer"), Int(1))
	child := NewEnv(Nil, root)
	child.Define(Intern("inner"), Int(2))

	names := child.Symbols()
	if len(names) != 2 || names[0] != "inner" || names[1] != "outer" {
		t.Errorf("Expected [inner outer], got %v", names)
	}
}

func TestIsList(t *testing.T) {
	tests := []struct {
		obj      Obj
		expected bool
	}{
		{Nil, true},
		{Cons(Int(1), Nil), true},
		{Cons(Int(1), Int(2)), true},
		{Int(1), false},
		{True, false},
		{Intern("x"), false},
	}

	for _, test := range tests {
		if got := IsList(test.obj); got != test.expected {
			t.Errorf("IsList(%s): expected %v, got %v", test.obj, test.expected, got)
		}
	}
}

func TestListLength(t *testing.T) {
	tests := []struct {
		obj      Obj
		expected int
	}{
		{Nil, 0},
		{Cons(Int(1), Nil), 1},
		{Cons(Int(1), Cons(Int(2), Cons(Int(3), Nil))), 3},
	}

	for _, test := range tests {
		n, err := ListLength(test.obj)
		if err != nil {
			t.Errorf("Unexpected error for %s: %v", test.obj, err)
			continue
		}
		if n != test.expected {
			t.Errorf("Expected length %d for %s, got %d", test.expected, test.obj, n)
		}
	}

	if _, err := ListLength(Cons(Int(1), Int(2))); err == nil {
		t.Errorf("Expected error for dotted list length")
	}
}
