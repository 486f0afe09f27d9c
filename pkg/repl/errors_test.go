package repl

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		msg      string
		expected ErrorType
	}{
		{"unclosed parenthesis", ErrorTypeReader},
		{"stray dot", ErrorTypeReader},
		{"stray close parenthesis", ErrorTypeReader},
		{"unexpected character: [", ErrorTypeReader},
		{"symbol name too long", ErrorTypeReader},
		{"closed parenthesis expected after dot", ErrorTypeReader},
		{"Undefined symbol: foo", ErrorTypeUndefined},
		{"unbound variable foo", ErrorTypeUndefined},
		{"+ takes only numbers", ErrorTypeTypeError},
		{"= only takes numbers", ErrorTypeTypeError},
		{"the head of a list must be a function", ErrorTypeTypeError},
		{"parameter must be a symbol", ErrorTypeTypeError},
		{"length: cannot handle dotted list", ErrorTypeTypeError},
		{"malformed setq", ErrorTypeShape},
		{"cannot apply function: number of arguments does not match", ErrorTypeShape},
		{"parameter list is not a flat list", ErrorTypeShape},
		{"something else entirely", ErrorTypeGeneral},
	}

	ef := NewErrorFormatter()
	for _, test := range tests {
		if got := ef.categorize(test.msg); got != test.expected {
			t.Errorf("Expected category %v for %q, got %v", test.expected, test.msg, got)
		}
	}
}

func TestFormat(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	ef := NewErrorFormatter()

	tests := []struct {
		err      error
		expected string
	}{
		{errors.New("stray dot"), "Reader Error: stray dot"},
		{errors.New("Undefined symbol: foo"), "Undefined Symbol: Undefined symbol: foo"},
		{errors.New("+ takes only numbers"), "Type Error: + takes only numbers"},
		{errors.New("malformed if"), "Malformed Form: malformed if"},
		{errors.New("mystery"), "Error: mystery"},
	}

	for _, test := range tests {
		if got := ef.Format(test.err); got != test.expected {
			t.Errorf("Expected %q, got %q", test.expected, got)
		}
	}

	if got := ef.Format(nil); got != "" {
		t.Errorf("Expected empty string for nil error, got %q", got)
	}
}

func TestFormatKeepsSingleLine(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	ef := NewErrorFormatter()
	got := ef.Format(errors.New("unclosed parenthesis"))
	if strings.Contains(got, "\n") {
		t.Errorf("Expected a single-line diagnostic, got %q", got)
	}
}
