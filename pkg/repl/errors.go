package repl

import (
	"strings"

	"github.com/fatih/color"
)

// ErrorType categorizes diagnostics for color coding.
type ErrorType int

const (
	ErrorTypeReader ErrorType = iota
	ErrorTypeUndefined
	ErrorTypeTypeError
	ErrorTypeShape
	ErrorTypeGeneral
)

// ErrorFormatter renders a fatal diagnostic as a single colored line.
type ErrorFormatter struct {
	readerColor    *color.Color
	undefinedColor *color.Color
	typeColor      *color.Color
	shapeColor     *color.Color
	generalColor   *color.Color
	prefixColor    *color.Color
}

// NewErrorFormatter creates a formatter with predefined colors.
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		readerColor:    color.New(color.FgRed, color.Bold),
		undefinedColor: color.New(color.FgYellow, color.Bold),
		typeColor:      color.New(color.FgCyan, color.Bold),
		shapeColor:     color.New(color.FgMagenta, color.Bold),
		generalColor:   color.New(color.FgWhite, color.Bold),
		prefixColor:    color.New(color.FgRed, color.Bold),
	}
}

// categorize determines the error type from the message text.
func (ef *ErrorFormatter) categorize(msg string) ErrorType {
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "unclosed") ||
		strings.Contains(lower, "stray") ||
		strings.Contains(lower, "unexpected character") ||
		strings.Contains(lower, "unexpected end of input") ||
		strings.Contains(lower, "expected after dot") ||
		strings.Contains(lower, "symbol name too long") {
		return ErrorTypeReader
	}

	if strings.Contains(lower, "undefined symbol") ||
		strings.Contains(lower, "unbound variable") {
		return ErrorTypeUndefined
	}

	if strings.Contains(lower, "takes only numbers") ||
		strings.Contains(lower, "only takes numbers") ||
		strings.Contains(lower, "must be a function") ||
		strings.Contains(lower, "must be a symbol") ||
		strings.Contains(lower, "not a function") ||
		strings.Contains(lower, "must be a list") ||
		strings.Contains(lower, "dotted list") {
		return ErrorTypeTypeError
	}

	if strings.Contains(lower, "malformed") ||
		strings.Contains(lower, "number of arguments") ||
		strings.Contains(lower, "not a flat list") {
		return ErrorTypeShape
	}

	return ErrorTypeGeneral
}

func (ef *ErrorFormatter) colorFor(t ErrorType) *color.Color {
	switch t {
	case ErrorTypeReader:
		return ef.readerColor
	case ErrorTypeUndefined:
		return ef.undefinedColor
	case ErrorTypeTypeError:
		return ef.typeColor
	case ErrorTypeShape:
		return ef.shapeColor
	default:
		return ef.generalColor
	}
}

func (ef *ErrorFormatter) labelFor(t ErrorType) string {
	switch t {
	case ErrorTypeReader:
		return "Reader Error"
	case ErrorTypeUndefined:
		return "Undefined Symbol"
	case ErrorTypeTypeError:
		return "Type Error"
	case ErrorTypeShape:
		return "Malformed Form"
	default:
		return "Error"
	}
}

// Format renders err as a labeled, colored diagnostic line.
func (ef *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	t := ef.categorize(msg)
	prefix := ef.prefixColor.Sprintf("%s:", ef.labelFor(t))
	return prefix + ef.colorFor(t).Sprintf(" %s", msg)
}
