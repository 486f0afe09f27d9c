// Package repl provides the interactive terminal front end: line
// editing, balanced-expression input collection, tab completion, and
// colored output. The language semantics live in pkg/core.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"minilisp/pkg/core"
)

// Run starts an interactive session over env. Every diagnostic is
// printed here; a non-nil return only signals that the caller should
// exit non-zero. Errors are fatal: there is no recovery.
func Run(env *core.Env) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          primaryPrompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    &lispCompleter{env: env},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		return err
	}
	defer rl.Close()

	printBanner()
	formatter := NewErrorFormatter()
	resultColor := color.New(color.FgGreen)

	for {
		input, err := readBalanced(rl)
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		forms, err := core.ReadString(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.Format(err))
			return err
		}
		for _, form := range forms {
			result, err := core.Eval(env, form)
			if err != nil {
				fmt.Fprintln(os.Stderr, formatter.Format(err))
				return err
			}
			fmt.Printf("=> %s\n", resultColor.Sprint(result.String()))
		}
	}
}

func printBanner() {
	titleColor := color.New(color.FgCyan, color.Bold)
	instructionColor := color.New(color.FgYellow)
	titleColor.Println(core.Banner)
	instructionColor.Println("Type expressions to evaluate them, or (exit) to quit.")
	instructionColor.Println("Multi-line input is supported; the prompt waits for balanced parentheses.")
	fmt.Println()
}

func primaryPrompt() string {
	return color.New(color.FgBlue, color.Bold).Sprint("minilisp> ")
}

func continuationPrompt() string {
	return color.New(color.FgHiBlack).Sprint("...       ")
}

// readBalanced collects lines until the parentheses balance, skipping
// text behind ; comments when counting.
func readBalanced(rl *readline.Instance) (string, error) {
	var lines []string
	depth := 0
	first := true

	for {
		if first {
			rl.SetPrompt(primaryPrompt())
			first = false
		} else {
			rl.SetPrompt(continuationPrompt())
		}

		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, line)
		depth += parenDepth(line)

		if depth == 0 && strings.TrimSpace(stripComment(strings.Join(lines, "\n"))) != "" {
			break
		}
		if depth < 0 {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

// parenDepth returns the net parenthesis depth of one line, ignoring
// everything after a comment.
func parenDepth(line string) int {
	depth := 0
	for _, ch := range line {
		switch ch {
		case ';':
			return depth
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}

// stripComment removes ; comments from every line of input.
func stripComment(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}
