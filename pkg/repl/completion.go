package repl

import (
	"sort"
	"strings"

	"minilisp/pkg/core"
)

// lispCompleter implements readline.AutoCompleter over the symbols
// bound anywhere on the environment chain.
type lispCompleter struct {
	env *core.Env
}

// Do completes the identifier under the cursor.
func (lc *lispCompleter) Do(line []rune, pos int) ([][]rune, int) {
	before := string(line[:pos])
	start := len(before)
	for start > 0 && isSymbolRune(rune(before[start-1])) {
		start--
	}
	prefix := before[start:]
	if prefix == "" {
		return nil, 0
	}

	var matches []string
	seen := make(map[string]bool)
	for _, name := range lc.env.Symbols() {
		if !seen[name] && strings.HasPrefix(name, prefix) {
			seen[name] = true
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	var suggestions [][]rune
	for _, name := range matches {
		suggestions = append(suggestions, []rune(name[len(prefix):]))
	}
	return suggestions, len(prefix)
}

// isSymbolRune covers both identifier lead characters and the narrower
// set allowed after the first character.
func isSymbolRune(ch rune) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '-' || strings.ContainsRune("+=!@#$%^&*", ch)
}
