package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadGrammar reads a grammar file: every non-empty, non-comment ("#"
// -prefixed) line is a rule of the form
//
//	LHS -> alt1 symbol | alt2 symbol symbol | ε
//
// Alternatives are separated by '|'; an alternative that is empty or the
// literal "ε" denotes a nullable production. Symbols are classified
// terminal or nonterminal purely by the capitalization convention used
// throughout the grammar notation (a capitalized first letter is a
// nonterminal), so forward references to a nonterminal whose own rule line
// appears later in the file resolve correctly.
//
// The first line that parses as a rule also names the start symbol: its
// lhs becomes the grammar's start symbol, and the line is additionally
// recorded as an ordinary production, exactly as every later rule line is.
// A line with no "->" delimiter, or an empty lhs, is skipped silently
// rather than treated as an error: comments, blank lines, and malformed
// rule lines all share this permissive path.
func LoadGrammar(r io.Reader) (*Grammar, error) {
	scanner := bufio.NewScanner(r)
	var g *Grammar

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, alts, ok := parseRuleLine(line)
		if !ok {
			continue
		}

		if g == nil {
			g = New(lhs)
		}
		for _, alt := range alts {
			g.AddRule(lhs, alt)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar file: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("grammar file declared no rules")
	}

	return g, nil
}

// parseRuleLine splits line on "->" and then on "|", returning the lhs and
// one symbol slice per alternative. ok is false when line has no "->"
// delimiter or an empty lhs, signaling the caller to skip it silently.
func parseRuleLine(line string) (lhs string, alts [][]string, ok bool) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return "", nil, false
	}
	lhs = strings.TrimSpace(parts[0])
	if lhs == "" {
		return "", nil, false
	}

	for _, alt := range strings.Split(parts[1], "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" || alt == "ε" {
			alts = append(alts, nil)
			continue
		}
		alts = append(alts, strings.Fields(alt))
	}
	return lhs, alts, true
}
