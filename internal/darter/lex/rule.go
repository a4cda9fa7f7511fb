// Package lex turns a set of declarative token rules into a scanner: either
// the primary DFA-based strategy (rules compiled to NFA fragments, joined,
// and subset-constructed into one DFA) or the alternative regexp-based
// strategy, both behind the same Lexer interface.
package lex

import (
	"bufio"
	"io"
	"strings"
)

// Kind tags the pattern shape a Rule follows: a literal string to match
// verbatim, or one of the two structural shapes recognized for identifier
// and numeric-constant rules.
type Kind int

const (
	KindLiteral Kind = iota
	KindIdentifier
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindIdentifier:
		return "identifier"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// classLetters maps a rule line's leading class letter to the closed
// six-tag token class set.
var classLetters = map[byte]string{
	'K': "keyword",
	'I': "identifier",
	'C': "constant",
	'L': "limiter",
	'O': "operator",
	'E': "invalid",
}

// Rule is one declarative token rule: the closed-set class letter maps to
// (keyword, identifier, constant, limiter, operator, invalid), the pattern
// shape it follows, and (for KindLiteral only) the exact text it matches.
// Pattern holds the rule's raw right-hand side exactly as declared, kept
// for display even when it isn't consulted structurally (identifier and
// constant rules are recognized by class letter alone, per the fixed
// two-state and digit-run skeletons; their declared pattern text is never
// parsed as a generic regex).
type Rule struct {
	Class   string
	Kind    Kind
	Literal string
	Pattern string
}

// LoadRules reads token rules from r, one per non-empty, non-comment
// ("#"-prefixed) line, in the form:
//
//	CLASS_LETTER -> PATTERN
//
// CLASS_LETTER is one of K, I, C, L, O, E, mapped by first letter to
// keyword/identifier/constant/limiter/operator/invalid. PATTERN is a
// literal string for K/L/O/E rules; for I/C rules it is the structural
// form recognized by the NFA builder (e.g. [a-zA-Z_][a-zA-Z0-9_]* for
// identifiers, [0-9]+ for constants) and is not parsed as a generic regex.
//
// A line with no "->" delimiter, or an unrecognized class letter, is
// skipped silently rather than treated as an error: comments, blank lines,
// and malformed rule lines all share this permissive path.
//
// Rule order is significant: the DFA merges same-length matches by
// preferring whichever rule was declared first, so a keyword's literal rule
// must be declared before the identifier rule it would otherwise also match.
func LoadRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		arrow := strings.Index(line, "->")
		if arrow < 0 {
			continue
		}
		letterField := strings.TrimSpace(line[:arrow])
		pattern := strings.TrimSpace(line[arrow+2:])
		if len(letterField) != 1 {
			continue
		}
		class, ok := classLetters[letterField[0]]
		if !ok {
			continue
		}

		switch letterField[0] {
		case 'I':
			rules = append(rules, Rule{Class: class, Kind: KindIdentifier, Pattern: pattern})
		case 'C':
			rules = append(rules, Rule{Class: class, Kind: KindConstant, Pattern: pattern})
		default:
			rules = append(rules, Rule{Class: class, Kind: KindLiteral, Literal: pattern, Pattern: pattern})
		}
	}
	return rules, scanner.Err()
}
