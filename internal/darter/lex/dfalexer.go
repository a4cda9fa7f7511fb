package lex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/token"
)

// DFALexer is the primary lexer strategy: rules are compiled to NFA
// fragments (one per rule), joined under a single start state, and
// subset-constructed into one DFA (Algorithm 3.20). Scanning then walks
// that DFA doing longest-match (maximal munch) from each position.
type DFALexer struct {
	rules []Rule
	dfa   *automaton.DFA[int]
	lines []string
}

// NewDFALexer compiles rules into a table-driven lexer.
func NewDFALexer(rules []Rule) *DFALexer {
	nfa := BuildNFA(rules)
	dfa := nfa.ToDFA(MergeAcceptingRule, AnyAccepting)
	return &DFALexer{rules: rules, dfa: dfa}
}

func (l *DFALexer) Lex(src string) ([]token.Token, []Diagnostic) {
	l.lines = strings.Split(src, "\n")

	var toks []token.Token
	var diags []Diagnostic

	runes := []rune(src)
	pos := 0
	line, col := 1, 1

	advance := func(n int) {
		for i := 0; i < n; i++ {
			if runes[pos+i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += n
	}

	for pos < len(runes) {
		if unicode.IsSpace(runes[pos]) {
			advance(1)
			continue
		}

		matchLen, ruleIdx := l.longestMatch(runes[pos:])
		if matchLen == 0 {
			diags = append(diags, Diagnostic{
				Message: fmt.Sprintf("unrecognized character %q", runes[pos]),
				Line:    line, Col: col,
			})
			toks = append(toks, l.makeToken(token.Invalid, string(runes[pos]), line, col))
			advance(1)
			continue
		}

		class := l.rules[ruleIdx].Class
		lexeme := string(runes[pos : pos+matchLen])

		// a constant immediately followed by an identifier-start character
		// (no separator) is not "constant then identifier": the original
		// scanner treats the whole run as one invalid token.
		if l.rules[ruleIdx].Kind == KindConstant {
			extra := l.scanIdentTail(runes[pos+matchLen:])
			if extra > 0 {
				lexeme = string(runes[pos : pos+matchLen+extra])
				class = token.Invalid
				matchLen += extra
			}
		}

		startLine, startCol := line, col
		toks = append(toks, l.makeToken(class, lexeme, startLine, startCol))
		advance(matchLen)
	}

	return toks, diags
}

// longestMatch walks l.dfa from its start state over in, returning the
// length of the longest prefix that ends on an accepting state and the
// rule index that state carries. Returns (0, -1) if no prefix (not even a
// single character) is accepted.
func (l *DFALexer) longestMatch(in []rune) (int, int) {
	cur := l.dfa.Start
	lastAcceptLen := 0
	lastAcceptRule := -1

	for i, ch := range in {
		next, ok := l.dfa.Next(cur, string(ch))
		if !ok {
			break
		}
		cur = next
		if l.dfa.IsAccepting(cur) {
			lastAcceptLen = i + 1
			lastAcceptRule = l.dfa.Value(cur)
		}
	}

	return lastAcceptLen, lastAcceptRule
}

// scanIdentTail returns the length of the maximal run of identifier-
// continuation characters (letters, digits, underscore) at the start of in.
func (l *DFALexer) scanIdentTail(in []rune) int {
	n := 0
	for n < len(in) {
		ch := in[n]
		if !(unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_') {
			break
		}
		n++
	}
	return n
}

func (l *DFALexer) makeToken(class, lexeme string, line, col int) token.Token {
	fullLine := ""
	if line-1 >= 0 && line-1 < len(l.lines) {
		fullLine = l.lines[line-1]
	}
	return token.Token{Class: class, Lexeme: lexeme, Line: line, LinePos: col, FullLine: fullLine}
}
