package lex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dekarrin/darter/internal/darter/token"
)

// RegexLexer is the alternative lexer strategy: one compiled pattern per
// rule, tried against the remaining input in rule order with the longest
// match winning. Unlike DFALexer it is not table-driven, but it is the
// strategy that can recognize complex-number literals, via a post-pass that
// coalesces `constant (+|-) constant"i"` triples into one complex-class
// token — kept as a post-pass rather than a scanner-internal branch so the
// scientific-notation and complex-literal shapes, which the original
// scanner treats as mutually exclusive, never have to be disambiguated
// inside the character-by-character scan itself.
type RegexLexer struct {
	rules           []Rule
	patterns        []*regexp.Regexp
	constantClasses map[string]bool
	enableComplex   bool
}

// NewRegexLexer compiles rules into regex-backed patterns. When
// enableComplex is true, constant-kind rules also match a trailing "i"
// imaginary suffix, and the post-pass in Lex coalesces real+imaginary
// triples into complex-literal tokens.
func NewRegexLexer(rules []Rule, enableComplex bool) (*RegexLexer, error) {
	patterns := make([]*regexp.Regexp, len(rules))
	constantClasses := map[string]bool{}

	for i, r := range rules {
		pat, err := ruleToRegex(r, enableComplex)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Class, err)
		}
		patterns[i] = pat
		if r.Kind == KindConstant {
			constantClasses[r.Class] = true
		}
	}

	return &RegexLexer{rules: rules, patterns: patterns, constantClasses: constantClasses, enableComplex: enableComplex}, nil
}

func ruleToRegex(r Rule, enableComplex bool) (*regexp.Regexp, error) {
	switch r.Kind {
	case KindLiteral:
		return regexp.Compile("^" + regexp.QuoteMeta(r.Literal))
	case KindIdentifier:
		return regexp.Compile(`^[A-Za-z_][A-Za-z0-9_]*`)
	case KindConstant:
		if enableComplex {
			return regexp.Compile(`^[0-9]+(\.[0-9]+)?i?`)
		}
		return regexp.Compile(`^[0-9]+(\.[0-9]+)?`)
	default:
		return nil, fmt.Errorf("unknown rule kind %v", r.Kind)
	}
}

func (l *RegexLexer) Lex(src string) ([]token.Token, []Diagnostic) {
	lines := strings.Split(src, "\n")

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
	fullLine := func() string {
		if line-1 >= 0 && line-1 < len(lines) {
			return lines[line-1]
		}
		return ""
	}

	for pos < len(runes) {
		if unicode.IsSpace(runes[pos]) {
			advance(1)
			continue
		}

		remaining := string(runes[pos:])
		bestByteLen := 0
		bestRule := -1
		for i, re := range l.patterns {
			loc := re.FindStringIndex(remaining)
			if loc != nil && loc[0] == 0 && loc[1] > bestByteLen {
				bestByteLen = loc[1]
				bestRule = i
			}
		}

		if bestByteLen == 0 {
			diags = append(diags, Diagnostic{
				Message: fmt.Sprintf("unrecognized character %q", runes[pos]),
				Line:    line, Col: col,
			})
			toks = append(toks, token.Token{Class: token.Invalid, Lexeme: string(runes[pos]), Line: line, LinePos: col, FullLine: fullLine()})
			advance(1)
			continue
		}

		lexeme := remaining[:bestByteLen]
		toks = append(toks, token.Token{
			Class: l.rules[bestRule].Class, Lexeme: lexeme, Line: line, LinePos: col, FullLine: fullLine(),
		})
		advance(utf8.RuneCountInString(lexeme))
	}

	if l.enableComplex {
		toks = l.coalesceComplex(toks)
	}

	return toks, diags
}

func (l *RegexLexer) coalesceComplex(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		if i+2 < len(toks) &&
			l.constantClasses[toks[i].Class] &&
			(toks[i+1].Lexeme == "+" || toks[i+1].Lexeme == "-") &&
			l.constantClasses[toks[i+2].Class] &&
			strings.HasSuffix(toks[i+2].Lexeme, "i") {

			out = append(out, token.Token{
				Class:    "complex",
				Lexeme:   toks[i].Lexeme + toks[i+1].Lexeme + toks[i+2].Lexeme,
				Line:     toks[i].Line,
				LinePos:  toks[i].LinePos,
				FullLine: toks[i].FullLine,
			})
			i += 3
			continue
		}
		out = append(out, toks[i])
		i++
	}
	return out
}
