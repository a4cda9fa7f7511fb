package lex

import "github.com/dekarrin/darter/internal/darter/token"

// Lexer tokenizes source text against a fixed set of rules. Two strategies
// implement it: the primary DFA-based scanner (table-driven, built by
// subset construction over the rules' NFA fragments) and the alternative
// regexp-based scanner (one compiled pattern per rule, tried longest-match)
// used by darterlex's --strategy=regex flag.
type Lexer interface {
	// Lex scans all of src and returns every token it produces, in order,
	// along with the line/column-annotated diagnostics for any lexeme that
	// matched no rule.
	Lex(src string) ([]token.Token, []Diagnostic)
}

// Diagnostic describes one span of source text the lexer could not match
// against any rule. It is never fatal: the scanner always keeps going past
// it, emitting a single token.Invalid token for the span so one bad
// character never stops tokenization of the rest of the file.
type Diagnostic struct {
	Message string
	Line    int
	Col     int
}
