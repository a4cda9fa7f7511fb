package lex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/darter/internal/darter/lex"
)

func sampleRules() []lex.Rule {
	return []lex.Rule{
		{Class: "keyword", Kind: lex.KindLiteral, Literal: "if"},
		{Class: "keyword", Kind: lex.KindLiteral, Literal: "else"},
		{Class: "identifier", Kind: lex.KindIdentifier},
		{Class: "constant", Kind: lex.KindConstant},
		{Class: "operator", Kind: lex.KindLiteral, Literal: "+"},
		{Class: "operator", Kind: lex.KindLiteral, Literal: "="},
		{Class: "limiter", Kind: lex.KindLiteral, Literal: "("},
		{Class: "limiter", Kind: lex.KindLiteral, Literal: ")"},
	}
}

func TestLoadRules_ParsesClassLetters(t *testing.T) {
	src := "K -> if\nI -> [a-zA-Z_][a-zA-Z0-9_]*\n# comment\nC -> [0-9]+\nL -> ;\nO -> =\n"
	rules, err := lex.LoadRules(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rules, 5)

	assert.Equal(t, lex.KindLiteral, rules[0].Kind)
	assert.Equal(t, "keyword", rules[0].Class)
	assert.Equal(t, "if", rules[0].Literal)

	assert.Equal(t, lex.KindIdentifier, rules[1].Kind)
	assert.Equal(t, "identifier", rules[1].Class)

	assert.Equal(t, lex.KindConstant, rules[2].Kind)
	assert.Equal(t, "constant", rules[2].Class)

	assert.Equal(t, "limiter", rules[3].Class)
	assert.Equal(t, ";", rules[3].Literal)

	assert.Equal(t, "operator", rules[4].Class)
	assert.Equal(t, "=", rules[4].Literal)
}

func TestLoadRules_EndToEndScenario(t *testing.T) {
	src := "K -> int\nK -> return\nI -> [a-zA-Z_][a-zA-Z0-9_]*\nC -> [0-9]+\nL -> ;\nO -> =\n"
	rules, err := lex.LoadRules(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rules, 6)

	l := lex.NewDFALexer(rules)
	toks, diags := l.Lex("int x = 42;")
	require.Empty(t, diags)

	var got [][2]string
	for _, tok := range toks {
		got = append(got, [2]string{tok.Class, tok.Lexeme})
	}
	assert.Equal(t, [][2]string{
		{"keyword", "int"},
		{"identifier", "x"},
		{"operator", "="},
		{"constant", "42"},
		{"limiter", ";"},
	}, got)
}

func TestLoadRules_SkipsMalformedLinesSilently(t *testing.T) {
	src := "K -> if\nthis line has no arrow\nZ -> unknown letter\nI -> [a-zA-Z_][a-zA-Z0-9_]*\n"
	rules, err := lex.LoadRules(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "keyword", rules[0].Class)
	assert.Equal(t, "identifier", rules[1].Class)
}

func TestDFALexer_KeywordBeatsIdentifier(t *testing.T) {
	l := lex.NewDFALexer(sampleRules())
	toks, diags := l.Lex("if iffy")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, "keyword", toks[0].Class)
	assert.Equal(t, "identifier", toks[1].Class)
	assert.Equal(t, "iffy", toks[1].Lexeme)
}

func TestDFALexer_ConstantWithDecimal(t *testing.T) {
	l := lex.NewDFALexer(sampleRules())
	toks, diags := l.Lex("x = 3.14 + 2")
	require.Empty(t, diags)
	var classes []string
	for _, tok := range toks {
		classes = append(classes, tok.Class)
	}
	assert.Equal(t, []string{"identifier", "operator", "constant", "operator", "constant"}, classes)
}

func TestDFALexer_DigitPrefixedIdentifierIsInvalid(t *testing.T) {
	l := lex.NewDFALexer(sampleRules())
	toks, diags := l.Lex("3abc")
	require.Empty(t, diags)
	require.Len(t, toks, 1)
	assert.Equal(t, "invalid", toks[0].Class)
	assert.Equal(t, "3abc", toks[0].Lexeme)
}

func TestDFALexer_UnrecognizedCharacterProducesInvalidTokenAndContinues(t *testing.T) {
	l := lex.NewDFALexer(sampleRules())
	toks, diags := l.Lex("x @ y")
	require.Len(t, diags, 1)
	require.Len(t, toks, 3)
	assert.Equal(t, "invalid", toks[1].Class)
	assert.Equal(t, "@", toks[1].Lexeme)
}

func TestRegexLexer_ComplexLiteralCoalescing(t *testing.T) {
	l, err := lex.NewRegexLexer(sampleRules(), true)
	require.NoError(t, err)

	toks, diags := l.Lex("3+4i")
	require.Empty(t, diags)
	require.Len(t, toks, 1)
	assert.Equal(t, "complex", toks[0].Class)
	assert.Equal(t, "3+4i", toks[0].Lexeme)
}

func TestRegexLexer_ComplexDisabledLeavesTokensSeparate(t *testing.T) {
	l, err := lex.NewRegexLexer(sampleRules(), false)
	require.NoError(t, err)

	toks, _ := l.Lex("3+4")
	require.Len(t, toks, 3)
	assert.Equal(t, "constant", toks[0].Class)
	assert.Equal(t, "operator", toks[1].Class)
	assert.Equal(t, "constant", toks[2].Class)
}
