package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGrammar_ExprGrammar(t *testing.T) {
	src := `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`
	g, err := LoadGrammar(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "E", g.StartSymbol())
	assert.ElementsMatch(t, []string{"+", "*", "(", ")", "id"}, g.Terminals())
	assert.ElementsMatch(t, []string{"E", "T", "F"}, g.NonTerminals())
	assert.Len(t, g.Rule("E"), 2)
	assert.Len(t, g.Rule("F"), 2)
	assert.NoError(t, g.Validate())
}

func TestLoadGrammar_NullableAlternative(t *testing.T) {
	src := `
S -> A b
A -> a | ε
`
	g, err := LoadGrammar(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "S", g.StartSymbol())
	aProds := g.Rule("A")
	require.Len(t, aProds, 2)
	assert.True(t, aProds[1].Nullable())
}

func TestLoadGrammar_FirstLineDerivesStartAndIsAlsoAProduction(t *testing.T) {
	src := "E -> E + T\nE -> T\nT -> id\n"
	g, err := LoadGrammar(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "E", g.StartSymbol())
	assert.Len(t, g.Rule("E"), 2)
}

func TestLoadGrammar_SkipsMalformedLinesSilently(t *testing.T) {
	src := "this line has no arrow\nS -> A b\n -> empty lhs\nA -> a\n"
	g, err := LoadGrammar(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "S", g.StartSymbol())
	assert.Len(t, g.Rule("S"), 1)
	assert.Len(t, g.Rule("A"), 1)
}

func TestLoadGrammar_EmptyFileIsError(t *testing.T) {
	_, err := LoadGrammar(strings.NewReader(""))
	assert.Error(t, err)
}
