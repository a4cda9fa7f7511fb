package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/parse"
	"github.com/dekarrin/darter/internal/darter/token"
)

func TestTokens_RendersOneRowPerToken(t *testing.T) {
	out := Tokens([]token.Token{{Class: "id", Lexeme: "x", Line: 1, LinePos: 1}})
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "x")
}

func TestConflicts_NoConflictsMessage(t *testing.T) {
	g := grammar.New("S")
	g.AddTerminal("a")
	g.AddRule("S", []string{"a"})
	table := parse.BuildTable(g, parse.ShiftWins)

	out := Conflicts(table)
	assert.Equal(t, "(no conflicts)\n", out)
}

func TestRunID_ProducesDistinctValues(t *testing.T) {
	a := RunID()
	b := RunID()
	assert.NotEqual(t, a, b)
}
