package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/parse"
)

func smallGrammar() *grammar.Grammar {
	g := grammar.New("S")
	g.AddTerminal("a")
	g.AddRule("S", []string{"a"})
	return g
}

func TestCache_SaveThenLoadRoundTrips(t *testing.T) {
	src := []byte("S\nS -> a\n")
	hash := HashGrammar(src)

	g := smallGrammar()
	table := parse.BuildTable(g, parse.ShiftWins)

	path := filepath.Join(t.TempDir(), "grammar.darterc")
	Save(path, hash, table)

	aut := automaton.BuildLR1Automaton(smallGrammar())
	loaded, ok := Load(path, hash, aut, parse.ShiftWins)
	require.True(t, ok)
	assert.Equal(t, table.Action, loaded.Action)
	assert.Equal(t, table.Goto, loaded.Goto)
}

func TestCache_HashMismatchIsMiss(t *testing.T) {
	g := smallGrammar()
	table := parse.BuildTable(g, parse.ShiftWins)

	path := filepath.Join(t.TempDir(), "grammar.darterc")
	Save(path, HashGrammar([]byte("original")), table)

	aut := automaton.BuildLR1Automaton(smallGrammar())
	_, ok := Load(path, HashGrammar([]byte("changed")), aut, parse.ShiftWins)
	assert.False(t, ok)
}

func TestCache_MissingFileIsMiss(t *testing.T) {
	aut := automaton.BuildLR1Automaton(smallGrammar())
	_, ok := Load(filepath.Join(t.TempDir(), "nope.darterc"), "whatever", aut, parse.ShiftWins)
	assert.False(t, ok)
}
