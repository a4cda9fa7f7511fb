package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/grammar"
)

func exprGrammar() *grammar.Grammar {
	g := grammar.New("E")
	g.AddTerminal("+")
	g.AddTerminal("*")
	g.AddTerminal("(")
	g.AddTerminal(")")
	g.AddTerminal("id")

	g.AddRule("E", []string{"E", "+", "T"})
	g.AddRule("E", []string{"T"})
	g.AddRule("T", []string{"T", "*", "F"})
	g.AddRule("T", []string{"F"})
	g.AddRule("F", []string{"(", "E", ")"})
	g.AddRule("F", []string{"id"})
	return g
}

func TestNFAToDFA_SimpleUnion(t *testing.T) {
	// three-state NFA recognizing "a" or "b"
	n := automaton.NewNFA[bool]()
	start := n.AddState(false)
	a := n.AddState(true)
	b := n.AddState(true)
	n.Start = start
	n.AddTransition(start, "a", a)
	n.AddTransition(start, "b", b)

	d := n.ToDFA(
		func(members []int, nfa *automaton.NFA[bool]) bool { return false },
		func(members []int, nfa *automaton.NFA[bool]) bool {
			for _, m := range members {
				if nfa.States[m].Accepting {
					return true
				}
			}
			return false
		},
	)

	next, ok := d.Next(d.Start, "a")
	assert.True(t, ok)
	assert.True(t, d.IsAccepting(next))

	next, ok = d.Next(d.Start, "b")
	assert.True(t, ok)
	assert.True(t, d.IsAccepting(next))

	_, ok = d.Next(d.Start, "c")
	assert.False(t, ok)
}

func TestBuildLR1Automaton_ExprGrammar(t *testing.T) {
	g := exprGrammar()
	a := automaton.BuildLR1Automaton(g)

	assert.Greater(t, a.NumStates(), 1)

	start := a.States[a.Start]
	found := false
	for _, it := range start.Items() {
		p := a.Grammar.Production(it.ProdIndex)
		if p.LHS.Name == "E'" && it.Dot == 0 {
			found = true
			assert.True(t, it.Lookahead.Has(grammar.EndMarker))
		}
	}
	assert.True(t, found, "start state should contain the augmented item E' -> ·E, #")

	idTrans, ok := a.Trans[a.Start]["id"]
	assert.True(t, ok)
	idState := a.States[idTrans]
	// F -> id· should be the lone, complete item in the id-goto state
	items := idState.Items()
	assert.Len(t, items, 1)
	assert.True(t, items[0].IsComplete(a.Grammar.Productions()))
}

func TestClosure_MergesLookaheadsByCore(t *testing.T) {
	g := exprGrammar()
	ag := g.Augmented()
	ff := grammar.ComputeFirstFollow(ag)

	seed := []grammar.Item{{
		ProdIndex: 0,
		Dot:       0,
		Lookahead: grammar.NewSymbolSet(grammar.EndMarker),
	}}
	set := automaton.Closure(ag, ff, seed)

	// E -> ·E + T and E -> ·T should both appear, each with a lookahead set
	// that includes both '+' (from the E + T alternative continuing) and #.
	for _, it := range set.Items() {
		p := ag.Production(it.ProdIndex)
		if p.LHS.Name == "E" {
			assert.True(t, it.Lookahead.Has(grammar.EndMarker))
			assert.True(t, it.Lookahead.Has(grammar.NewTerminal("+")))
		}
	}
}
