package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprGrammar() *Grammar {
	g := New("E")
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

func TestGrammar_RuleGrouping(t *testing.T) {
	g := exprGrammar()

	eProds := g.Rule("E")
	assert.Len(t, eProds, 2)
	assert.Equal(t, "E -> E + T", eProds[0].String())
	assert.Equal(t, "E -> T", eProds[1].String())
}

func TestGrammar_Augmented(t *testing.T) {
	g := exprGrammar()
	ag := g.Augmented()

	assert.Equal(t, "E'", ag.StartSymbol())
	assert.Equal(t, Production{
		Index: 0,
		LHS:   NewNonTerminal("E'"),
		RHS:   []Symbol{NewNonTerminal("E")},
	}, ag.Production(0))

	// original grammar is untouched by augmentation
	assert.Equal(t, "E", g.StartSymbol())
}

func TestGrammar_Validate(t *testing.T) {
	g := exprGrammar()
	assert.NoError(t, g.Validate())

	bad := New("S")
	bad.AddTerminal("a")
	bad.AddRule("S", []string{"Unknown"})
	assert.Error(t, bad.Validate())
}

func TestGrammar_NullableRule(t *testing.T) {
	g := New("S")
	g.AddTerminal("a")
	g.AddRule("S", []string{"A", "a"})
	g.AddRule("A", nil)
	g.AddRule("A", []string{"a"})

	prods := g.Rule("A")
	assert.True(t, prods[0].Nullable())
	assert.False(t, prods[1].Nullable())
}

func TestFirstFollow_ExprGrammar(t *testing.T) {
	g := exprGrammar().Augmented()
	ff := ComputeFirstFollow(g)

	for _, nt := range []string{"E", "T", "F"} {
		first := ff.First(nt)
		assert.True(t, first.Has(NewTerminal("(")), "FIRST(%s) should contain (", nt)
		assert.True(t, first.Has(NewTerminal("id")), "FIRST(%s) should contain id", nt)
		assert.False(t, ff.IsNullable(nt))
	}

	followE := ff.Follow("E")
	assert.True(t, followE.Has(EndMarker))
	assert.True(t, followE.Has(NewTerminal("+")))
	assert.True(t, followE.Has(NewTerminal(")")))

	followT := ff.Follow("T")
	assert.True(t, followT.Has(NewTerminal("+")))
	assert.True(t, followT.Has(NewTerminal("*")))
	assert.True(t, followT.Has(EndMarker))
}

func TestFirstFollow_NullableProduction(t *testing.T) {
	g := New("S")
	g.AddTerminal("a")
	g.AddTerminal("b")
	g.AddRule("S", []string{"A", "b"})
	g.AddRule("A", []string{"a"})
	g.AddRule("A", nil)
	g = g.Augmented()

	ff := ComputeFirstFollow(g)
	assert.True(t, ff.IsNullable("A"))
	firstS := ff.First("S")
	assert.True(t, firstS.Has(NewTerminal("a")))
	assert.True(t, firstS.Has(NewTerminal("b")))

	followA := ff.Follow("A")
	assert.True(t, followA.Has(NewTerminal("b")))
}

func TestFirstOfSequence_EmptyIsEpsilon(t *testing.T) {
	g := exprGrammar()
	ff := ComputeFirstFollow(g)
	seq := ff.FirstOfSequence(nil)
	assert.True(t, seq.Has(Eps))
	assert.Equal(t, 1, seq.Len())
}
