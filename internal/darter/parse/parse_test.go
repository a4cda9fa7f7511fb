package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/parse"
	"github.com/dekarrin/darter/internal/darter/token"
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

// tok builds a token whose lexeme is the grammar terminal name itself
// (§4.10: the driver keys ACTION lookups on the lexeme, not the token
// class), tagged with the closed-set class a lexer would have assigned it.
func tok(class, terminal string) token.Token {
	return token.Token{Class: class, Lexeme: terminal, Line: 1}
}

func TestBuildTable_NoConflictsOnLR1Grammar(t *testing.T) {
	table := parse.BuildTable(exprGrammar(), parse.ShiftWins)
	assert.Empty(t, table.Conflicts)
}

func TestParser_AcceptsIdPlusIdTimesId(t *testing.T) {
	table := parse.BuildTable(exprGrammar(), parse.ShiftWins)
	p := parse.NewParser(table)

	stream := token.NewSliceStream([]token.Token{
		tok("identifier", "id"),
		tok("operator", "+"),
		tok("identifier", "id"),
		tok("operator", "*"),
		tok("identifier", "id"),
	})

	tree, err := p.Parse(stream)
	require.NoError(t, err)
	assert.Equal(t, "E", tree.Symbol)
}

func TestParser_RejectsMalformedInput(t *testing.T) {
	table := parse.BuildTable(exprGrammar(), parse.ShiftWins)
	p := parse.NewParser(table)

	stream := token.NewSliceStream([]token.Token{
		tok("identifier", "id"),
		tok("operator", "+"),
		tok("operator", "+"),
	})

	_, err := p.Parse(stream)
	require.Error(t, err)
	var synErr *parse.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.NotEmpty(t, synErr.Expected)
}

func TestParser_EmitsTraceSteps(t *testing.T) {
	table := parse.BuildTable(exprGrammar(), parse.ShiftWins)
	p := parse.NewParser(table)

	var steps []parse.TraceStep
	p.RegisterTraceListener(func(ts parse.TraceStep) {
		steps = append(steps, ts)
	})

	stream := token.NewSliceStream([]token.Token{tok("identifier", "id")})
	_, err := p.Parse(stream)
	require.NoError(t, err)
	assert.NotEmpty(t, steps)
	assert.Equal(t, "accept", steps[len(steps)-1].Action)
}

func TestParser_RejectsUnknownTerminalBeforeTouchingStacks(t *testing.T) {
	table := parse.BuildTable(exprGrammar(), parse.ShiftWins)
	p := parse.NewParser(table)

	stream := token.NewSliceStream([]token.Token{
		tok("identifier", "id"),
		tok("operator", "%"),
	})

	_, err := p.Parse(stream)
	require.Error(t, err)
	var unkErr *parse.UnknownTerminalError
	require.ErrorAs(t, err, &unkErr)
	assert.Equal(t, "%", unkErr.Got.Lexeme)
}
