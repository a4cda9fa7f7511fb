package parse

import (
	"fmt"

	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/token"
	"github.com/dekarrin/darter/internal/darter/util"
)

// TraceStep is a snapshot of the driver's state immediately after it has
// decided, but not yet executed, one ACTION (Algorithm 4.44's step-by-step
// table in any treatment of LR parsing). Listeners receive one of these per
// driver iteration. Remaining holds only the current lookahead's lexeme
// ($end once input is exhausted), not the whole unread input.
type TraceStep struct {
	Step      int
	States    []int
	Symbols   []string
	Remaining string
	Action    string
}

// TraceListener receives one TraceStep per parser iteration; used by
// darterparse's full-trace output mode.
type TraceListener func(TraceStep)

// SyntaxError is returned by Parse when the input does not belong to the
// grammar's language: the current token could not be shifted or used to
// reduce in the current state.
type SyntaxError struct {
	Got      token.Token
	Expected []string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected %s %q at %d:%d", e.Got.Class, e.Got.Lexeme, e.Got.Line, e.Got.LinePos)
	}
	return fmt.Sprintf(
		"unexpected %s %q at %d:%d; expected %s",
		e.Got.Class, e.Got.Lexeme, e.Got.Line, e.Got.LinePos, util.MakeTextList(e.Expected),
	)
}

// Parser drives a Table over a token.Stream, implementing the canonical
// LR(1) shift-reduce loop (Algorithm 4.44).
type Parser struct {
	table     *Table
	listeners []TraceListener
}

func NewParser(t *Table) *Parser {
	return &Parser{table: t}
}

func (p *Parser) RegisterTraceListener(l TraceListener) {
	p.listeners = append(p.listeners, l)
}

func (p *Parser) notifyTrace(step int, states *util.Stack[int], symbols *util.Stack[*Tree], remaining string, action string) {
	if len(p.listeners) == 0 {
		return
	}
	ts := TraceStep{
		Step:      step,
		States:    append([]int{}, states.Of...),
		Remaining: remaining,
		Action:    action,
	}
	for _, s := range symbols.Of {
		ts.Symbols = append(ts.Symbols, s.Symbol)
	}
	for _, l := range p.listeners {
		l(ts)
	}
}

// UnknownTerminalError is returned by Parse's pre-flight when some token's
// lexeme matches no terminal declared in the grammar: the driver never
// touches the stacks in this case, since no ACTION/GOTO cell could ever be
// keyed by a lexeme the grammar doesn't know.
type UnknownTerminalError struct {
	Got token.Token
}

func (e *UnknownTerminalError) Error() string {
	return fmt.Sprintf("unknown terminal: lexeme %q at %d:%d matches no terminal declared in the grammar", e.Got.Lexeme, e.Got.Line, e.Got.LinePos)
}

// preflight drains stream and verifies every token's lexeme names a
// terminal (or the end marker) in g, returning the drained tokens so the
// driver loop can run over them without re-reading the original stream.
func preflight(stream token.Stream, g *grammar.Grammar) ([]token.Token, error) {
	var toks []token.Token
	for stream.HasNext() {
		toks = append(toks, stream.Next())
	}
	for _, tok := range toks {
		if tok.Lexeme == grammar.EndMarker.Name {
			continue
		}
		if !g.IsTerminal(tok.Lexeme) {
			return nil, &UnknownTerminalError{Got: tok}
		}
	}
	return toks, nil
}

// Parse runs the driver to completion over stream, returning the root of
// the concrete parse tree on acceptance, or a *SyntaxError the first time no
// ACTION is defined for the current (state, lookahead) pair.
//
// Before driving the stacks, Parse runs the pre-flight check of §4.10:
// every token's lexeme must name a terminal declared in the grammar, or
// Parse rejects the input immediately with an *UnknownTerminalError naming
// the offending lexeme.
func (p *Parser) Parse(stream token.Stream) (*Tree, error) {
	g := p.table.Automaton.Grammar
	prods := g.Productions()

	toks, err := preflight(stream, g)
	if err != nil {
		return nil, err
	}
	stream = token.NewSliceStream(toks)

	states := &util.Stack[int]{}
	symbols := &util.Stack[*Tree]{}
	states.Push(p.table.Automaton.Start)

	step := 0
	for {
		step++
		tok := stream.Peek()
		lookupTerm := tok.Lexeme
		if !stream.HasNext() || tok.Class == token.EndOfText {
			lookupTerm = grammar.EndMarker.Name
		}

		cur := states.Peek()
		action := p.table.Lookup(cur, lookupTerm)

		switch action.Kind {
		case ActionShift:
			p.notifyTrace(step, states, symbols, remainingDesc(stream), fmt.Sprintf("shift to %d", action.Next))
			consumed := stream.Next()
			symbols.Push(leaf(consumed))
			states.Push(action.Next)

		case ActionReduce:
			prod := prods[action.ProdIndex]
			p.notifyTrace(step, states, symbols, remainingDesc(stream), fmt.Sprintf("reduce by %s", prod.String()))

			n := len(prod.RHS)
			children := make([]*Tree, n)
			for i := n - 1; i >= 0; i-- {
				children[i] = symbols.Pop()
				states.Pop()
			}
			node := interior(prod.LHS.Name, children)
			symbols.Push(node)

			top := states.Peek()
			next, ok := p.table.GotoState(top, prod.LHS.Name)
			if !ok {
				return nil, fmt.Errorf("no GOTO entry for state %d on %s after reducing %s", top, prod.LHS.Name, prod.String())
			}
			states.Push(next)

		case ActionAccept:
			p.notifyTrace(step, states, symbols, remainingDesc(stream), "accept")
			return symbols.Peek(), nil

		default:
			p.notifyTrace(step, states, symbols, remainingDesc(stream), "error")
			return nil, &SyntaxError{Got: tok, Expected: p.table.ExpectedTerminals(cur)}
		}
	}
}

func remainingDesc(stream token.Stream) string {
	if !stream.HasNext() {
		return token.EndOfText
	}
	return stream.Peek().Lexeme
}
