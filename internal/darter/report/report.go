// Package report renders the pipeline's intermediate and final artifacts
// (token list, FIRST/FOLLOW sets, canonical LR(1) item sets, ACTION/GOTO
// table, step trace) as the plain-text tables the CLI front ends and the
// persisted-result dump both use.
package report

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/google/uuid"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/parse"
	"github.com/dekarrin/darter/internal/darter/token"
)

const reportWidth = 100

// RunID returns a fresh identifier for one parse/lex invocation, stamped at
// the top of a full trace report so two reports run against the same
// grammar and source can still be told apart.
func RunID() string {
	return uuid.New().String()
}

// Tokens renders a token list one row per token: class, lexeme, position.
func Tokens(toks []token.Token) string {
	data := [][]string{{"CLASS", "LEXEME", "LINE", "COL"}}
	for _, t := range toks {
		data = append(data, []string{t.Class, t.Lexeme, fmt.Sprintf("%d", t.Line), fmt.Sprintf("%d", t.LinePos)})
	}
	return rosed.Edit("").InsertTableOpts(0, data, reportWidth, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String()
}

// Productions renders every production in g, one per line, numbered.
func Productions(g *grammar.Grammar) string {
	var sb strings.Builder
	for _, p := range g.Productions() {
		if p.LHS.Name == "" {
			continue
		}
		fmt.Fprintf(&sb, "%d: %s\n", p.Index, p.String())
	}
	return sb.String()
}

// FirstFollowSets renders FIRST and FOLLOW for every nonterminal in g.
func FirstFollowSets(g *grammar.Grammar, ff *grammar.FirstFollow) string {
	data := [][]string{{"NONTERMINAL", "FIRST", "FOLLOW"}}
	for _, nt := range g.NonTerminals() {
		data = append(data, []string{nt, ff.First(nt).String(), ff.Follow(nt).String()})
	}
	return rosed.Edit("").InsertTableOpts(0, data, reportWidth, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String()
}

// ItemSets renders every canonical LR(1) state in a, numbered, with its
// items fully spelled out.
func ItemSets(a *automaton.LR1Automaton) string {
	var sb strings.Builder
	prods := a.Grammar.Productions()
	for i, set := range a.States {
		fmt.Fprintf(&sb, "I%d:\n", i)
		for _, it := range set.Items() {
			fmt.Fprintf(&sb, "  %s\n", it.String(prods))
		}
	}
	return sb.String()
}

// ActionGotoTable renders t as one combined ACTION | GOTO table, state rows
// against terminal/nonterminal columns, mirroring the textbook presentation
// of a canonical-LR parsing table.
func ActionGotoTable(t *parse.Table) string {
	terms := t.Automaton.Grammar.Terminals()
	terms = append(append([]string{}, terms...), token.EndOfText)
	nonTerms := t.Automaton.Grammar.NonTerminals()

	header := []string{"STATE", "|"}
	header = append(header, terms...)
	header = append(header, "|")
	header = append(header, nonTerms...)
	data := [][]string{header}

	for state := range t.Automaton.States {
		row := []string{fmt.Sprintf("%d", state), "|"}
		for _, term := range terms {
			lookup := term
			if term == token.EndOfText {
				lookup = grammar.EndMarker.Name
			}
			act := t.Lookup(state, lookup)
			row = append(row, actionCell(act))
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			cell := ""
			if to, ok := t.GotoState(state, nt); ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").InsertTableOpts(0, data, reportWidth, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String()
}

func actionCell(act parse.Action) string {
	switch act.Kind {
	case parse.ActionShift:
		return fmt.Sprintf("s%d", act.Next)
	case parse.ActionReduce:
		return fmt.Sprintf("r%d", act.ProdIndex)
	case parse.ActionAccept:
		return "acc"
	default:
		return ""
	}
}

// Conflicts renders t's conflict log, one line per resolved conflict.
func Conflicts(t *parse.Table) string {
	if len(t.Conflicts) == 0 {
		return "(no conflicts)\n"
	}
	prods := t.Automaton.Grammar.Productions()
	var sb strings.Builder
	for _, c := range t.Conflicts {
		fmt.Fprintf(&sb, "state %d, %s, %s: chose %s over %s (policy %s)\n",
			c.State, c.Terminal, c.Kind, c.Chosen.String(prods), c.Rejected.String(prods), t.Policy)
	}
	return sb.String()
}

// Trace renders a recorded step trace as one line per step: state stack,
// symbol stack, current lookahead, action taken. The INPUT column shows only
// the lookahead token's lexeme ($end once input is exhausted), not the whole
// unread input.
func Trace(steps []parse.TraceStep) string {
	data := [][]string{{"STEP", "STATES", "SYMBOLS", "INPUT", "ACTION"}}
	for _, s := range steps {
		data = append(data, []string{
			fmt.Sprintf("%d", s.Step),
			fmt.Sprintf("%v", s.States),
			strings.Join(s.Symbols, " "),
			s.Remaining,
			s.Action,
		})
	}
	return rosed.Edit("").InsertTableOpts(0, data, reportWidth, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String()
}
