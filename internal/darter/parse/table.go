// Package parse builds canonical LR(1) ACTION/GOTO tables from a grammar
// and drives them over a token stream (Algorithm 4.56 and Algorithm 4.44,
// Aho/Lam/Sethi/Ullman).
package parse

import (
	"fmt"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/grammar"
	"github.com/dekarrin/darter/internal/darter/token"
)

// ActionKind tags what an ACTION-table cell tells the driver to do.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION-table cell: a shift to Next, a reduce by the
// production at ProdIndex, an accept, or (the zero value) an error.
type Action struct {
	Kind      ActionKind
	Next      int
	ProdIndex int
}

func (a Action) Equal(o Action) bool {
	return a.Kind == o.Kind && a.Next == o.Next && a.ProdIndex == o.ProdIndex
}

func (a Action) String(prods []grammar.Production) string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.Next)
	case ActionReduce:
		return fmt.Sprintf("reduce %s", prods[a.ProdIndex].String())
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// ConflictPolicy selects which action a table keeps when two actions are
// proposed for the same (state, terminal) cell. Canonical LR(1) tables for
// a genuinely LR(1) grammar never need this; it only matters for grammars
// that are ambiguous or merely close to LR(1), where the default matches
// the traditional yacc/bison behavior of preferring shift, and preferring
// the earlier-declared production on a reduce/reduce tie.
type ConflictPolicy int

const (
	ShiftWins ConflictPolicy = iota
	ReduceWins
)

func (p ConflictPolicy) String() string {
	if p == ReduceWins {
		return "reduce-wins"
	}
	return "shift-wins"
}

// Conflict records one ACTION-table cell where more than one action was
// proposed, which action the configured policy kept, and which it
// discarded. Built, never silently dropped: Table.Conflicts is the
// diagnostic surface spec's conflict-resolution requirement calls for.
type Conflict struct {
	State    int
	Terminal string
	Kind     string // "shift/reduce" or "reduce/reduce"
	Chosen   Action
	Rejected Action
}

// Table is a complete canonical LR(1) parse table: ACTION and GOTO, plus
// every conflict encountered while filling ACTION.
type Table struct {
	Automaton *automaton.LR1Automaton
	Policy    ConflictPolicy
	Action    map[int]map[string]Action
	Goto      map[int]map[string]int
	Conflicts []Conflict
}

// BuildTable constructs the canonical LR(1) ACTION/GOTO table for g
// (Algorithm 4.56 step 3), resolving any conflicting cell per policy rather
// than failing construction.
func BuildTable(g *grammar.Grammar, policy ConflictPolicy) *Table {
	aut := automaton.BuildLR1Automaton(g)
	t := &Table{
		Automaton: aut,
		Policy:    policy,
		Action:    map[int]map[string]Action{},
		Goto:      map[int]map[string]int{},
	}

	prods := aut.Grammar.Productions()
	const augmentedProdIndex = 0

	for state, set := range aut.States {
		for _, it := range set.Items() {
			if it.IsComplete(prods) {
				if it.ProdIndex == augmentedProdIndex {
					if it.Lookahead.Has(grammar.EndMarker) {
						t.setAction(state, grammar.EndMarker.Name, Action{Kind: ActionAccept})
					}
					continue
				}
				for _, la := range it.Lookahead.Elements() {
					t.setAction(state, la.Name, Action{Kind: ActionReduce, ProdIndex: it.ProdIndex})
				}
				continue
			}

			next, _ := it.NextSymbol(prods)
			if next.Kind != grammar.Terminal {
				continue
			}
			if to, ok := aut.Trans[state][next.Name]; ok {
				t.setAction(state, next.Name, Action{Kind: ActionShift, Next: to})
			}
		}

		for _, nt := range aut.Grammar.NonTerminals() {
			if to, ok := aut.Trans[state][nt]; ok {
				if t.Goto[state] == nil {
					t.Goto[state] = map[string]int{}
				}
				t.Goto[state][nt] = to
			}
		}
	}

	return t
}

func (t *Table) setAction(state int, terminal string, a Action) {
	if t.Action[state] == nil {
		t.Action[state] = map[string]Action{}
	}
	existing, ok := t.Action[state][terminal]
	if !ok {
		t.Action[state][terminal] = a
		return
	}
	if existing.Equal(a) {
		return
	}

	chosen, rejected, kind := resolveConflict(existing, a, t.Policy)
	t.Action[state][terminal] = chosen
	t.Conflicts = append(t.Conflicts, Conflict{
		State:    state,
		Terminal: terminal,
		Kind:     kind,
		Chosen:   chosen,
		Rejected: rejected,
	})
}

func resolveConflict(existing, incoming Action, policy ConflictPolicy) (chosen, rejected Action, kind string) {
	if existing.Kind == ActionReduce && incoming.Kind == ActionReduce {
		if existing.ProdIndex <= incoming.ProdIndex {
			return existing, incoming, "reduce/reduce"
		}
		return incoming, existing, "reduce/reduce"
	}

	shiftAction, reduceAction := existing, incoming
	if incoming.Kind == ActionShift {
		shiftAction, reduceAction = incoming, existing
	}
	if policy == ReduceWins {
		return reduceAction, shiftAction, "shift/reduce"
	}
	return shiftAction, reduceAction, "shift/reduce"
}

// Lookup returns the ACTION cell for (state, terminal name), the zero
// Action (ActionError) if none is defined.
func (t *Table) Lookup(state int, terminal string) Action {
	return t.Action[state][terminal]
}

// GotoState returns the state to transition to after reducing to nt while
// in state, if defined.
func (t *Table) GotoState(state int, nt string) (int, bool) {
	to, ok := t.Goto[state][nt]
	return to, ok
}

// ExpectedTerminals returns, in declaration order, every terminal name
// (plus the end marker, where relevant) that has a non-error ACTION cell in
// state. Used to build "expected X, Y, or Z" parse-error messages.
func (t *Table) ExpectedTerminals(state int) []string {
	var out []string
	for _, term := range t.Automaton.Grammar.Terminals() {
		if _, ok := t.Action[state][term]; ok {
			out = append(out, term)
		}
	}
	if _, ok := t.Action[state][grammar.EndMarker.Name]; ok {
		out = append(out, token.EndOfText)
	}
	return out
}
