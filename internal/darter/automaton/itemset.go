package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/darter/internal/darter/grammar"
)

// ItemSet is a canonical LR(1) state: items keyed by their core (production,
// dot position), each carrying a merged lookahead set. Two items sharing a
// core in the same set are the same item with a unioned lookahead, per
// Algorithm 4.56 step 1 (Aho/Lam/Sethi/Ullman).
type ItemSet struct {
	byCore map[grammar.Core]grammar.Item
}

func NewItemSet() *ItemSet {
	return &ItemSet{byCore: map[grammar.Core]grammar.Item{}}
}

// Add merges it into the set, unioning lookaheads if its core is already
// present. It reports whether the set actually changed (new core, or a
// lookahead grew), so closure's fixed-point loop knows when to stop.
func (s *ItemSet) Add(it grammar.Item) bool {
	core := it.Core()
	existing, ok := s.byCore[core]
	if !ok {
		cp := it.Lookahead.Copy()
		s.byCore[core] = grammar.Item{ProdIndex: it.ProdIndex, Dot: it.Dot, Lookahead: cp}
		return true
	}
	before := existing.Lookahead.Len()
	merged := existing.Lookahead.Union(it.Lookahead)
	if merged.Len() != before {
		s.byCore[core] = grammar.Item{ProdIndex: it.ProdIndex, Dot: it.Dot, Lookahead: merged}
		return true
	}
	return false
}

// Items returns the set's items sorted by (production index, dot), so
// iteration and rendering are deterministic.
func (s *ItemSet) Items() []grammar.Item {
	out := make([]grammar.Item, 0, len(s.byCore))
	for _, it := range s.byCore {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProdIndex != out[j].ProdIndex {
			return out[i].ProdIndex < out[j].ProdIndex
		}
		return out[i].Dot < out[j].Dot
	})
	return out
}

func (s *ItemSet) Len() int { return len(s.byCore) }

// Key is the canonical identity of the set: core and lookahead both, so two
// sets with identical cores but different lookaheads are distinct states,
// as required to build a canonical (non-merged) LR(1) automaton.
func (s *ItemSet) Key() string {
	var sb strings.Builder
	for _, it := range s.Items() {
		fmt.Fprintf(&sb, "%d.%d:%s|", it.ProdIndex, it.Dot, it.Lookahead.String())
	}
	return sb.String()
}

// Closure computes the closure of a seed set of items per Algorithm 4.56
// step 1/2(a): repeatedly, for every item A -> α·Bβ,a in the set and every
// production B -> γ, add the item B -> ·γ,b for every b in FIRST(βa), until
// a full pass adds nothing new.
func Closure(g *grammar.Grammar, ff *grammar.FirstFollow, seed []grammar.Item) *ItemSet {
	set := NewItemSet()
	for _, it := range seed {
		set.Add(it)
	}

	prods := g.Productions()
	for {
		changed := false
		for _, it := range set.Items() {
			next, ok := it.NextSymbol(prods)
			if !ok || next.Kind != grammar.NonTerminal {
				continue
			}
			beta := it.Beta(prods)

			for _, la := range it.Lookahead.Elements() {
				seq := make([]grammar.Symbol, 0, len(beta)+1)
				seq = append(seq, beta...)
				seq = append(seq, la)
				lookaheads := ff.FirstOfSequence(seq)

				for _, bProd := range g.Rule(next.Name) {
					newItem := grammar.Item{ProdIndex: bProd.Index, Dot: 0, Lookahead: grammar.NewSymbolSet()}
					for _, l := range lookaheads.Elements() {
						if l.Kind != grammar.EpsilonKind {
							newItem.Lookahead.Add(l)
						}
					}
					if set.Add(newItem) {
						changed = true
					}
				}
			}
		}
		if !changed {
			return set
		}
	}
}

// GOTO computes GOTO(set, x): advance every item in set whose next symbol is
// x, then close the result (Algorithm 4.56 step 2(b)/(c)). Returns an empty
// ItemSet if no item in set has x as its next symbol.
func GOTO(g *grammar.Grammar, ff *grammar.FirstFollow, set *ItemSet, x grammar.Symbol) *ItemSet {
	prods := g.Productions()
	var seed []grammar.Item
	for _, it := range set.Items() {
		next, ok := it.NextSymbol(prods)
		if ok && next.Equal(x) {
			seed = append(seed, it.Advanced())
		}
	}
	if len(seed) == 0 {
		return NewItemSet()
	}
	return Closure(g, ff, seed)
}

// LR1Automaton is the canonical collection of LR(1) item sets plus the
// transitions between them (Algorithm 4.56 step 2), keyed throughout by
// integer state id rather than by a live pointer into the collection.
type LR1Automaton struct {
	Grammar     *grammar.Grammar // augmented
	FirstFollow *grammar.FirstFollow
	States      []*ItemSet
	Trans       []map[string]int // Trans[state][symbolName] = next state id
	Start       int
}

// BuildLR1Automaton augments g, computes its FIRST/FOLLOW sets, and
// discovers the full canonical collection of LR(1) item sets by worklist
// starting from the closure of [S' -> ·S, #].
func BuildLR1Automaton(g *grammar.Grammar) *LR1Automaton {
	ag := g.Augmented()
	ff := grammar.ComputeFirstFollow(ag)

	startItem := grammar.Item{
		ProdIndex: 0,
		Dot:       0,
		Lookahead: grammar.NewSymbolSet(grammar.EndMarker),
	}
	startSet := Closure(ag, ff, []grammar.Item{startItem})

	a := &LR1Automaton{Grammar: ag, FirstFollow: ff}
	seen := map[string]int{}

	startID := a.addState(startSet)
	seen[startSet.Key()] = startID
	a.Start = startID

	symbols := a.allSymbols()
	queue := []int{startID}

	for len(queue) > 0 {
		curID := queue[0]
		queue = queue[1:]
		cur := a.States[curID]

		for _, sym := range symbols {
			next := GOTO(ag, ff, cur, sym)
			if next.Len() == 0 {
				continue
			}
			key := next.Key()
			nextID, ok := seen[key]
			if !ok {
				nextID = a.addState(next)
				seen[key] = nextID
				queue = append(queue, nextID)
			}
			a.Trans[curID][sym.Name] = nextID
		}
	}

	return a
}

func (a *LR1Automaton) addState(set *ItemSet) int {
	a.States = append(a.States, set)
	a.Trans = append(a.Trans, map[string]int{})
	return len(a.States) - 1
}

func (a *LR1Automaton) allSymbols() []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, len(a.Grammar.Terminals())+len(a.Grammar.NonTerminals()))
	for _, t := range a.Grammar.Terminals() {
		syms = append(syms, grammar.NewTerminal(t))
	}
	for _, nt := range a.Grammar.NonTerminals() {
		syms = append(syms, grammar.NewNonTerminal(nt))
	}
	return syms
}

func (a *LR1Automaton) NumStates() int { return len(a.States) }
