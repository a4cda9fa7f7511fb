package grammar

import (
	"fmt"
	"sort"
)

// Grammar is a context-free grammar: a start symbol, a set of terminals, and
// a set of productions grouped by their left-hand nonterminal. Productions
// are created during grammar load and never mutated afterward.
type Grammar struct {
	start       string
	terminals   StringSetOrdered
	nonTerms    StringSetOrdered
	prods       []Production
	byLHS       map[string][]int
	augmented   bool
}

// StringSetOrdered tracks membership and first-seen order; Grammar uses it
// for terminals/nonterminals so Terminals()/NonTerminals() are stable across
// runs without requiring alphabetical order.
type StringSetOrdered struct {
	seen  map[string]bool
	order []string
}

func newStringSetOrdered() StringSetOrdered {
	return StringSetOrdered{seen: map[string]bool{}}
}

func (s *StringSetOrdered) Add(v string) {
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	if !s.seen[v] {
		s.seen[v] = true
		s.order = append(s.order, v)
	}
}

func (s StringSetOrdered) Has(v string) bool { return s.seen[v] }
func (s StringSetOrdered) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// New creates an empty Grammar whose user-declared start symbol is start.
func New(start string) *Grammar {
	return &Grammar{
		start:     start,
		terminals: newStringSetOrdered(),
		nonTerms:  newStringSetOrdered(),
		byLHS:     map[string][]int{},
	}
}

// AddTerminal registers a terminal symbol name with the grammar. It is a
// no-op if the terminal is already known.
func (g *Grammar) AddTerminal(name string) {
	g.terminals.Add(name)
}

// AddRule adds one production LHS -> rhs to the grammar, assigning it the
// next production index (starting at 1; index 0 is reserved for the
// augmented production added by Augmented). rhs may be empty to express a
// nullable production.
func (g *Grammar) AddRule(lhs string, rhs []string) {
	g.nonTerms.Add(lhs)

	idx := len(g.prods)
	if idx == 0 {
		// reserve slot 0 for the augmented production; real productions
		// start at 1.
		g.prods = append(g.prods, Production{})
		idx = 1
	}

	rhsSyms := make([]Symbol, 0, len(rhs))
	for _, s := range rhs {
		rhsSyms = append(rhsSyms, g.classify(s))
	}

	p := Production{Index: idx, LHS: NewNonTerminal(lhs), RHS: rhsSyms}
	g.prods = append(g.prods, p)
	g.byLHS[lhs] = append(g.byLHS[lhs], idx)
}

// classify returns the Symbol for a raw RHS token: a registered terminal, a
// nonterminal (by the uppercase-initial convention used throughout the
// loader and the original grammar notation), or Eps for the literal "ε".
func (g *Grammar) classify(name string) Symbol {
	if name == "ε" || name == "" {
		return Eps
	}
	if g.terminals.Has(name) {
		return NewTerminal(name)
	}
	if isUpperInitial(name) {
		return NewNonTerminal(name)
	}
	// seen as a terminal in an RHS before an explicit AddTerminal call;
	// register it so later lookups agree.
	g.terminals.Add(name)
	return NewTerminal(name)
}

func isUpperInitial(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	return r >= 'A' && r <= 'Z'
}

func (g *Grammar) StartSymbol() string { return g.start }

// Terminals returns the grammar's terminal names in first-declared order.
func (g *Grammar) Terminals() []string { return g.terminals.Slice() }

// NonTerminals returns the grammar's nonterminal names in first-declared
// order.
func (g *Grammar) NonTerminals() []string { return g.nonTerms.Slice() }

func (g *Grammar) IsTerminal(name string) bool { return g.terminals.Has(name) }
func (g *Grammar) IsNonTerminal(name string) bool { return g.nonTerms.Has(name) }

func (g *Grammar) Term(name string) Symbol { return NewTerminal(name) }

// Productions returns the full production vector, including the reserved
// augmented slot at index 0 once Augmented has been called.
func (g *Grammar) Productions() []Production { return g.prods }

// Production returns the production at idx.
func (g *Grammar) Production(idx int) Production { return g.prods[idx] }

// Rule returns every production whose LHS is nt, in declaration order.
func (g *Grammar) Rule(nt string) []Production {
	idxs := g.byLHS[nt]
	out := make([]Production, len(idxs))
	for i, idx := range idxs {
		out[i] = g.prods[idx]
	}
	return out
}

// Augmented returns a copy of g with the augmented production S' -> S
// installed at index 0, where S' is g's start symbol suffixed with "'" and S
// is g's original start symbol. Calling Augmented on an already-augmented
// grammar is a no-op that returns an equivalent copy.
func (g *Grammar) Augmented() *Grammar {
	if g.augmented {
		cp := *g
		return &cp
	}

	newStart := g.start + "'"
	terminals := newStringSetOrdered()
	for _, t := range g.terminals.Slice() {
		terminals.Add(t)
	}
	nonTerms := newStringSetOrdered()
	for _, nt := range g.nonTerms.Slice() {
		nonTerms.Add(nt)
	}
	cp := &Grammar{
		start:     newStart,
		terminals: terminals,
		nonTerms:  nonTerms,
		prods:     make([]Production, len(g.prods)),
		byLHS:     map[string][]int{},
		augmented: true,
	}
	copy(cp.prods, g.prods)
	for k, v := range g.byLHS {
		idxs := make([]int, len(v))
		copy(idxs, v)
		cp.byLHS[k] = idxs
	}

	cp.nonTerms.Add(newStart)
	cp.prods[0] = Production{
		Index: 0,
		LHS:   NewNonTerminal(newStart),
		RHS:   []Symbol{NewNonTerminal(g.start)},
	}
	cp.byLHS[newStart] = []int{0}

	return cp
}

// LR0Items returns one item (dot at 0, no lookahead) per production in the
// grammar, in index order.
func (g *Grammar) LR0Items() []Item {
	items := make([]Item, 0, len(g.prods))
	for _, p := range g.prods {
		items = append(items, Item{ProdIndex: p.Index, Dot: 0})
	}
	return items
}

// Validate checks the minimal well-formedness invariants required before
// construction: there must be at least one production, and every
// nonterminal that appears on some RHS must also appear as some LHS (I1).
func (g *Grammar) Validate() error {
	if len(g.byLHS) == 0 && len(g.prods) == 0 {
		return fmt.Errorf("grammar has no productions")
	}
	if g.terminals.Slice() == nil || len(g.terminals.Slice()) == 0 {
		return fmt.Errorf("grammar declares no terminals")
	}

	lhsSet := map[string]bool{}
	for nt := range g.byLHS {
		lhsSet[nt] = true
	}

	var missing []string
	for _, p := range g.prods {
		for _, sym := range p.RHS {
			if sym.Kind == NonTerminal && !lhsSet[sym.Name] {
				missing = append(missing, sym.Name)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("nonterminal(s) never defined as a rule LHS: %v", missing)
	}
	return nil
}

func (g *Grammar) String() string {
	out := ""
	for _, p := range g.prods {
		if p.LHS.Name == "" {
			continue
		}
		out += fmt.Sprintf("%d: %s\n", p.Index, p.String())
	}
	return out
}
