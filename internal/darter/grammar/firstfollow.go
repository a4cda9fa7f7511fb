package grammar

// FirstFollow holds the FIRST and FOLLOW sets computed for a Grammar;
// nullability is read off FIRST (ε membership) by IsNullable. Construction
// runs the two fixed-point algorithms found in any compilers textbook
// treatment of LL/LR table construction: FIRST is grown production-by-
// production until no set changes in a full pass, then FOLLOW is grown the
// same way using the now-stable FIRST sets.
type FirstFollow struct {
	g      *Grammar
	first  map[string]SymbolSet
	follow map[string]SymbolSet
}

// ComputeFirstFollow runs FIRST-set then FOLLOW-set fixed-point computation
// over g and returns the stabilized result. g need not be augmented: the end
// marker is seeded into FOLLOW of whatever g's start symbol is. If g is
// augmented, FOLLOW(S') is exactly {#}, and the original start symbol's
// FOLLOW set holds # plus whatever follows it in g's own productions.
func ComputeFirstFollow(g *Grammar) *FirstFollow {
	ff := &FirstFollow{
		g:      g,
		first:  map[string]SymbolSet{},
		follow: map[string]SymbolSet{},
	}
	for _, t := range g.Terminals() {
		ff.first[t] = NewSymbolSet(NewTerminal(t))
	}
	for _, nt := range g.NonTerminals() {
		ff.first[nt] = SymbolSet{}
	}

	ff.computeFirst()
	ff.computeFollow()
	return ff
}

func (ff *FirstFollow) computeFirst() {
	for {
		changed := false
		for _, p := range ff.g.prods {
			if p.LHS.Name == "" {
				continue // reserved augmented slot before Augmented() is called
			}
			before := ff.first[p.LHS.Name].Len()
			ff.addFirstOfProduction(p)
			if ff.first[p.LHS.Name].Len() != before {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func (ff *FirstFollow) addFirstOfProduction(p Production) {
	target := ff.first[p.LHS.Name]
	if target == nil {
		target = SymbolSet{}
		ff.first[p.LHS.Name] = target
	}

	if p.Nullable() {
		target.Add(Eps)
		return
	}

	allNullableSoFar := true
	for _, sym := range p.RHS {
		symFirst := ff.firstOfSymbol(sym)
		for _, f := range symFirst.Elements() {
			if f.Kind != EpsilonKind {
				target.Add(f)
			}
		}
		if !symFirst.Has(Eps) {
			allNullableSoFar = false
			break
		}
	}
	if allNullableSoFar {
		target.Add(Eps)
	}
}

func (ff *FirstFollow) firstOfSymbol(sym Symbol) SymbolSet {
	if sym.Kind == EpsilonKind {
		return NewSymbolSet(Eps)
	}
	if sym.Kind == EndMarkerKind {
		return NewSymbolSet(sym)
	}
	if s, ok := ff.first[sym.Name]; ok {
		return s
	}
	return SymbolSet{}
}

// First returns FIRST(name) for a terminal or nonterminal name.
func (ff *FirstFollow) First(name string) SymbolSet {
	if s, ok := ff.first[name]; ok {
		return s.Copy()
	}
	return SymbolSet{}
}

// IsNullable reports whether the nonterminal name can derive ε.
func (ff *FirstFollow) IsNullable(name string) bool {
	return ff.first[name].Has(Eps)
}

// FirstOfSequence computes FIRST(X1 X2 ... Xn) for an arbitrary symbol
// sequence, per the usual definition: the union of FIRST(Xi) for the
// longest nullable prefix, plus ε itself if the whole sequence is nullable
// (including the empty sequence, whose FIRST is {ε}).
func (ff *FirstFollow) FirstOfSequence(seq []Symbol) SymbolSet {
	result := SymbolSet{}
	if len(seq) == 0 {
		result.Add(Eps)
		return result
	}

	allNullable := true
	for _, sym := range seq {
		symFirst := ff.firstOfSymbol(sym)
		for _, f := range symFirst.Elements() {
			if f.Kind != EpsilonKind {
				result.Add(f)
			}
		}
		if !symFirst.Has(Eps) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.Add(Eps)
	}
	return result
}

func (ff *FirstFollow) computeFollow() {
	for _, nt := range ff.g.NonTerminals() {
		ff.follow[nt] = SymbolSet{}
	}
	ff.follow[ff.g.StartSymbol()].Add(EndMarker)

	for {
		changed := false
		for _, p := range ff.g.prods {
			if p.LHS.Name == "" {
				continue
			}
			for i, sym := range p.RHS {
				if sym.Kind != NonTerminal {
					continue
				}
				beta := p.RHS[i+1:]
				betaFirst := ff.FirstOfSequence(beta)

				before := ff.follow[sym.Name].Len()
				for _, f := range betaFirst.Elements() {
					if f.Kind != EpsilonKind {
						ff.follow[sym.Name].Add(f)
					}
				}
				if betaFirst.Has(Eps) {
					ff.follow[sym.Name].AddAll(ff.follow[p.LHS.Name])
				}
				if ff.follow[sym.Name].Len() != before {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// Follow returns FOLLOW(nt) for a nonterminal name.
func (ff *FirstFollow) Follow(nt string) SymbolSet {
	if s, ok := ff.follow[nt]; ok {
		return s.Copy()
	}
	return SymbolSet{}
}
