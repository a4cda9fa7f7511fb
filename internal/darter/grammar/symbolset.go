package grammar

import (
	"sort"
	"strings"
)

// SymbolSet is a set of Symbols keyed by name. Grammar symbol names are
// unique across terminals/nonterminals/ε/end-marker within one Grammar, so
// name identity is sufficient and keeps the set cheaply hashable.
type SymbolSet map[string]Symbol

func NewSymbolSet(syms ...Symbol) SymbolSet {
	s := SymbolSet{}
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

func (s SymbolSet) Add(sym Symbol) { s[sym.Name] = sym }

func (s SymbolSet) Has(sym Symbol) bool {
	got, ok := s[sym.Name]
	return ok && got.Kind == sym.Kind
}

func (s SymbolSet) HasName(name string) bool {
	_, ok := s[name]
	return ok
}

func (s SymbolSet) Remove(sym Symbol) { delete(s, sym.Name) }

func (s SymbolSet) Len() int { return len(s) }

func (s SymbolSet) AddAll(o SymbolSet) {
	for k, v := range o {
		s[k] = v
	}
}

func (s SymbolSet) Copy() SymbolSet {
	n := SymbolSet{}
	n.AddAll(s)
	return n
}

func (s SymbolSet) Union(o SymbolSet) SymbolSet {
	n := s.Copy()
	n.AddAll(o)
	return n
}

// Elements returns the set's members, sorted by the symbols' total order so
// iteration is deterministic.
func (s SymbolSet) Elements() []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (s SymbolSet) Equal(o SymbolSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k, v := range s {
		ov, ok := o[k]
		if !ok || ov.Kind != v.Kind {
			return false
		}
	}
	return true
}

func (s SymbolSet) String() string {
	elems := s.Elements()
	names := make([]string, len(elems))
	for i := range elems {
		names[i] = elems[i].Name
	}
	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteRune('}')
	return sb.String()
}
