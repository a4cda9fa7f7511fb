// Package grammar holds the data model for context-free grammars: symbols,
// productions, LR(1) items, and the fixed-point FIRST/FOLLOW computations
// built on top of them. The item-set operations (closure, GOTO) live in
// package automaton.
package grammar

// SymbolKind tags what role a Symbol plays in a grammar.
type SymbolKind int

const (
	Terminal SymbolKind = iota
	NonTerminal
	EpsilonKind
	EndMarkerKind
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "nonterminal"
	case EpsilonKind:
		return "epsilon"
	case EndMarkerKind:
		return "end-marker"
	default:
		return "unknown"
	}
}

// Symbol is a grammar symbol: a terminal, a nonterminal, or one of the two
// distinguished constants Eps and EndMarker. Two symbols are equal iff both
// Name and Kind match.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Eps is the distinguished empty-string symbol.
var Eps = Symbol{Name: "ε", Kind: EpsilonKind}

// EndMarker is the distinguished input-end symbol, written '#'.
var EndMarker = Symbol{Name: "#", Kind: EndMarkerKind}

func (s Symbol) Equal(o Symbol) bool {
	return s.Name == o.Name && s.Kind == o.Kind
}

func (s Symbol) String() string {
	return s.Name
}

// Less gives the total order used to key sets and maps: by kind, then name.
func (s Symbol) Less(o Symbol) bool {
	if s.Kind != o.Kind {
		return s.Kind < o.Kind
	}
	return s.Name < o.Name
}

// NewTerminal builds a terminal Symbol from a name.
func NewTerminal(name string) Symbol { return Symbol{Name: name, Kind: Terminal} }

// NewNonTerminal builds a nonterminal Symbol from a name.
func NewNonTerminal(name string) Symbol { return Symbol{Name: name, Kind: NonTerminal} }
