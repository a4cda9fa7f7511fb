package grammar

import "fmt"

// Item is an LR(1) item: a production referenced by index (not by a live
// pointer, so items stay trivially comparable and the state table can own
// the production vector without any lifetime entanglement with the items
// that reference it), a dot position, and a non-empty lookahead set.
//
// Two items are equal iff their production index, dot, and lookahead set
// are all equal.
type Item struct {
	ProdIndex int
	Dot       int
	Lookahead SymbolSet
}

// Core identifies an item's production and dot position without its
// lookahead; items sharing a Core are merged by lookahead union during
// closure.
type Core struct {
	ProdIndex int
	Dot       int
}

func (it Item) Core() Core {
	return Core{ProdIndex: it.ProdIndex, Dot: it.Dot}
}

// IsComplete reports whether the dot has reached the end of the production's
// RHS, given the production vector it was built against.
func (it Item) IsComplete(prods []Production) bool {
	return it.Dot >= len(prods[it.ProdIndex].RHS)
}

// NextSymbol returns the symbol immediately after the dot, if any.
func (it Item) NextSymbol(prods []Production) (Symbol, bool) {
	rhs := prods[it.ProdIndex].RHS
	if it.Dot >= len(rhs) {
		return Symbol{}, false
	}
	return rhs[it.Dot], true
}

// Beta returns the symbols after the one immediately following the dot,
// i.e. the rest of the RHS once NextSymbol is consumed. Used by closure to
// compute FIRST(βa).
func (it Item) Beta(prods []Production) []Symbol {
	rhs := prods[it.ProdIndex].RHS
	if it.Dot+1 >= len(rhs) {
		return nil
	}
	return rhs[it.Dot+1:]
}

// Advanced returns a copy of it with the dot moved one position to the
// right, keeping the same lookahead set.
func (it Item) Advanced() Item {
	return Item{ProdIndex: it.ProdIndex, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

func (it Item) Equal(o Item) bool {
	return it.ProdIndex == o.ProdIndex && it.Dot == o.Dot && it.Lookahead.Equal(o.Lookahead)
}

// String renders the item as "LHS -> α · β, lookahead" for trace and report
// output, given the production vector it indexes into.
func (it Item) String(prods []Production) string {
	p := prods[it.ProdIndex]
	alpha := ""
	for i := 0; i < it.Dot; i++ {
		alpha += p.RHS[i].Name + " "
	}
	beta := ""
	for i := it.Dot; i < len(p.RHS); i++ {
		beta += p.RHS[i].Name + " "
	}
	return fmt.Sprintf("%s -> %s· %s, %s", p.LHS.Name, alpha, beta, it.Lookahead.String())
}
