package parse

import (
	"strings"

	"github.com/dekarrin/darter/internal/darter/token"
)

// Tree is one node of a concrete parse tree: either a terminal leaf holding
// the token that was shifted, or an interior node for a reduced production,
// holding its children in left-to-right RHS order.
type Tree struct {
	Symbol   string
	Terminal bool
	Token    token.Token
	Children []*Tree
}

// leaf builds a terminal node. Its Symbol is the token's lexeme, not its
// class: §4.10 keys the grammar's terminal set by lexeme, so the lexeme is
// what names the terminal this leaf actually matched.
func leaf(tok token.Token) *Tree {
	return &Tree{Symbol: tok.Lexeme, Terminal: true, Token: tok}
}

func interior(symbol string, children []*Tree) *Tree {
	return &Tree{Symbol: symbol, Children: children}
}

// String renders the tree as indented lines, one symbol per line.
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb, 0)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if t.Terminal {
		sb.WriteString(t.Symbol)
		sb.WriteString(" \"")
		sb.WriteString(t.Token.Lexeme)
		sb.WriteString("\"\n")
		return
	}
	sb.WriteString(t.Symbol)
	sb.WriteString("\n")
	for _, c := range t.Children {
		c.write(sb, depth+1)
	}
}
