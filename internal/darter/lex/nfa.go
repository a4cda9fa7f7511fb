package lex

import "github.com/dekarrin/darter/internal/darter/automaton"

// BuildNFA compiles rules into one NFA whose accepting states carry the
// index (into rules) of the rule that accepts there. A fresh start state
// epsilon-transitions into each rule's own sub-fragment, mirroring the
// original scanner's per-pattern NFA construction before all fragments are
// joined into a single machine.
func BuildNFA(rules []Rule) *automaton.NFA[int] {
	n := automaton.NewNFA[int]()
	start := n.AddState(-1)
	n.Start = start

	for i, r := range rules {
		var sub int
		switch r.Kind {
		case KindLiteral:
			sub = buildLiteralFragment(n, r.Literal, i)
		case KindIdentifier:
			sub = buildIdentifierFragment(n, i)
		case KindConstant:
			sub = buildConstantFragment(n, i)
		}
		n.AddTransition(start, automaton.Epsilon, sub)
	}

	return n
}

// buildLiteralFragment adds a linear chain of states, one per rune of
// literal, with the final state accepting as rule ruleIdx.
func buildLiteralFragment(n *automaton.NFA[int], literal string, ruleIdx int) (start int) {
	cur := n.AddState(-1)
	start = cur
	for _, r := range literal {
		next := n.AddState(-1)
		n.AddTransition(cur, string(r), next)
		cur = next
	}
	n.SetValue(cur, ruleIdx)
	n.SetAccepting(cur, true)
	return start
}

// buildIdentifierFragment adds the two-state skeleton for (letter|'_')
// (letter|digit|'_')*: a start state that moves to the accepting state on a
// letter or underscore, and an accepting state that loops on letters,
// digits, and underscore.
func buildIdentifierFragment(n *automaton.NFA[int], ruleIdx int) (start int) {
	s0 := n.AddState(-1)
	s1 := n.AddState(ruleIdx)
	n.SetAccepting(s1, true)

	for _, ch := range letters() {
		n.AddTransition(s0, string(ch), s1)
		n.AddTransition(s1, string(ch), s1)
	}
	for _, ch := range digits() {
		n.AddTransition(s1, string(ch), s1)
	}
	n.AddTransition(s1, "_", s1)
	n.AddTransition(s0, "_", s1)

	return s0
}

// buildConstantFragment adds the digit+ ('.' digit+)? skeleton: an
// accepting run of digits, optionally followed by a '.' and a second
// accepting run of digits.
func buildConstantFragment(n *automaton.NFA[int], ruleIdx int) (start int) {
	s0 := n.AddState(-1)
	s1 := n.AddState(ruleIdx)
	n.SetAccepting(s1, true)
	for _, d := range digits() {
		n.AddTransition(s0, string(d), s1)
		n.AddTransition(s1, string(d), s1)
	}

	s2 := n.AddState(-1)
	n.AddTransition(s1, ".", s2)

	s3 := n.AddState(ruleIdx)
	n.SetAccepting(s3, true)
	for _, d := range digits() {
		n.AddTransition(s2, string(d), s3)
		n.AddTransition(s3, string(d), s3)
	}

	return s0
}

func letters() []rune {
	out := make([]rune, 0, 52)
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, c)
	}
	return out
}

func digits() []rune {
	out := make([]rune, 0, 10)
	for c := '0'; c <= '9'; c++ {
		out = append(out, c)
	}
	return out
}

// MergeAcceptingRule picks, among an NFA subset's accepting member states,
// the lowest rule index (i.e. whichever rule was declared first in the
// rule file). This is the tie-break a longest-match scan relies on: a
// keyword's literal rule beats the identifier rule at the same lexeme
// length only because it was declared earlier, never by any special-casing
// in the scanner itself.
func MergeAcceptingRule(members []int, n *automaton.NFA[int]) int {
	best := -1
	for _, m := range members {
		st := n.States[m]
		if st.Accepting && (best == -1 || st.Value < best) {
			best = st.Value
		}
	}
	return best
}

// AnyAccepting reports whether any member of the subset is an accepting
// NFA state.
func AnyAccepting(members []int, n *automaton.NFA[int]) bool {
	for _, m := range members {
		if n.States[m].Accepting {
			return true
		}
	}
	return false
}
