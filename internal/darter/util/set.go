// Package util holds small generic helpers shared across the darter
// packages: ordered sets, a stack, and a few string-formatting helpers.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// StringSet is a set of strings implemented as a map, with ordering helpers
// for when iteration order needs to be deterministic.
type StringSet map[string]bool

func NewStringSet(items ...string) StringSet {
	s := StringSet{}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

func (s StringSet) Add(item string)    { s[item] = true }
func (s StringSet) Remove(item string) { delete(s, item) }
func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}
func (s StringSet) Len() int   { return len(s) }
func (s StringSet) Empty() bool { return len(s) == 0 }

func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s.Add(k)
	}
}

// Elements returns the set's members in no particular order.
func (s StringSet) Elements() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

// Sorted returns the set's members sorted ascending; used wherever
// construction order must be deterministic given a total order on names.
func (s StringSet) Sorted() []string {
	out := s.Elements()
	sort.Strings(out)
	return out
}

func (s StringSet) Copy() StringSet {
	newS := NewStringSet()
	newS.AddAll(s)
	return newS
}

func (s StringSet) Equal(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

func (s StringSet) Union(o StringSet) StringSet {
	n := s.Copy()
	n.AddAll(o)
	return n
}

func (s StringSet) Difference(o StringSet) StringSet {
	n := s.Copy()
	for k := range o {
		n.Remove(k)
	}
	return n
}

// StringOrdered renders the set's contents in alphabetical order, so the
// rendering is stable across runs.
func (s StringSet) StringOrdered() string {
	var sb strings.Builder
	sorted := s.Sorted()
	sb.WriteRune('{')
	for i, k := range sorted {
		sb.WriteString(k)
		if i+1 < len(sorted) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m sorted ascending, for when a map's
// iteration order needs to become deterministic before it affects output.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OrderedIntKeys is OrderedKeys for int-keyed maps.
func OrderedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// MakeTextList joins items into an English list: "a", "a or b", or
// "a, b, or c".
func MakeTextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		cp := make([]string, len(items))
		copy(cp, items)
		cp[len(cp)-1] = "or " + cp[len(cp)-1]
		return strings.Join(cp, ", ")
	}
}

// ArticleFor returns "a" or "an" depending on whether s begins with a vowel
// sound. Capitalize controls whether the article itself is capitalized.
func ArticleFor(s string, capitalize bool) string {
	article := "a"
	if len(s) > 0 && strings.ContainsRune("aeiouAEIOU", rune(s[0])) {
		article = "an"
	}
	if capitalize {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}

// Quote wraps s in double quotes for use in diagnostic messages, matching
// the %q formatting used throughout the loaders.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}
