// Package cache persists a built ACTION/GOTO table to a binary file keyed
// by a content hash of the grammar it was built from, so darterparse can
// skip table construction on a second run over an unchanged grammar. A
// cache miss, a corrupt file, or a hash mismatch are never fatal: they are
// treated exactly like a fresh build is needed.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/darter/internal/darter/automaton"
	"github.com/dekarrin/darter/internal/darter/parse"
)

// HashGrammar returns the content hash a cache file is keyed against,
// computed over the raw bytes of the grammar file as loaded.
func HashGrammar(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// cachedTable is the on-disk shape: just the resolved ACTION/GOTO maps, the
// grammar hash they were built against, and the conflict policy they were
// resolved under. The automaton itself (item
// sets, transitions) is never persisted; it is rebuilt from the grammar
// every run and only the conflict-resolved table construction pass is
// skipped on a cache hit.
type cachedTable struct {
	GrammarHash string
	Policy      int
	Action      map[int]map[string]parse.Action
	Goto        map[int]map[string]int
}

// Load reads path and returns a usable *parse.Table if, and only if, its
// stored grammar hash matches grammarHash exactly and its stored policy
// matches policy. aut comes from the caller's own (always-rebuilt)
// automaton, since it is not persisted.
func Load(path, grammarHash string, aut *automaton.LR1Automaton, policy parse.ConflictPolicy) (*parse.Table, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var cached cachedTable
	if _, err := rezi.DecBinary(data, &cached); err != nil {
		log.Printf("DEBUG cache %s: decode failed, treating as miss: %s", path, err)
		return nil, false
	}
	if cached.GrammarHash != grammarHash || cached.Policy != int(policy) {
		return nil, false
	}

	return &parse.Table{
		Automaton: aut,
		Policy:    policy,
		Action:    cached.Action,
		Goto:      cached.Goto,
	}, true
}

// Save writes table's ACTION/GOTO maps to path, tagged with grammarHash. A
// write failure is logged and otherwise swallowed: losing the cache only
// costs a future rebuild, never correctness.
func Save(path, grammarHash string, table *parse.Table) {
	cached := cachedTable{
		GrammarHash: grammarHash,
		Policy:      int(table.Policy),
		Action:      table.Action,
		Goto:        table.Goto,
	}

	data := rezi.EncBinary(&cached)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("WARN  could not write table cache %s: %s", path, err)
	}
}
