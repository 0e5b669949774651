package engine

import (
	"log/slog"
	"sort"
	"strings"
)

// RemoveDuplicates drops every document whose exact word set already
// occurred in an earlier (lower-id) document, and returns the removed ids
// in the order they were removed. Ported from
// original_source/search-server/remove_duplicates.cpp: that version walks
// ids in the server's native iteration order and uses a set<set<string>>
// to remember word sets seen so far; this builds the same fingerprint with
// a sorted, joined word list (Go has no ordered-set type in its standard
// library) and walks DocumentIDs(), which is already ascending.
func RemoveDuplicates(e *Engine) []int {
	seen := make(map[string]struct{})
	var toRemove []int

	for _, id := range e.DocumentIDs() {
		fingerprint := wordSetFingerprint(e.WordFrequencies(id))
		if _, dup := seen[fingerprint]; dup {
			toRemove = append(toRemove, id)
			slog.Info("duplicate document found", slog.Int("id", id))
			continue
		}
		seen[fingerprint] = struct{}{}
	}

	for _, id := range toRemove {
		e.RemoveDocument(id)
	}
	return toRemove
}

// wordSetFingerprint collapses a word->tf map down to a string uniquely
// identifying its key set: two documents built from different word
// multisets that happen to share the same distinct words produce the same
// fingerprint, matching the original's set<string> comparison (which
// discards frequency, keeping only membership).
func wordSetFingerprint(words map[string]float64) string {
	keys := make([]string, 0, len(words))
	for w := range words {
		keys = append(keys, w)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}
