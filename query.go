package engine

import "sort"

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSING
// ═══════════════════════════════════════════════════════════════════════════════
// A Query is just two word lists: plusWords (must match) and minusWords
// (must not match). There is no boolean expression tree here — no
// arbitrary AND/OR/NOT composition over bitmaps, just the flat
// "term -term term" syntax of the original search-server: every bare token
// is a plus word, every `-token` is a minus word, and that's the entire
// grammar.
// ═══════════════════════════════════════════════════════════════════════════════

// query holds the parsed plus/minus word lists for one search request.
type query struct {
	plusWords  []string
	minusWords []string
}

// parseQueryWord classifies and validates a single raw query token.
// Returns (word, isMinus, error).
func parseQueryWord(raw string) (string, bool, error) {
	if raw == "" {
		return "", false, ErrEmptyQueryWord
	}

	isMinus := false
	word := raw
	if word[0] == '-' {
		isMinus = true
		word = word[1:]
	}

	if word == "" {
		return "", false, ErrBareMinus
	}
	if word[0] == '-' {
		return "", false, ErrDoubleMinus
	}
	if !isValidWord(word) {
		return "", false, ErrInvalidWord
	}

	return word, isMinus, nil
}

// parseQueryBasic walks the raw query's whitespace tokens, preserving
// insertion order and duplicates. Used by the parallel MatchDocument path,
// which de-duplicates its own result afterward.
func parseQueryBasic(text string, stop stopwordSet) (query, error) {
	var q query
	for _, tok := range tokenize(text) {
		word, isMinus, err := parseQueryWord(tok)
		if err != nil {
			return query{}, err
		}
		if stop.contains(word) {
			continue
		}
		if isMinus {
			q.minusWords = append(q.minusWords, word)
		} else {
			q.plusWords = append(q.plusWords, word)
		}
	}
	return q, nil
}

// parseQueryNoDuplicates is parseQueryBasic followed by a sort + dedupe of
// each list, in lexicographic byte order (Go's native string <, which is
// already byte-wise — no locale collation to worry about).
func parseQueryNoDuplicates(text string, stop stopwordSet) (query, error) {
	q, err := parseQueryBasic(text, stop)
	if err != nil {
		return query{}, err
	}
	q.plusWords = sortDedupe(q.plusWords)
	q.minusWords = sortDedupe(q.minusWords)
	return q, nil
}

func sortDedupe(words []string) []string {
	if len(words) < 2 {
		return words
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
