package engine

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS
// ═══════════════════════════════════════════════════════════════════════════════
// Unlike a general-purpose search engine, this one does not lowercase,
// stem, or Unicode-normalize anything: "Cat" and "cat" are different
// tokens, and "running" never matches "run". The only two transformations
// applied to a document body on its way into the index are:
//
//  1. Tokenization     → split on ASCII whitespace only
//  2. Stopword removal → drop tokens present in the stop-word set
//
// Query-time validity is stricter (see query.go) because a bad query token
// is something the caller typed, not prose to be indexed.
// ═══════════════════════════════════════════════════════════════════════════════

// tokenize splits text on ASCII whitespace (space, tab, \n, \r). No other
// character is treated as a delimiter — punctuation stays attached to the
// token it's adjacent to, matching SplitIntoWordsView in the original
// implementation this engine is ported from.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, isASCIIWhitespace)
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// isValidWord reports whether word contains no ASCII control byte (value
// in [0, 32)). This is the one validity rule shared by both indexed
// document words and query words.
func isValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 32 {
			return false
		}
	}
	return true
}

// stopwordSet is the immutable set fixed at engine construction.
type stopwordSet map[string]struct{}

func newStopwordSet(words []string) (stopwordSet, error) {
	set := make(stopwordSet, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if !isValidWord(w) {
			return nil, ErrInvalidStopWord
		}
		set[w] = struct{}{}
	}
	return set, nil
}

func (s stopwordSet) contains(word string) bool {
	_, ok := s[word]
	return ok
}

// splitWordsNoStop tokenizes text, validates every kept token, and drops
// stopwords. It returns ErrInvalidWord the first time it finds a control
// byte, mirroring SearchServer::SplitIntoWordsNoStop's throw on an invalid
// document word.
func splitWordsNoStop(text string, stop stopwordSet) ([]string, error) {
	tokens := tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isValidWord(tok) {
			return nil, ErrInvalidWord
		}
		if stop.contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept, nil
}
