package engine

import (
	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// FORWARD & INVERTED INDEX — HYBRID STORAGE
// ═══════════════════════════════════════════════════════════════════════════════
// Every word carries two parallel structures, the same "hybrid storage"
// idea the engine this is ported from uses for phrase search, re-tasked
// here for TF-IDF:
//
//   postings[word]  *tfSkipList     ordered docID -> tf (source of truth)
//   docBitmaps[word] *roaring.Bitmap  the same docIDs, compressed, for O(1)
//                                     cardinality (idf's document-frequency
//                                     term) and O(1) membership tests (the
//                                     minus-word exclusion check)
//
// The two must always agree on membership: every id in postings[word] is
// in docBitmaps[word] and vice versa. They are mutated together in
// addWord/removeDoc, never independently.
// ═══════════════════════════════════════════════════════════════════════════════
type invertedIndex struct {
	postings   map[string]*tfSkipList
	docBitmaps map[string]*roaring.Bitmap
}

func newInvertedIndex() *invertedIndex {
	return &invertedIndex{
		postings:   make(map[string]*tfSkipList),
		docBitmaps: make(map[string]*roaring.Bitmap),
	}
}

// addWord records one occurrence contribution (delta tf) of word in docID.
func (ii *invertedIndex) addWord(word string, docID int, delta float64) {
	sl, ok := ii.postings[word]
	if !ok {
		sl = newTFSkipList()
		ii.postings[word] = sl
		ii.docBitmaps[word] = roaring.NewBitmap()
	}
	sl.add(docID, delta)
	ii.docBitmaps[word].Add(uint32(docID))
}

// removeDoc drops docID from word's posting list. The word entry itself
// is retained even if this empties its posting list: the inverted index
// never garbage-collects empty word entries after a removal, it only
// removes the posting.
func (ii *invertedIndex) removeDoc(word string, docID int) {
	sl, ok := ii.postings[word]
	if !ok {
		return
	}
	sl.delete(docID)
	if bm, ok := ii.docBitmaps[word]; ok {
		bm.Remove(uint32(docID))
	}
}

// contains reports whether docID is in word's posting list — the minus
// word exclusion check, answered in O(1) via the bitmap sidecar instead of
// walking the skip list.
func (ii *invertedIndex) contains(word string, docID int) bool {
	bm, ok := ii.docBitmaps[word]
	if !ok {
		return false
	}
	return bm.Contains(uint32(docID))
}

// documentFrequency returns |{d : d in postings[word]}|, the df term of
// idf. O(1) via bitmap cardinality.
func (ii *invertedIndex) documentFrequency(word string) int {
	bm, ok := ii.docBitmaps[word]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// postingsFor returns (skip list, true) for word, or (nil, false).
func (ii *invertedIndex) postingsFor(word string) (*tfSkipList, bool) {
	sl, ok := ii.postings[word]
	return sl, ok
}

// requirePostings is postingsFor for callers that treat an absent word as
// a hard error rather than a silent empty result — used for introspection
// APIs, not the ranking hot path, which skips absent words outright.
func (ii *invertedIndex) requirePostings(word string) (*tfSkipList, error) {
	sl, ok := ii.postings[word]
	if !ok {
		return nil, ErrNoPostingList
	}
	return sl, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// FORWARD INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// document id -> map(word -> tf). Kept as a map[string]float64
// instead of the skip list used for postings: the forward index is never
// ranged over in sorted order by the engine (only iterated to find removal
// targets, or returned verbatim via WordFrequencies), so the ordering
// guarantee the skip list buys the inverted index isn't needed here — a
// plain map is the simpler, equally correct choice and keeps this type
// small.
// ═══════════════════════════════════════════════════════════════════════════════
type forwardIndex struct {
	wordFreqs map[int]map[string]float64
}

func newForwardIndex() *forwardIndex {
	return &forwardIndex{wordFreqs: make(map[int]map[string]float64)}
}

func (fi *forwardIndex) add(docID int, word string, delta float64) {
	m, ok := fi.wordFreqs[docID]
	if !ok {
		m = make(map[string]float64)
		fi.wordFreqs[docID] = m
	}
	m[word] += delta
}

// wordsOf returns the live map for docID, or nil if docID is unknown.
// Callers that need to hand this out to the public API must copy it
// first (see Engine.WordFrequencies).
func (fi *forwardIndex) wordsOf(docID int) map[string]float64 {
	return fi.wordFreqs[docID]
}

func (fi *forwardIndex) remove(docID int) {
	delete(fi.wordFreqs, docID)
}
