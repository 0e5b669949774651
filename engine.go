package engine

import (
	"fmt"
	"log/slog"
	"sort"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ENGINE: Glue Over Components A-E
// ═══════════════════════════════════════════════════════════════════════════════
// Engine is the single-writer/multi-reader aggregate: one corpus store, one
// forward/inverted index pair, one stop-word set, one metadata map, one id
// set. Concurrent reads (multiple FindTopDocuments calls) are safe provided
// no concurrent AddDocument/RemoveDocument is in flight — callers that mix
// the two must synchronize externally, the same contract InvertedIndex
// documents for its own single mutex.
// ═══════════════════════════════════════════════════════════════════════════════
type Engine struct {
	corpus   *corpusStore
	forward  *forwardIndex
	inverted *invertedIndex
	stop     stopwordSet

	metadata map[int]DocumentData
	idSet    map[int]struct{}
}

// NewEngine constructs an engine from a collection of stop words. Fails if
// any stop word is invalid (contains a control byte).
func NewEngine(stopWords []string) (*Engine, error) {
	set, err := newStopwordSet(stopWords)
	if err != nil {
		return nil, err
	}
	return &Engine{
		corpus:   newCorpusStore(),
		forward:  newForwardIndex(),
		inverted: newInvertedIndex(),
		stop:     set,
		metadata: make(map[int]DocumentData),
		idSet:    make(map[int]struct{}),
	}, nil
}

// NewEngineFromString builds an engine from a single whitespace-separated
// string of stop words — the Go equivalent of the two
// std::string/std::string_view SearchServer constructor overloads, which
// collapse to one signature here since Go strings already behave as
// read-only views.
func NewEngineFromString(stopWords string) (*Engine, error) {
	return NewEngine(tokenize(stopWords))
}

// AddDocument admits a new document. Fails with ErrInvalidDocumentID if id
// is negative or already present, or ErrEmptyRatings if ratings is empty.
// A failed call leaves the engine unchanged.
func (e *Engine) AddDocument(id int, text string, status DocumentStatus, ratings []int) error {
	if id < 0 {
		return ErrInvalidDocumentID
	}
	if _, exists := e.idSet[id]; exists {
		return ErrInvalidDocumentID
	}
	if len(ratings) == 0 {
		return ErrEmptyRatings
	}

	words, err := splitWordsNoStop(text, e.stop)
	if err != nil {
		return err
	}
	e.corpus.store(id, text)

	if n := len(words); n > 0 {
		invN := 1.0 / float64(n)
		for _, w := range words {
			e.inverted.addWord(w, id, invN)
			e.forward.add(id, w, invN)
		}
	}

	rating := computeAverageRating(ratings)
	e.metadata[id] = DocumentData{Rating: rating, Status: status}
	e.idSet[id] = struct{}{}

	slog.Info("document added", slog.Int("id", id), slog.Int("words", len(words)))
	return nil
}

// computeAverageRating is the integer mean of ratings, Go's native integer
// division already truncating toward zero (the same behavior as the C++
// original's `accumulate(...) / static_cast<int>(ratings.size())`).
func computeAverageRating(ratings []int) int {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RemoveDocument removes id, sequentially. A no-op if id is unknown.
func (e *Engine) RemoveDocument(id int) {
	words := e.forward.wordsOf(id)
	for word := range words {
		e.inverted.removeDoc(word, id)
	}
	e.forward.remove(id)
	delete(e.metadata, id)
	delete(e.idSet, id)
}

// DocumentCount returns the number of currently admitted documents.
func (e *Engine) DocumentCount() int {
	return len(e.metadata)
}

// WordFrequencies returns a fresh copy of the word->tf map for id, or an
// empty map for an unknown id. A copy, not a live view, is returned: Go
// has no const-reference equivalent, and handing out the live map would
// let a caller corrupt the index by mutating it.
func (e *Engine) WordFrequencies(id int) map[string]float64 {
	src := e.forward.wordsOf(id)
	out := make(map[string]float64, len(src))
	for w, tf := range src {
		out[w] = tf
	}
	return out
}

// PostingListSize returns the number of documents currently indexed under
// word, or ErrNoPostingList if word has never been indexed at all (as
// opposed to having an empty posting list after every containing document
// was removed — see invertedIndex.removeDoc).
func (e *Engine) PostingListSize(word string) (int, error) {
	sl, err := e.inverted.requirePostings(word)
	if err != nil {
		return 0, err
	}
	return sl.len(), nil
}

// DocumentIDs returns every admitted id in ascending order.
func (e *Engine) DocumentIDs() []int {
	ids := make([]int, 0, len(e.idSet))
	for id := range e.idSet {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// FindTopDocuments ranks documents against raw with the default predicate
// (ACTUAL documents only), sequentially.
func (e *Engine) FindTopDocuments(raw string) ([]Document, error) {
	return e.FindTopDocumentsWithPredicate(raw, DefaultPredicate())
}

// FindTopDocumentsWithStatus ranks documents whose status equals status,
// sequentially.
func (e *Engine) FindTopDocumentsWithStatus(raw string, status DocumentStatus) ([]Document, error) {
	return e.FindTopDocumentsWithPredicate(raw, StatusPredicate(status))
}

// FindTopDocumentsWithPredicate ranks documents matching raw for which
// pred(id, status, rating) holds, sequentially.
func (e *Engine) FindTopDocumentsWithPredicate(raw string, pred Predicate) ([]Document, error) {
	q, err := parseQueryNoDuplicates(raw, e.stop)
	if err != nil {
		return nil, err
	}
	docs := e.findAllDocuments(q, pred)
	return sortAndTruncate(docs), nil
}

// findAllDocuments is the sequential scatter/gather: accumulate plus-word
// contributions into a relevance map (skipping documents the predicate
// rejects), then drop every document that any matched minus word excludes.
func (e *Engine) findAllDocuments(q query, pred Predicate) []Document {
	totalDocs := e.DocumentCount()
	relevance := make(map[int]float64)

	for _, word := range q.plusWords {
		sl, ok := e.inverted.postingsFor(word)
		if !ok {
			continue
		}
		idf := inverseDocumentFrequency(e.inverted, word, totalDocs)
		sl.forEach(func(id int, tf float64) {
			data, ok := e.metadata[id]
			if !ok {
				return
			}
			if pred(id, data.Status, data.Rating) {
				relevance[id] += tf * idf
			}
		})
	}

	for _, word := range q.minusWords {
		sl, ok := e.inverted.postingsFor(word)
		if !ok {
			continue
		}
		sl.forEach(func(id int, _ float64) {
			delete(relevance, id)
		})
	}

	docs := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		docs = append(docs, Document{ID: id, Relevance: rel, Rating: e.metadata[id].Rating})
	}
	return docs
}

// MatchDocument reports which of raw's plus words are present in id
// (empty if any minus word matches), along with id's status. Unlike the
// C++ original's sequential overload, this validates id and returns
// ErrUnknownDocument on a miss instead of an undefined lookup — kept
// symmetric with MatchDocumentParallel, which validates id either way.
func (e *Engine) MatchDocument(raw string, id int) ([]string, DocumentStatus, error) {
	data, ok := e.metadata[id]
	if !ok {
		return nil, 0, fmt.Errorf("match document %d: %w", id, ErrUnknownDocument)
	}

	q, err := parseQueryNoDuplicates(raw, e.stop)
	if err != nil {
		return nil, 0, err
	}

	for _, word := range q.minusWords {
		if e.inverted.contains(word, id) {
			return []string{}, data.Status, nil
		}
	}

	matched := make([]string, 0, len(q.plusWords))
	for _, word := range q.plusWords {
		if e.inverted.contains(word, id) {
			matched = append(matched, word)
		}
	}
	return matched, data.Status, nil
}
