package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PARALLEL VARIANTS
// ═══════════════════════════════════════════════════════════════════════════════
// The original search-server overloads every public method on an
// ExecutionPolicy tag (std::execution::seq / std::execution::par) dispatched
// at compile time. Go has no template-level dispatch, so each parallel
// variant gets its own exported method instead, built on
// golang.org/x/sync/errgroup — the idiomatic stand-in for std::execution::par
// + for_each/transform/reduce used throughout the original's
// process_queries.cpp and remove_duplicates.cpp.
// ═══════════════════════════════════════════════════════════════════════════════

// RemoveDocumentParallel removes id, fanning the per-word posting removal
// out across goroutines. A no-op if id is unknown.
func (e *Engine) RemoveDocumentParallel(id int) error {
	words := e.forward.wordsOf(id)
	if len(words) == 0 {
		delete(e.metadata, id)
		delete(e.idSet, id)
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	for word := range words {
		word := word
		g.Go(func() error {
			e.inverted.removeDoc(word, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.forward.remove(id)
	delete(e.metadata, id)
	delete(e.idSet, id)
	return nil
}

// FindTopDocumentsParallel is the parallel counterpart of FindTopDocuments.
func (e *Engine) FindTopDocumentsParallel(raw string) ([]Document, error) {
	return e.FindTopDocumentsParallelWithPredicate(raw, DefaultPredicate())
}

// FindTopDocumentsParallelWithStatus is the parallel counterpart of
// FindTopDocumentsWithStatus.
func (e *Engine) FindTopDocumentsParallelWithStatus(raw string, status DocumentStatus) ([]Document, error) {
	return e.FindTopDocumentsParallelWithPredicate(raw, StatusPredicate(status))
}

// FindTopDocumentsParallelWithPredicate is the parallel counterpart of
// FindTopDocumentsWithPredicate. Plus-word contributions are accumulated
// concurrently into a shardedRelevanceMap (one goroutine per distinct
// word); minus-word exclusion then runs as a second concurrent phase once
// every plus word has finished accumulating. Because goroutines may add to
// the same document's bucket in different orders across runs, the result
// can differ from the sequential path by up to relevanceTolerance, since
// floating-point addition isn't associative.
func (e *Engine) FindTopDocumentsParallelWithPredicate(raw string, pred Predicate) ([]Document, error) {
	q, err := parseQueryNoDuplicates(raw, e.stop)
	if err != nil {
		return nil, err
	}

	totalDocs := e.DocumentCount()
	acc := newShardedRelevanceMap()

	plusGroup, _ := errgroup.WithContext(context.Background())
	for _, word := range q.plusWords {
		word := word
		plusGroup.Go(func() error {
			sl, ok := e.inverted.postingsFor(word)
			if !ok {
				return nil
			}
			idf := inverseDocumentFrequency(e.inverted, word, totalDocs)
			sl.forEach(func(id int, tf float64) {
				data, ok := e.metadata[id]
				if !ok {
					return
				}
				if pred(id, data.Status, data.Rating) {
					acc.Add(id, tf*idf)
				}
			})
			return nil
		})
	}
	if err := plusGroup.Wait(); err != nil {
		return nil, err
	}

	minusGroup, _ := errgroup.WithContext(context.Background())
	for _, word := range q.minusWords {
		word := word
		minusGroup.Go(func() error {
			sl, ok := e.inverted.postingsFor(word)
			if !ok {
				return nil
			}
			sl.forEach(func(id int, _ float64) {
				acc.Erase(id)
			})
			return nil
		})
	}
	if err := minusGroup.Wait(); err != nil {
		return nil, err
	}

	relevance := acc.BuildOrdinaryMap()
	docs := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		docs = append(docs, Document{ID: id, Relevance: rel, Rating: e.metadata[id].Rating})
	}
	return sortAndTruncate(docs), nil
}

// MatchDocumentParallel is the parallel counterpart of MatchDocument: minus
// words are tested for membership concurrently first, any hit collapsing
// the result to empty; plus words are then tested concurrently the same
// way. It validates id the same way the sequential form does; the C++
// original validates id only in its parallel overload, while this port
// keeps both variants symmetric.
func (e *Engine) MatchDocumentParallel(raw string, id int) ([]string, DocumentStatus, error) {
	data, ok := e.metadata[id]
	if !ok {
		return nil, 0, fmt.Errorf("match document %d: %w", id, ErrUnknownDocument)
	}

	q, err := parseQueryBasic(raw, e.stop)
	if err != nil {
		return nil, 0, err
	}

	minusHit := make(chan struct{}, len(q.minusWords))
	mg, _ := errgroup.WithContext(context.Background())
	for _, word := range q.minusWords {
		word := word
		mg.Go(func() error {
			if e.inverted.contains(word, id) {
				minusHit <- struct{}{}
			}
			return nil
		})
	}
	if err := mg.Wait(); err != nil {
		return nil, 0, err
	}
	if len(minusHit) > 0 {
		return []string{}, data.Status, nil
	}

	found := make([]bool, len(q.plusWords))
	pg, _ := errgroup.WithContext(context.Background())
	for i, word := range q.plusWords {
		i, word := i, word
		pg.Go(func() error {
			found[i] = e.inverted.contains(word, id)
			return nil
		})
	}
	if err := pg.Wait(); err != nil {
		return nil, 0, err
	}

	matchedWords := make([]string, 0, len(q.plusWords))
	for i, word := range q.plusWords {
		if found[i] {
			matchedWords = append(matchedWords, word)
		}
	}
	matched := sortDedupe(matchedWords)
	return matched, data.Status, nil
}
