package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProcessQueries runs every query in queries against e concurrently and
// returns one result slice per query, in the same order as queries.
// Ported from original_source/search-server/process_queries.cpp's
// ProcessQueries, which uses std::execution::par + std::transform over a
// pre-sized output vector — the same "fixed-size output slice, fill slot i
// from goroutine i" shape translated into errgroup.Go calls.
func ProcessQueries(e *Engine, queries []string) ([][]Document, error) {
	results := make([][]Document, len(queries))
	g, _ := errgroup.WithContext(context.Background())
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := e.FindTopDocuments(q)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries followed by a flatten, preserving
// per-query order — the Go translation of the original's std::reduce over
// the per-query result vectors.
func ProcessQueriesJoined(e *Engine, queries []string) ([]Document, error) {
	perQuery, err := ProcessQueries(e, queries)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}
	joined := make([]Document, 0, total)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}
