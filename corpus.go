package engine

// ═══════════════════════════════════════════════════════════════════════════════
// CORPUS STORE
// ═══════════════════════════════════════════════════════════════════════════════
// The corpus store owns every document body for the lifetime of the engine.
// Once a body is admitted its string value never changes and is never
// removed from the map, even after RemoveDocument drops the document from
// every index — this is what makes word tokens handed out by the analyzer
// ("views" into the body, in Go just ordinary substrings) safe to keep
// around in the inverted/forward indices indefinitely.
//
// Go strings are immutable value types backed by their own array, so unlike
// a deque<string> (the C++ original's choice for pointer stability across
// reallocation) a plain map[int]string is already stable: growing the map
// never moves or mutates a body that is already stored.
// ═══════════════════════════════════════════════════════════════════════════════
type corpusStore struct {
	bodies map[int]string
}

func newCorpusStore() *corpusStore {
	return &corpusStore{bodies: make(map[int]string)}
}

// store admits a new body under id and returns the stable copy. Callers
// must only call this once per id (the engine enforces uniqueness before
// reaching here).
func (c *corpusStore) store(id int, text string) string {
	c.bodies[id] = text
	return c.bodies[id]
}

// body returns the stored text for id, if any. Kept even after the
// document has been removed from the indices (see package doc above).
func (c *corpusStore) body(id int) (string, bool) {
	b, ok := c.bodies[id]
	return b, ok
}
