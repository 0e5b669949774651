package engine

import "testing"

func TestInverseDocumentFrequency(t *testing.T) {
	ii := newInvertedIndex()
	ii.addWord("cat", 1, 1.0)
	ii.addWord("cat", 2, 1.0)
	ii.addWord("dog", 1, 1.0)

	if idf := inverseDocumentFrequency(ii, "dog", 2); !almostEqual(idf, 0.693147) {
		t.Errorf("idf(dog) = %v, want ~0.693147", idf)
	}
	if idf := inverseDocumentFrequency(ii, "missing", 2); idf != 0 {
		t.Errorf("idf(missing) = %v, want 0", idf)
	}
	if idf := inverseDocumentFrequency(ii, "cat", 0); idf != 0 {
		t.Errorf("idf with totalDocs=0 = %v, want 0", idf)
	}
}

func TestSortAndTruncate(t *testing.T) {
	docs := []Document{
		{ID: 1, Relevance: 0.1, Rating: 5},
		{ID: 2, Relevance: 0.9, Rating: 1},
		{ID: 3, Relevance: 0.5, Rating: 2},
	}
	sorted := sortAndTruncate(docs)
	want := []int{2, 3, 1}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d].ID = %d, want %d", i, sorted[i].ID, id)
		}
	}
}

func TestSortAndTruncateTieBreaksOnRating(t *testing.T) {
	docs := []Document{
		{ID: 1, Relevance: 0.5, Rating: 1},
		{ID: 2, Relevance: 0.5 + relevanceTolerance/10, Rating: 9},
	}
	sorted := sortAndTruncate(docs)
	if sorted[0].ID != 2 {
		t.Errorf("expected higher-rated doc first within tolerance, got %+v", sorted)
	}
}

func TestSortAndTruncateCapsAtMaxResults(t *testing.T) {
	docs := make([]Document, 0, MaxResults+3)
	for i := 0; i < MaxResults+3; i++ {
		docs = append(docs, Document{ID: i, Relevance: float64(i), Rating: 0})
	}
	sorted := sortAndTruncate(docs)
	if len(sorted) != MaxResults {
		t.Fatalf("len = %d, want %d", len(sorted), MaxResults)
	}
}

func TestStatusPredicateAndDefaultPredicate(t *testing.T) {
	actual := DefaultPredicate()
	if !actual(1, StatusActual, 0) {
		t.Errorf("DefaultPredicate should accept ACTUAL")
	}
	if actual(1, StatusBanned, 0) {
		t.Errorf("DefaultPredicate should reject BANNED")
	}

	banned := StatusPredicate(StatusBanned)
	if !banned(1, StatusBanned, 0) {
		t.Errorf("StatusPredicate(BANNED) should accept BANNED")
	}
}
