package engine

import "testing"

func TestRemoveDuplicates(t *testing.T) {
	e, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	// doc 1 and doc 3 share the exact same word set, just different tf.
	must(t, e.AddDocument(1, "cat dog cat", StatusActual, []int{1}))
	must(t, e.AddDocument(2, "cat fish", StatusActual, []int{1}))
	must(t, e.AddDocument(3, "dog cat", StatusActual, []int{1}))
	must(t, e.AddDocument(4, "cat dog bird", StatusActual, []int{1}))

	removed := RemoveDuplicates(e)
	want := []int{3}
	if !intSlicesEqual(removed, want) {
		t.Fatalf("removed = %v, want %v", removed, want)
	}

	if e.DocumentCount() != 3 {
		t.Errorf("DocumentCount = %d, want 3", e.DocumentCount())
	}
	if len(e.WordFrequencies(3)) != 0 {
		t.Errorf("doc 3 should no longer have word frequencies")
	}
}

func TestRemoveDuplicatesNoDuplicates(t *testing.T) {
	e, _ := NewEngine(nil)
	must(t, e.AddDocument(1, "cat", StatusActual, []int{1}))
	must(t, e.AddDocument(2, "dog", StatusActual, []int{1}))

	removed := RemoveDuplicates(e)
	if len(removed) != 0 {
		t.Fatalf("removed = %v, want none", removed)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
