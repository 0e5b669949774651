package engine

import "testing"

func TestRequestLogCountsEmptyResults(t *testing.T) {
	e, _ := NewEngine(nil)
	must(t, e.AddDocument(1, "cat", StatusActual, []int{1}))

	log := NewRequestLog(e)

	for i := 0; i < 1439; i++ {
		if _, err := log.AddFindRequestDefault("dog"); err != nil {
			t.Fatalf("AddFindRequestDefault: %v", err)
		}
	}
	if got := log.NoResultRequests(); got != 1439 {
		t.Fatalf("NoResultRequests = %d, want 1439", got)
	}

	if _, err := log.AddFindRequestDefault("cat"); err != nil {
		t.Fatalf("AddFindRequestDefault: %v", err)
	}
	if got := log.NoResultRequests(); got != 1439 {
		t.Fatalf("NoResultRequests after non-empty result = %d, want 1439", got)
	}

	// The window is now full (oldest remembered tick is exactly 1440 ticks
	// old), so every further empty-result call expires one tick for every
	// one it records: the count holds steady at 1439.
	if _, err := log.AddFindRequestDefault("dog"); err != nil {
		t.Fatalf("AddFindRequestDefault: %v", err)
	}
	if got := log.NoResultRequests(); got != 1439 {
		t.Fatalf("NoResultRequests = %d, want 1439", got)
	}

	if _, err := log.AddFindRequestDefault("dog"); err != nil {
		t.Fatalf("AddFindRequestDefault: %v", err)
	}
	if got := log.NoResultRequests(); got != 1439 {
		t.Fatalf("NoResultRequests after window slide = %d, want 1439", got)
	}
}

func TestRequestLogWithStatus(t *testing.T) {
	e, _ := NewEngine(nil)
	must(t, e.AddDocument(1, "cat", StatusBanned, []int{1}))

	log := NewRequestLog(e)
	docs, err := log.AddFindRequestWithStatus("cat", StatusBanned)
	if err != nil {
		t.Fatalf("AddFindRequestWithStatus: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %v, want one banned doc", docs)
	}
	if log.NoResultRequests() != 0 {
		t.Fatalf("NoResultRequests = %d, want 0", log.NoResultRequests())
	}
}
