package engine

// minutesPerDay is the trailing-window size, 1440 minutes — one tick per
// call to Add*, matching the original's min_in_day_ constant.
const minutesPerDay = 1440

// RequestLog wraps an Engine and remembers, over a trailing window of the
// last minutesPerDay calls, how many of them returned zero documents.
// Ported from original_source/search-server/request_queue.{h,cpp}:
// RequestQueue's deque<QueryResult> becomes a plain slice used as a queue
// here (append at the back, reslice at the front) since Go has no deque in
// its standard library and the queue only ever needs push-back/pop-front at
// its two ends.
type RequestLog struct {
	engine      *Engine
	timestamps  []int // timestamp of each currently-remembered empty result
	currentTime int
}

// NewRequestLog wraps engine for request tracking.
func NewRequestLog(engine *Engine) *RequestLog {
	return &RequestLog{engine: engine}
}

// expire drops the oldest remembered timestamp if it has aged out of the
// trailing window. Mirrors the original's single `if` check (not a loop):
// current_time advances by exactly one tick per call, so the front entry
// can become stale by at most one tick between calls, and a single
// conditional pop keeps the window correctly bounded.
func (r *RequestLog) expire() {
	if len(r.timestamps) > 0 && r.currentTime-r.timestamps[0] >= minutesPerDay {
		r.timestamps = r.timestamps[1:]
	}
}

// AddFindRequest runs FindTopDocumentsWithPredicate through the engine,
// advances the clock by one tick, and — if the result was empty — records
// the tick in the trailing window.
func (r *RequestLog) AddFindRequest(raw string, pred Predicate) ([]Document, error) {
	r.expire()

	docs, err := r.engine.FindTopDocumentsWithPredicate(raw, pred)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		r.timestamps = append(r.timestamps, r.currentTime)
	}
	r.currentTime++
	return docs, nil
}

// AddFindRequestWithStatus is the status-predicate convenience overload.
func (r *RequestLog) AddFindRequestWithStatus(raw string, status DocumentStatus) ([]Document, error) {
	return r.AddFindRequest(raw, StatusPredicate(status))
}

// AddFindRequestDefault is the default-predicate (ACTUAL-only) overload.
func (r *RequestLog) AddFindRequestDefault(raw string) ([]Document, error) {
	return r.AddFindRequest(raw, DefaultPredicate())
}

// NoResultRequests returns how many of the last minutesPerDay calls to
// AddFindRequest* returned zero documents. Matches the original's
// GetNoResultRequests: it reports the window's current size without
// forcing an expiry check of its own — expiry only ever happens inside
// AddFindRequest.
func (r *RequestLog) NoResultRequests() int {
	return len(r.timestamps)
}
