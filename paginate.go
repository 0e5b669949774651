package engine

// IteratorRange is a contiguous view over a page of documents. Ported from
// original_source/search-server/paginator.h's IteratorRange<Iterator>; Go
// slices already carry begin/end/size, so this is a thin named type rather
// than a hand-rolled iterator pair.
type IteratorRange struct {
	docs []Document
}

// Documents returns the page's documents.
func (r IteratorRange) Documents() []Document {
	return r.docs
}

// Len reports the number of documents in the page.
func (r IteratorRange) Len() int {
	return len(r.docs)
}

// Paginator splits a document slice into fixed-size pages, the last page
// holding the remainder. Ported from paginator.h's Paginator<Iterator>.
type Paginator struct {
	pages []IteratorRange
}

// Paginate builds a Paginator over docs with the given page size. A
// pageSize of zero or less yields a single page containing every document
// (mirrors the original only in intent — the C++ version's std::min would
// loop forever on the zero case, which this port handles with the single
// page instead of replicating).
func Paginate(docs []Document, pageSize int) Paginator {
	if pageSize <= 0 {
		if len(docs) == 0 {
			return Paginator{}
		}
		return Paginator{pages: []IteratorRange{{docs: docs}}}
	}

	var pages []IteratorRange
	for left := docs; len(left) > 0; {
		n := pageSize
		if n > len(left) {
			n = len(left)
		}
		pages = append(pages, IteratorRange{docs: left[:n]})
		left = left[n:]
	}
	return Paginator{pages: pages}
}

// Pages returns every page, in order.
func (p Paginator) Pages() []IteratorRange {
	return p.pages
}

// Len reports the number of pages.
func (p Paginator) Len() int {
	return len(p.pages)
}
