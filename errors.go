package engine

import "errors"

// Package-level sentinel errors, comparable with errors.Is.
// Kept as package vars rather than ad-hoc fmt.Errorf at every call site so
// callers can compare against a fixed identity instead of a message.
var (
	ErrInvalidDocumentID  = errors.New("document id is negative or already present")
	ErrUnknownDocument    = errors.New("document id is not known to the engine")
	ErrEmptyRatings       = errors.New("ratings must not be empty")
	ErrInvalidWord        = errors.New("word contains a control byte")
	ErrEmptyQueryWord     = errors.New("query word is empty")
	ErrBareMinus          = errors.New("query word is a bare minus sign")
	ErrDoubleMinus        = errors.New("query word begins with two minus signs")
	ErrInvalidStopWord    = errors.New("stop word is invalid")
	ErrNoPostingList      = errors.New("no posting list exists for word")
)
