package model

import "errors"

var (
	// ErrResourceUnavailable marks a load-once resource (tagger model,
	// stopword list, tagset catalog, font) that could not be loaded.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrTaggerContract is returned when a tagger yields a different number
	// of tags than it was given tokens.
	ErrTaggerContract = errors.New("tagger returned mismatched tag count")
)
