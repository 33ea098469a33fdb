// Package translation implements the machine translation pipeline: a backend
// abstraction over external MT engines, a content-hash cache in front of it,
// and an orchestrator that fills empty secondary-language fields after content
// writes commit.
package translation

import (
	"context"
	"errors"
	"fmt"
)

// Backend translates text between two fixed languages. Implementations wrap
// one external MT engine.
type Backend interface {
	// Translate returns the translation of text from src to dst language.
	// An empty result with nil error is treated as a failed translation by
	// callers; backends should return an error instead.
	Translate(ctx context.Context, text, src, dst string) (string, error)

	// Engine identifies the backend (e.g. "google", "mock") and namespaces
	// its cache entries: different engines never share cached output.
	Engine() string
}

// BackendError describes a failed call to an MT engine. Transient errors
// (timeouts, 429, 5xx) may succeed on a later attempt; permanent errors
// (4xx, malformed responses) will not.
type BackendError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("translation backend: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// IsTransient reports whether err is a backend error worth retrying later.
func IsTransient(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Transient
}
