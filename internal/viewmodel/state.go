// Package viewmodel holds the screen-local view state of the storefront.
//
// Every screen renders one or more State values: loading, failed with a static
// message, or loaded with data. Holders are safe for concurrent use.
package viewmodel

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/repository"
)

// ErrInvalidQuery is returned when a screen is asked for an unknown filter, sort or id.
var ErrInvalidQuery = errors.New("invalid query")

// State is the tri-state of one piece of screen data.
type State[T any] struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Stale   bool   `json:"stale,omitempty"`
	Data    T      `json:"data"`
}

// Success reports whether the data finished loading without error.
func (s State[T]) Success() bool {
	return !s.Loading && s.Error == ""
}

func failedToLoad(what string) string {
	return "Failed to load " + what
}

// loader owns one State and applies results in request order: a slower,
// older load never overwrites a newer one.
type loader[T any] struct {
	mu     sync.Mutex
	seq    uint64
	state  State[T]
	loaded bool
}

func (l *loader[T]) snapshot() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// succeeded reports whether the last applied load succeeded with fresh data.
// Data served from the cache does not count.
func (l *loader[T]) succeeded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && !l.state.Stale
}

func (l *loader[T]) set(data T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.state = State[T]{Data: data}
	l.loaded = true
}

// run marks the state loading, calls fetch, and stores its outcome. The raw
// fetch error is returned so callers can react to e.g. an expired session.
func (l *loader[T]) run(ctx context.Context, what string, fetch func(context.Context) (repository.Fetched[T], error)) (State[T], error) {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.state = State[T]{Loading: true}
	l.mu.Unlock()

	res, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return l.state, err
	}
	if err != nil {
		var zero T
		l.state = State[T]{Error: failedToLoad(what), Data: zero}
		l.loaded = false
		return l.state, err
	}
	l.state = State[T]{Data: res.Data, Stale: res.Stale}
	l.loaded = true
	return l.state, nil
}

// fresh adapts a plain fetch to the Fetched shape used by run.
func fresh[T any](fetch func(context.Context) (T, error)) func(context.Context) (repository.Fetched[T], error) {
	return func(ctx context.Context) (repository.Fetched[T], error) {
		v, err := fetch(ctx)
		if err != nil {
			return repository.Fetched[T]{}, err
		}
		return repository.Fetched[T]{Data: v}, nil
	}
}

// deref adapts a pointer-returning fetch.
func deref[T any](fetch func(context.Context) (*T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		v, err := fetch(ctx)
		if err != nil || v == nil {
			var zero T
			return zero, err
		}
		return *v, nil
	}
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
