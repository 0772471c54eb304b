// Package remote implements the entity repositories on top of the upstream
// API client. Catalog reads are written through to the local cache and served
// from it when the upstream is unreachable.
package remote

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/client"
	"storefront/internal/repository"
)

// fallback runs fetch; on a temporary upstream failure it serves cached data when
// there is any. Cache read errors are logged and the original error returned.
func fallback[T any](
	ctx context.Context,
	log logrus.FieldLogger,
	entity string,
	fetch func(context.Context) (T, error),
	store func(context.Context, T) error,
	cached func(context.Context) (T, bool, error),
) (repository.Fetched[T], error) {
	data, err := fetch(ctx)
	if err == nil {
		if storeErr := store(ctx, data); storeErr != nil {
			log.WithFields(logrus.Fields{"component": "cache", "entity": entity}).
				WithError(storeErr).Warn("cache write failed")
		}
		return repository.Fetched[T]{Data: data}, nil
	}
	if !client.Temporary(err) {
		return repository.Fetched[T]{}, err
	}

	hit, ok, cacheErr := cached(ctx)
	if cacheErr != nil {
		log.WithFields(logrus.Fields{"component": "cache", "entity": entity}).
			WithError(cacheErr).Warn("cache read failed")
		return repository.Fetched[T]{}, err
	}
	if !ok {
		return repository.Fetched[T]{}, err
	}
	log.WithFields(logrus.Fields{"component": "cache", "entity": entity}).
		WithError(err).Info("serving stale data")
	trace.SpanFromContext(ctx).AddEvent("cache.fallback", trace.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("upstream.error", err.Error()),
	))
	return repository.Fetched[T]{Data: hit, Stale: true}, nil
}

// clock is swapped in tests.
var clock = func() time.Time { return time.Now().UTC() }
