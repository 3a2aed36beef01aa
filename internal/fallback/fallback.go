// Package fallback keeps read screens alive offline: live, then cached, then placeholder.
package fallback

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

type Source string

const (
	SourceFresh     Source = "fresh"
	SourceStale     Source = "stale"
	SourceSynthetic Source = "synthetic"
)

type Result[T any] struct {
	Data    T
	Source  Source
	SavedAt time.Time
	Age     time.Duration
	// Cause is the live failure that triggered a degraded result.
	Cause error
}

func (r Result[T]) Offline() bool {
	return r.Source != SourceFresh
}

func (r Result[T]) Trusted() bool {
	return r.Source != SourceSynthetic
}

type Fetcher struct {
	store storage.Store
	now   func() time.Time
}

func NewFetcher(store storage.Store) *Fetcher {
	return &Fetcher{store: store, now: time.Now}
}

type LiveFunc func(ctx context.Context) ([]byte, error)

// Fetch never fails: it returns fresh, cached or placeholder data, in that order.
func Fetch[T any](ctx context.Context, f *Fetcher, key string, live LiveFunc, placeholder func() T) Result[T] {
	body, err := live(ctx)
	if err == nil {
		var data T
		if err = apiclient.Decode(body, &data); err == nil {
			if storeErr := f.store.Set(ctx, key, body); storeErr != nil {
				log.Printf("[fallback] failed to cache %s: %v", key, storeErr)
			}
			return Result[T]{Data: data, Source: SourceFresh, SavedAt: f.now()}
		}
	}
	cause := err

	entry, err := f.store.Get(ctx, key)
	if err == nil {
		var data T
		decodeErr := apiclient.Decode(entry.Value, &data)
		if decodeErr == nil {
			log.Printf("[fallback] serving cached %s: %v", key, cause)
			return Result[T]{
				Data:    data,
				Source:  SourceStale,
				SavedAt: entry.SavedAt,
				Age:     f.now().Sub(entry.SavedAt),
				Cause:   cause,
			}
		}
		log.Printf("[fallback] cached %s unreadable: %v", key, decodeErr)
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("[fallback] cache read %s failed: %v", key, err)
	}

	log.Printf("[fallback] serving placeholder %s: %v", key, cause)
	return Result[T]{Data: placeholder(), Source: SourceSynthetic, Cause: cause}
}
