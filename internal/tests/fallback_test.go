package tests

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/service"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

var errOffline = &apiclient.Error{Kind: apiclient.KindNetwork, Message: "network unavailable"}

func liveBody(body string) fallback.LiveFunc {
	return func(ctx context.Context) ([]byte, error) { return []byte(body), nil }
}

func liveError(err error) fallback.LiveFunc {
	return func(ctx context.Context) ([]byte, error) { return nil, err }
}

func TestFetch_FreshWritesExactBody(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	fetcher := fallback.NewFetcher(store)
	body := `{"data":[{"id":5,"name":"Lẩu"}]}`

	res := fallback.Fetch(ctx, fetcher, storage.KeyCategories, liveBody(body), fallback.PlaceholderCategories)

	assert.Equal(t, fallback.SourceFresh, res.Source)
	assert.False(t, res.Offline())
	assert.Equal(t, []domain.Category{{ID: 5, Name: "Lẩu"}}, res.Data)
	entry, err := store.Get(ctx, storage.KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, []byte(body), entry.Value)
}

func TestFetch_StaleCacheOnFailure(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	fetcher := fallback.NewFetcher(store)
	require.NoError(t, store.Set(ctx, storage.KeyCategories, []byte(`[{"id":2,"name":"Cơm"}]`)))

	res := fallback.Fetch(ctx, fetcher, storage.KeyCategories, liveError(errOffline), fallback.PlaceholderCategories)

	assert.Equal(t, fallback.SourceStale, res.Source)
	assert.True(t, res.Offline())
	assert.True(t, res.Trusted())
	assert.Equal(t, []domain.Category{{ID: 2, Name: "Cơm"}}, res.Data)
	assert.GreaterOrEqual(t, int64(res.Age), int64(0))
	assert.False(t, res.SavedAt.IsZero())
	assert.True(t, errors.Is(res.Cause, errOffline))
}

func TestFetch_MalformedLiveKeepsCache(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	fetcher := fallback.NewFetcher(store)
	cached := []byte(`[{"id":2,"name":"Cơm"}]`)
	require.NoError(t, store.Set(ctx, storage.KeyCategories, cached))

	res := fallback.Fetch(ctx, fetcher, storage.KeyCategories, liveBody(`{"data":"oops"}`), fallback.PlaceholderCategories)

	assert.Equal(t, fallback.SourceStale, res.Source)
	assert.Equal(t, apiclient.KindDecode, apiclient.KindOf(res.Cause))
	entry, err := store.Get(ctx, storage.KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, cached, entry.Value)
}

func TestFetch_PlaceholderWhenNothingCached(t *testing.T) {
	testCases := []struct {
		name   string
		cached []byte
	}{
		{name: "empty cache"},
		{name: "unreadable cache", cached: []byte(`not json`)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()
			if testCase.cached != nil {
				require.NoError(t, store.Set(ctx, storage.KeyCategories, testCase.cached))
			}
			fetcher := fallback.NewFetcher(store)

			res := fallback.Fetch(ctx, fetcher, storage.KeyCategories, liveError(errOffline), fallback.PlaceholderCategories)

			assert.Equal(t, fallback.SourceSynthetic, res.Source)
			assert.False(t, res.Trusted())
			assert.Equal(t, fallback.PlaceholderCategories(), res.Data)
		})
	}
}

// A first launch with no network still yields the four default categories.
func TestCatalog_OfflineFirstLaunch(t *testing.T) {
	b := offlineBackend(t)
	catalog := service.NewCatalogService(b.client, fallback.NewFetcher(b.store))

	res := catalog.Categories(context.Background())

	assert.Equal(t, fallback.SourceSynthetic, res.Source)
	require.Len(t, res.Data, 4)
	assert.Equal(t, domain.Category{ID: 1, Name: "Tất cả"}, res.Data[0])
	assert.True(t, apiclient.IsOffline(res.Cause))
}

func TestCatalog_DishesCachedPerCategory(t *testing.T) {
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/dishes/public-category/{id}", func(w http.ResponseWriter, r *http.Request) {
			if mux.Vars(r)["id"] != "3" {
				writeBody(w, http.StatusInternalServerError, map[string]interface{}{"message": "boom"})
				return
			}
			writeBody(w, http.StatusOK, map[string]interface{}{
				"data": []map[string]interface{}{{"id": 11, "name": "Phở bò", "price": 50000}},
			})
		})
	})
	catalog := service.NewCatalogService(b.client, fallback.NewFetcher(b.store))
	ctx := context.Background()

	res := catalog.DishesByCategory(ctx, 3)
	require.Equal(t, fallback.SourceFresh, res.Source)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "50000", res.Data[0].Price.String())

	_, err := b.store.Get(ctx, service.DishesKey(3))
	assert.NoError(t, err)

	other := catalog.DishesByCategory(ctx, 4)
	assert.Equal(t, fallback.SourceSynthetic, other.Source)
	for _, dish := range other.Data {
		assert.Equal(t, 4, dish.CategoryID)
		assert.NotEmpty(t, dish.Thumbnail)
	}
}

func TestStatistics_DashboardFallsBackToLastGood(t *testing.T) {
	var down atomic.Bool
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/statistics/dashboard", func(w http.ResponseWriter, r *http.Request) {
			if down.Load() {
				writeBody(w, http.StatusServiceUnavailable, map[string]interface{}{"message": "down"})
				return
			}
			writeBody(w, http.StatusOK, map[string]interface{}{"totalOrders": 7, "totalRevenue": "350000"})
		})
	})
	stats := service.NewStatisticsService(b.client, fallback.NewFetcher(b.store))
	ctx := context.Background()

	fresh := stats.Dashboard(ctx)
	require.Equal(t, fallback.SourceFresh, fresh.Source)
	assert.Equal(t, 7, fresh.Data.TotalOrders)

	down.Store(true)
	stale := stats.Dashboard(ctx)
	assert.Equal(t, fallback.SourceStale, stale.Source)
	assert.Equal(t, 7, stale.Data.TotalOrders)
	assert.Equal(t, "350000", stale.Data.TotalRevenue.String())
	assert.Equal(t, http.StatusServiceUnavailable, apiclient.StatusOf(stale.Cause))
}
