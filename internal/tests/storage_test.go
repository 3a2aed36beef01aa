package tests

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

func newRedisStore(t *testing.T) (*storage.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisStore(client, "foodapp:"), mr
}

// Both local stores must behave the same for the session and fallback layers.
func TestStores_RoundTrip(t *testing.T) {
	redisStore, _ := newRedisStore(t)

	testCases := []struct {
		name  string
		store storage.Store
	}{
		{name: "memory", store: storage.NewMemoryStore()},
		{name: "redis", store: redisStore},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			before := time.Now().Add(-time.Second)

			_, err := testCase.store.Get(ctx, storage.KeyCategories)
			assert.ErrorIs(t, err, storage.ErrNotFound)

			body := []byte(`{"data":[{"id":1,"name":"Cơm"}]}`)
			require.NoError(t, testCase.store.Set(ctx, storage.KeyCategories, body))

			entry, err := testCase.store.Get(ctx, storage.KeyCategories)
			require.NoError(t, err)
			assert.Equal(t, body, entry.Value)
			assert.True(t, entry.SavedAt.After(before))

			require.NoError(t, testCase.store.Set(ctx, storage.KeyCategories, []byte(`[]`)))
			entry, err = testCase.store.Get(ctx, storage.KeyCategories)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), entry.Value)

			require.NoError(t, testCase.store.Set(ctx, storage.KeyToken, []byte("tok")))
			require.NoError(t, testCase.store.Delete(ctx, storage.KeyCategories, storage.KeyToken))
			_, err = testCase.store.Get(ctx, storage.KeyCategories)
			assert.ErrorIs(t, err, storage.ErrNotFound)
			_, err = testCase.store.Get(ctx, storage.KeyToken)
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, storage.KeyUser, value))
	value[0] = 'x'

	entry, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), entry.Value)
}

func TestRedisStore_UsesPrefix(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Set(ctx, storage.KeyDashboardStats, []byte(`{"totalOrders":3}`)))

	assert.True(t, mr.Exists("foodapp:dashboardStats"))
	assert.Equal(t, `{"totalOrders":3}`, mr.HGet("foodapp:dashboardStats", "value"))
}

func TestPostgresStore_Get(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := storage.NewPostgresStore(db)
	savedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT value, saved_at FROM kv_store WHERE key = $1")).
		WithArgs(storage.KeyCategories).
		WillReturnRows(sqlmock.NewRows([]string{"value", "saved_at"}).AddRow([]byte(`[]`), savedAt))

	entry, err := store.Get(context.Background(), storage.KeyCategories)

	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), entry.Value)
	assert.Equal(t, savedAt, entry.SavedAt)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresStore_GetMissing(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := storage.NewPostgresStore(db)

	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT value, saved_at FROM kv_store WHERE key = $1")).
		WithArgs(storage.KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"value", "saved_at"}))

	_, err = store.Get(context.Background(), storage.KeyToken)

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresStore_SetAndDelete(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := storage.NewPostgresStore(db)

	mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mockDB.ExpectExec("INSERT INTO kv_store").
		WithArgs(storage.KeyToken, []byte("tok"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE key = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.Set(ctx, storage.KeyToken, []byte("tok")))
	require.NoError(t, store.Delete(ctx, storage.KeyToken, storage.KeyUser))
	require.NoError(t, store.Delete(ctx))

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
