package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/session"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

const testToken = "test-token"

type backend struct {
	server  *httptest.Server
	client  *apiclient.Client
	session *session.Session
	store   *storage.MemoryStore
}

// newBackend starts a fake REST backend and a client logged in against it.
func newBackend(t *testing.T, routes func(r *mux.Router)) *backend {
	t.Helper()

	r := mux.NewRouter()
	routes(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	store := storage.NewMemoryStore()
	sess := session.New(store)
	require.NoError(t, sess.Begin(context.Background(), testToken, domain.User{ID: 1, Email: "an@example.com", Role: domain.UserTypeCustomer}))

	client := apiclient.New(apiclient.Config{BaseURL: server.URL, Timeout: 2 * time.Second}, server.Client(), sess)
	return &backend{server: server, client: client, session: sess, store: store}
}

// offlineBackend returns a client whose backend address refuses connections.
func offlineBackend(t *testing.T) *backend {
	t.Helper()
	b := newBackend(t, func(r *mux.Router) {})
	b.server.Close()
	return b
}

func writeBody(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
