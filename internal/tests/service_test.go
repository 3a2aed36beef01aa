package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/mocks"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/service"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

func TestAuthService_LoginStartsSession(t *testing.T) {
	var gotCreds domain.Credentials
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotCreds)
			assert.Empty(t, r.Header.Get("Authorization"))
			writeBody(w, http.StatusOK, map[string]interface{}{
				"token": "fresh-token",
				"user":  map[string]interface{}{"id": 2, "email": "bep@example.com", "role": "restaurant"},
			})
		}).Methods("POST")
	})
	auth := service.NewAuthService(b.client, b.session)

	res, err := auth.Login(context.Background(), domain.Credentials{Email: "bep@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "bep@example.com", gotCreds.Email)
	assert.Equal(t, 2, res.User.ID)
	token, ok := b.session.Token()
	assert.True(t, ok)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, domain.UserTypeRestaurant, b.session.UserType())
}

func TestAuthService_LoginWithoutToken(t *testing.T) {
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, http.StatusOK, map[string]interface{}{"user": map[string]interface{}{"id": 2}})
		})
	})

	_, err := service.NewAuthService(b.client, b.session).Login(context.Background(), domain.Credentials{})

	assert.ErrorIs(t, err, service.ErrMissingToken)
	token, _ := b.session.Token()
	assert.Equal(t, testToken, token)
}

func TestAuthService_RegisterDefaultsRole(t *testing.T) {
	var got domain.Registration
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			writeBody(w, http.StatusCreated, map[string]interface{}{"id": 3, "email": got.Email, "role": got.Role})
		})
	})

	user, err := service.NewAuthService(b.client, b.session).Register(context.Background(), domain.Registration{Email: "moi@example.com"})

	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeCustomer, got.Role)
	assert.Equal(t, 3, user.ID)
}

func TestAuthService_Logout(t *testing.T) {
	b := newBackend(t, func(r *mux.Router) {})

	require.NoError(t, service.NewAuthService(b.client, b.session).Logout(context.Background()))

	_, ok := b.session.Token()
	assert.False(t, ok)
}

func TestUserService_UpdateRefreshesSessionUser(t *testing.T) {
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
			var patch domain.ProfileUpdate
			json.NewDecoder(r.Body).Decode(&patch)
			writeBody(w, http.StatusOK, map[string]interface{}{
				"data": map[string]interface{}{"id": 1, "email": "an@example.com", "fullName": *patch.FullName},
			})
		}).Methods("PATCH")
	})
	users := service.NewUserService(b.client, b.session, fallback.NewFetcher(b.store))
	name := "An Trần"

	user, err := users.Update(context.Background(), 1, domain.ProfileUpdate{FullName: &name})

	require.NoError(t, err)
	assert.Equal(t, name, user.FullName)
	current, _ := b.session.User()
	assert.Equal(t, name, current.FullName)
}

func TestUserService_RestaurantProfileOffline(t *testing.T) {
	b := offlineBackend(t)
	users := service.NewUserService(b.client, b.session, fallback.NewFetcher(b.store))

	res := users.RestaurantProfile(context.Background())

	assert.Equal(t, fallback.SourceSynthetic, res.Source)
	require.NotNil(t, res.Data.Restaurant)
	assert.Equal(t, fallback.PlaceholderRestaurant().Name, res.Data.Restaurant.Name)
}

func TestUserService_RestaurantProfileCached(t *testing.T) {
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/users/profile", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, http.StatusOK, map[string]interface{}{
				"id":         2,
				"role":       "restaurant",
				"restaurant": map[string]interface{}{"id": 3, "name": "Quán Ngon", "address": "1 Hàng Bài"},
			})
		})
	})
	users := service.NewUserService(b.client, b.session, fallback.NewFetcher(b.store))

	res := users.RestaurantProfile(context.Background())

	require.Equal(t, fallback.SourceFresh, res.Source)
	assert.Equal(t, "Quán Ngon", res.Data.Restaurant.Name)
	_, err := b.store.Get(context.Background(), storage.KeyRestaurantProfile)
	assert.NoError(t, err)
}

func TestCartService_Requests(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call
	b := newBackend(t, func(r *mux.Router) {
		r.PathPrefix("/cart").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			encoded, _ := json.Marshal(body)
			calls = append(calls, call{method: r.Method, path: r.URL.Path, body: string(encoded)})
			if r.Method == http.MethodGet {
				writeBody(w, http.StatusOK, map[string]interface{}{"cartId": 4})
				return
			}
			writeBody(w, http.StatusOK, map[string]interface{}{"message": "ok"})
		})
	})
	carts := service.NewCartService(b.client)
	ctx := context.Background()

	got, err := carts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got.CartID)
	assert.NotNil(t, got.Items)
	require.NoError(t, carts.Add(ctx, 7))
	require.NoError(t, carts.UpdateQuantity(ctx, 7, 3))
	require.NoError(t, carts.Remove(ctx, 7))
	require.NoError(t, carts.Clear(ctx))

	assert.Equal(t, []call{
		{method: http.MethodGet, path: "/cart", body: "null"},
		{method: http.MethodPost, path: "/cart/7", body: `{"quantity":1}`},
		{method: http.MethodPatch, path: "/cart/item/7", body: `{"quantity":3}`},
		{method: http.MethodDelete, path: "/cart/7", body: "null"},
		{method: http.MethodDelete, path: "/cart", body: "null"},
	}, calls)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	var gotStatus string
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			gotStatus = body["status"]
			writeBody(w, http.StatusOK, map[string]interface{}{"message": "updated"})
		}).Methods("PATCH")
	})
	orders := service.NewOrderService(b.client, nil)

	order, err := orders.UpdateStatus(context.Background(), 12, domain.StatusDelivering)

	require.NoError(t, err)
	assert.Equal(t, "delivering", gotStatus)
	assert.Equal(t, 12, order.ID)
	assert.Equal(t, domain.StatusDelivering, order.Status)
}

func TestOrderService_UpdateStatusUnknown(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	client := apiclient.New(apiclient.Config{BaseURL: "http://backend"}, httpClient, nil)

	_, err := service.NewOrderService(client, nil).UpdateStatus(context.Background(), 1, "shipped")

	assert.ErrorIs(t, err, service.ErrUnknownStatus)
}

func TestOrderService_ListsNeverNil(t *testing.T) {
	b := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/orders/my-orders", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, http.StatusOK, map[string]interface{}{"data": nil})
		})
		r.HandleFunc("/orders/restaurant-orders", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, http.StatusOK, []map[string]interface{}{{"id": 1, "status": "pending", "total_price": "45000"}})
		})
	})
	orders := service.NewOrderService(b.client, nil)

	mine, err := orders.Mine(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)

	restaurant, err := orders.RestaurantOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurant, 1)
	assert.Equal(t, "45000", restaurant[0].TotalPrice.String())
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "https://food.example"}

	assert.Equal(t, "https://food.example/orders/15/track", gen.Link(15))
	png, err := gen.Generate(15)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestOrderService_ReceiptQR(t *testing.T) {
	qr := mocks.NewQRGenerator(t)
	qr.On("Generate", 15).Return([]byte("png"), nil).Once()
	b := newBackend(t, func(r *mux.Router) {})

	got, err := service.NewOrderService(b.client, qr).ReceiptQR(15)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), got)

	_, err = service.NewOrderService(b.client, nil).ReceiptQR(15)
	assert.Error(t, err)
}
