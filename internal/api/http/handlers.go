package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/cart"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/orderflow"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/service"
)

var errBadID = errors.New("invalid id")

type Handler struct {
	Auth    service.AuthServiceInterface
	Users   service.UserServiceInterface
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Stats   service.StatisticsServiceInterface
	Cart    *cart.Cart
	Board   *orderflow.Board
	Proxy   http.Handler
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profile/{id}", h.updateProfile).Methods("PATCH")
	r.HandleFunc("/api/restaurant/profile", h.getRestaurantProfile).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories/{categoryId}/dishes", h.getCategoryDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.getRestaurantCategories).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/params", h.applyCartParams).Methods("POST")
	r.HandleFunc("/api/cart/refresh", h.refreshCart).Methods("POST")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{dishId}", h.changeCartItemQty).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/editing", h.setCartEditing).Methods("PUT")
	r.HandleFunc("/api/cart/editing/done", h.doneEditing).Methods("POST")
	r.HandleFunc("/api/cart/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders/mine", h.getMyOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/restaurant/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurant/orders/{id}/options", h.getStatusOptions).Methods("GET")
	r.HandleFunc("/api/restaurant/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")

	r.HandleFunc("/api/statistics/dashboard", h.getDashboard).Methods("GET")
	r.HandleFunc("/api/statistics/revenue", h.getRevenue).Methods("GET")

	if h.Proxy != nil {
		r.PathPrefix("/api/backend/").Handler(h.Proxy)
	}
}

func pathInt(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, domain.Result{Success: false, Message: message, ErrorKind: "validation"})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "app-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	if creds.Email == "" || creds.Password == "" {
		badRequest(w, "email and password are required")
		return
	}
	auth, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		writeError(w, err)
		return
	}
	if h.Cart != nil {
		if err := h.Cart.Refresh(r.Context()); err != nil {
			log.Printf("[app-svc] cart load after login failed: %v", err)
		}
	}
	writeOK(w, auth)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	user, err := h.Auth.Register(r.Context(), reg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.Ok(user))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	if h.Cart != nil {
		h.Cart.Reset()
	}
	writeOK(w, nil)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Users.Profile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var patch domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	user, err := h.Users.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, user)
}

func (h *Handler) getRestaurantProfile(w http.ResponseWriter, r *http.Request) {
	writeFallback(w, h.Users.RestaurantProfile(r.Context()))
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeFallback(w, h.Catalog.Categories(r.Context()))
}

func (h *Handler) getCategoryDishes(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathInt(r, "categoryId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeFallback(w, h.Catalog.DishesByCategory(r.Context(), categoryID))
}

func (h *Handler) getRestaurantCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathInt(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	categories, err := h.Catalog.RestaurantCategories(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, categories)
}

type cartView struct {
	CartID  int               `json:"cartId"`
	Items   []domain.CartItem `json:"items"`
	Total   decimal.Decimal   `json:"total"`
	Count   int               `json:"count"`
	Editing bool              `json:"editing"`
}

func (h *Handler) cartView() cartView {
	snapshot := h.Cart.Snapshot()
	return cartView{
		CartID:  snapshot.CartID,
		Items:   snapshot.Items,
		Total:   snapshot.Total(),
		Count:   snapshot.Count(),
		Editing: h.Cart.Editing(),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeOK(w, h.cartView())
}

func (h *Handler) refreshCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.cartView())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.cartView())
}

func (h *Handler) applyCartParams(w http.ResponseWriter, r *http.Request) {
	var params cart.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Cart.ApplyParams(r.Context(), params); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.cartView())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	if item.ID <= 0 {
		badRequest(w, "dish id is required")
		return
	}
	if _, err := h.Cart.Add(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.cartView())
}

func (h *Handler) changeCartItemQty(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathInt(r, "dishId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var body struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	if _, err := h.Cart.ChangeQty(dishID, body.Delta); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.cartView())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathInt(r, "dishId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.Cart.Remove(r.Context(), dishID); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.cartView())
}

func (h *Handler) setCartEditing(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Editing bool `json:"editing"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	h.Cart.SetEditing(body.Editing)
	writeOK(w, h.cartView())
}

func (h *Handler) doneEditing(w http.ResponseWriter, r *http.Request) {
	batch := h.Cart.DoneEditing(r.Context())
	result := domain.Ok(map[string]interface{}{
		"cart":  h.cartView(),
		"batch": batch,
	})
	if !batch.OK() {
		result.Message = strconv.Itoa(batch.Failed) + " món chưa được cập nhật số lượng"
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "Invalid JSON format: "+err.Error())
			return
		}
	}
	order, err := h.Cart.Checkout(r.Context(), h.Orders, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.Ok(order))
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.Mine(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathInt(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	qrCode, err := h.Orders.ReceiptQR(orderID)
	if err != nil || len(qrCode) == 0 {
		http.Error(w, "QR code not available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.Board.Buckets())
}

func (h *Handler) getStatusOptions(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathInt(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	options, err := h.Board.Options(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if options == nil {
		options = []domain.OrderStatus{}
	}
	writeOK(w, options)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathInt(r, "id")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "Invalid JSON format: "+err.Error())
		return
	}
	if _, err := h.Board.Advance(r.Context(), orderID, body.Status); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, h.Board.Buckets())
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	writeFallback(w, h.Stats.Dashboard(r.Context()))
}

func (h *Handler) getRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.Stats.TotalRevenue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, revenue)
}
