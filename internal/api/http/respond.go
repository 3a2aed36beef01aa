package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/cart"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/orderflow"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/service"
)

const offlineMessage = "Đang ngoại tuyến, dữ liệu có thể chưa được cập nhật"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, domain.Ok(data))
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), domain.Fail(err))
}

func writeFallback[T any](w http.ResponseWriter, res fallback.Result[T]) {
	result := domain.Ok(res.Data)
	result.Source = string(res.Source)
	if res.Offline() {
		result.Message = offlineMessage
	}
	writeJSON(w, http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cart.ErrNotEditing),
		errors.Is(err, orderflow.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, orderflow.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrQtyOverflow),
		errors.Is(err, service.ErrUnknownStatus):
		return http.StatusBadRequest
	}

	switch apiclient.KindOf(err) {
	case apiclient.KindUnauthorized:
		return http.StatusUnauthorized
	case apiclient.KindNetwork, apiclient.KindCanceled:
		return http.StatusServiceUnavailable
	case apiclient.KindTimeout:
		return http.StatusGatewayTimeout
	case apiclient.KindDecode:
		return http.StatusBadGateway
	case apiclient.KindHTTP:
		if status := apiclient.StatusOf(err); status >= 400 && status < 500 {
			return status
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
