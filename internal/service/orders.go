package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

var ErrUnknownStatus = errors.New("unknown order status")

type OrderService struct {
	client    *apiclient.Client
	qrEncoder QRGenerator
}

func NewOrderService(client *apiclient.Client, qr QRGenerator) *OrderService {
	return &OrderService{client: client, qrEncoder: qr}
}

func (s *OrderService) Create(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	return apiclient.Call[domain.Order](ctx, s.client, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/orders",
		Body:   req,
		Auth:   true,
	})
}

func (s *OrderService) list(ctx context.Context, path string) ([]domain.Order, error) {
	orders, err := apiclient.Call[[]domain.Order](ctx, s.client, apiclient.Request{
		Method: http.MethodGet,
		Path:   path,
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) Mine(ctx context.Context) ([]domain.Order, error) {
	return s.list(ctx, "/orders/my-orders")
}

func (s *OrderService) RestaurantOrders(ctx context.Context) ([]domain.Order, error) {
	return s.list(ctx, "/orders/restaurant-orders")
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	order, err := apiclient.Call[domain.Order](ctx, s.client, apiclient.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/orders/%d/status", orderID),
		Body:   map[string]domain.OrderStatus{"status": status},
		Auth:   true,
	})
	if err != nil {
		return domain.Order{}, err
	}
	if order.ID == 0 {
		order.ID = orderID
	}
	if order.Status == "" {
		order.Status = status
	}
	return order, nil
}

func (s *OrderService) ReceiptQR(orderID int) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, errors.New("receipt QR disabled")
	}
	return s.qrEncoder.Generate(orderID)
}
