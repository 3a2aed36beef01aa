package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

type CartService struct {
	client *apiclient.Client
}

func NewCartService(client *apiclient.Client) *CartService {
	return &CartService{client: client}
}

func (s *CartService) Get(ctx context.Context) (domain.Cart, error) {
	cart, err := apiclient.Call[domain.Cart](ctx, s.client, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/cart",
		Auth:   true,
	})
	if err != nil {
		return domain.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

func (s *CartService) Add(ctx context.Context, dishID int) error {
	_, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/cart/%d", dishID),
		Body:   map[string]int{"quantity": 1},
		Auth:   true,
	})
	return err
}

func (s *CartService) Remove(ctx context.Context, dishID int) error {
	_, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/cart/%d", dishID),
		Auth:   true,
	})
	return err
}

func (s *CartService) UpdateQuantity(ctx context.Context, dishID, qty int) error {
	_, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/cart/item/%d", dishID),
		Body:   map[string]int{"quantity": qty},
		Auth:   true,
	})
	return err
}

func (s *CartService) Clear(ctx context.Context) error {
	_, err := s.client.Do(ctx, apiclient.Request{
		Method: http.MethodDelete,
		Path:   "/cart",
		Auth:   true,
	})
	return err
}
