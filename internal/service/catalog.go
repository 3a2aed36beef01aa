package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

type CatalogService struct {
	client  *apiclient.Client
	fetcher *fallback.Fetcher
}

func NewCatalogService(client *apiclient.Client, fetcher *fallback.Fetcher) *CatalogService {
	return &CatalogService{client: client, fetcher: fetcher}
}

func (s *CatalogService) Categories(ctx context.Context) fallback.Result[[]domain.Category] {
	live := func(ctx context.Context) ([]byte, error) {
		return s.client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/categories/all"})
	}
	return fallback.Fetch(ctx, s.fetcher, storage.KeyCategories, live, fallback.PlaceholderCategories)
}

func (s *CatalogService) RestaurantCategories(ctx context.Context, restaurantID int) ([]domain.Category, error) {
	categories, err := apiclient.Call[[]domain.Category](ctx, s.client, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/categories/restaurant/%d", restaurantID),
		Auth:   true,
	})
	if categories == nil && err == nil {
		categories = []domain.Category{}
	}
	return categories, err
}

func DishesKey(categoryID int) string {
	return storage.KeyRestaurantDishes + ":" + strconv.Itoa(categoryID)
}

func (s *CatalogService) DishesByCategory(ctx context.Context, categoryID int) fallback.Result[[]domain.Dish] {
	live := func(ctx context.Context) ([]byte, error) {
		return s.client.Do(ctx, apiclient.Request{
			Method: http.MethodGet,
			Path:   fmt.Sprintf("/dishes/public-category/%d", categoryID),
		})
	}
	placeholder := func() []domain.Dish {
		return fallback.PlaceholderDishes(categoryID)
	}
	return fallback.Fetch(ctx, s.fetcher, DishesKey(categoryID), live, placeholder)
}
