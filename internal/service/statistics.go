package service

import (
	"context"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

type StatisticsService struct {
	client  *apiclient.Client
	fetcher *fallback.Fetcher
}

func NewStatisticsService(client *apiclient.Client, fetcher *fallback.Fetcher) *StatisticsService {
	return &StatisticsService{client: client, fetcher: fetcher}
}

func (s *StatisticsService) Dashboard(ctx context.Context) fallback.Result[domain.DashboardStats] {
	live := func(ctx context.Context) ([]byte, error) {
		return s.client.Do(ctx, apiclient.Request{
			Method: http.MethodGet,
			Path:   "/statistics/dashboard",
			Auth:   true,
		})
	}
	return fallback.Fetch(ctx, s.fetcher, storage.KeyDashboardStats, live, fallback.PlaceholderDashboard)
}

func (s *StatisticsService) TotalRevenue(ctx context.Context) (domain.Revenue, error) {
	return apiclient.Call[domain.Revenue](ctx, s.client, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/statistics/my-restaurant/total-revenue",
		Auth:   true,
	})
}
