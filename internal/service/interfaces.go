package service

import (
	"context"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResponse, error)
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	Logout(ctx context.Context) error
}

type UserServiceInterface interface {
	Profile(ctx context.Context) (domain.Profile, error)
	RestaurantProfile(ctx context.Context) fallback.Result[domain.Profile]
	Update(ctx context.Context, userID int, patch domain.ProfileUpdate) (domain.User, error)
}

type CatalogServiceInterface interface {
	Categories(ctx context.Context) fallback.Result[[]domain.Category]
	RestaurantCategories(ctx context.Context, restaurantID int) ([]domain.Category, error)
	DishesByCategory(ctx context.Context, categoryID int) fallback.Result[[]domain.Dish]
}

type CartServiceInterface interface {
	Get(ctx context.Context) (domain.Cart, error)
	Add(ctx context.Context, dishID int) error
	Remove(ctx context.Context, dishID int) error
	UpdateQuantity(ctx context.Context, dishID, qty int) error
	Clear(ctx context.Context) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
	Mine(ctx context.Context) ([]domain.Order, error)
	RestaurantOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (domain.Order, error)
	ReceiptQR(orderID int) ([]byte, error)
}

type StatisticsServiceInterface interface {
	Dashboard(ctx context.Context) fallback.Result[domain.DashboardStats]
	TotalRevenue(ctx context.Context) (domain.Revenue, error)
}

var (
	_ AuthServiceInterface       = (*AuthService)(nil)
	_ UserServiceInterface       = (*UserService)(nil)
	_ CatalogServiceInterface    = (*CatalogService)(nil)
	_ CartServiceInterface       = (*CartService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ StatisticsServiceInterface = (*StatisticsService)(nil)
)
