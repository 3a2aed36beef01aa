package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found")

const (
	KeyToken             = "token"
	KeyUserData          = "userData"
	KeyUser              = "user"
	KeyUserType          = "userType"
	KeyCategories        = "categories"
	KeyRestaurantProfile = "restaurantProfile"
	KeyRestaurantDishes  = "restaurantDishes"
	KeyDashboardStats    = "dashboardStats"
	KeyFirstLaunch       = "firstLaunch"
)

type Entry struct {
	Value   []byte
	SavedAt time.Time
}

type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
