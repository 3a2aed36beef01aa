package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role"`
}

const (
	UserTypeCustomer   = "customer"
	UserTypeRestaurant = "restaurant"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ProfileUpdate struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Dish struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Thumbnail    string          `json:"thumbnail,omitempty"`
	CategoryID   int             `json:"categoryId,omitempty"`
	Category     string          `json:"category,omitempty"`
	RestaurantID int             `json:"restaurantId,omitempty"`
}

type Restaurant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type DashboardStats struct {
	TotalOrders     int             `json:"totalOrders"`
	PendingOrders   int             `json:"pendingOrders"`
	CompletedOrders int             `json:"completedOrders"`
	TotalCustomers  int             `json:"totalCustomers"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

type Revenue struct {
	RestaurantID int             `json:"restaurantId"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type Order struct {
	ID         int             `json:"id"`
	Status     OrderStatus     `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalItems int             `json:"totalItems"`
	Restaurant Restaurant      `json:"restaurant"`
	CreatedAt  time.Time       `json:"created_at"`
	User       User            `json:"user"`
}

type OrderRequest struct {
	CartID          int             `json:"cartId"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Note            string          `json:"note,omitempty"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	TotalItems      int             `json:"totalItems"`
}

type Profile struct {
	User
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}
