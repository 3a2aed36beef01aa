package fallback

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

const placeholderImageURL = "https://picsum.photos/seed/%s-%d/300/300"

func PlaceholderImage(kind string, id int) string {
	return fmt.Sprintf(placeholderImageURL, kind, id)
}

func PlaceholderCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Tất cả"},
		{ID: 2, Name: "Cơm"},
		{ID: 3, Name: "Bún - Phở"},
		{ID: 4, Name: "Đồ uống"},
	}
}

func PlaceholderDishes(categoryID int) []domain.Dish {
	names := []string{"Cơm tấm sườn", "Phở bò", "Bún chả", "Trà đào"}
	prices := []int64{45000, 50000, 40000, 25000}

	dishes := make([]domain.Dish, 0, len(names))
	for i, name := range names {
		id := i + 1
		dishes = append(dishes, domain.Dish{
			ID:         id,
			Name:       name,
			Price:      decimal.NewFromInt(prices[i]),
			Thumbnail:  PlaceholderImage("dish", id),
			CategoryID: categoryID,
		})
	}
	return dishes
}

func PlaceholderRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:          0,
		Name:        "Nhà hàng",
		Address:     "Chưa có địa chỉ",
		Description: "Không thể tải thông tin nhà hàng",
		Image:       PlaceholderImage("restaurant", 0),
	}
}

func PlaceholderDashboard() domain.DashboardStats {
	return domain.DashboardStats{TotalRevenue: decimal.Zero}
}
