package domain

import "time"

const EventOrderStatusChanged = "order_status_changed"

type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	From         OrderStatus `json:"from"`
	To           OrderStatus `json:"to"`
	Timestamp    time.Time   `json:"timestamp"`
}
