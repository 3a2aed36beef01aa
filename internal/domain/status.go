package domain

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

var Progression = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusDelivering,
	StatusCompleted,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusDelivering, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Chờ xác nhận"
	case StatusConfirmed:
		return "Đã xác nhận"
	case StatusProcessing:
		return "Đang chuẩn bị"
	case StatusDelivering:
		return "Đang giao"
	case StatusCompleted:
		return "Hoàn thành"
	case StatusCancelled:
		return "Đã hủy"
	}
	return string(s)
}
