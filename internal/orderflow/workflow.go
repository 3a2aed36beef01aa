package orderflow

import "github.com/xuandat7/food-delivery-FE-sub000/internal/domain"

var (
	processingSet = map[domain.OrderStatus]bool{
		domain.StatusPending:    true,
		domain.StatusConfirmed:  true,
		domain.StatusProcessing: true,
		domain.StatusDelivering: true,
	}
	historySet = map[domain.OrderStatus]bool{
		domain.StatusCompleted: true,
		domain.StatusCancelled: true,
	}
)

// NextStatuses is every later progression step plus cancellation; terminal statuses get none.
func NextStatuses(s domain.OrderStatus) []domain.OrderStatus {
	if !processingSet[s] {
		return nil
	}
	var next []domain.OrderStatus
	seen := false
	for _, step := range domain.Progression {
		if seen {
			next = append(next, step)
		}
		if step == s {
			seen = true
		}
	}
	return append(next, domain.StatusCancelled)
}

func CanTransition(from, to domain.OrderStatus) bool {
	for _, s := range NextStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}

type Buckets struct {
	Processing []domain.Order `json:"processing"`
	History    []domain.Order `json:"history"`
	// Other holds orders whose status is in neither list.
	Other []domain.Order `json:"other,omitempty"`
}

// Partition splits orders into the "Đang xử lý" and "Lịch sử" tabs, keeping input order.
func Partition(orders []domain.Order) Buckets {
	b := Buckets{
		Processing: []domain.Order{},
		History:    []domain.Order{},
	}
	for _, o := range orders {
		switch {
		case processingSet[o.Status]:
			b.Processing = append(b.Processing, o)
		case historySet[o.Status]:
			b.History = append(b.History, o)
		default:
			b.Other = append(b.Other, o)
		}
	}
	return b
}
