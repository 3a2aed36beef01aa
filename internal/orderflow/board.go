package orderflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")
)

type StatusAPI interface {
	RestaurantOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (domain.Order, error)
}

type Publisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type Board struct {
	mu        sync.RWMutex
	api       StatusAPI
	publisher Publisher
	orders    []domain.Order
}

func NewBoard(api StatusAPI, publisher Publisher) *Board {
	return &Board{api: api, publisher: publisher}
}

func (b *Board) Refresh(ctx context.Context) error {
	orders, err := b.api.RestaurantOrders(ctx)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.orders = orders
	b.mu.Unlock()
	return nil
}

func (b *Board) Orders() []domain.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	orders := make([]domain.Order, len(b.orders))
	copy(orders, b.orders)
	return orders
}

func (b *Board) Buckets() Buckets {
	return Partition(b.Orders())
}

func (b *Board) Order(orderID int) (domain.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, o := range b.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (b *Board) Options(orderID int) ([]domain.OrderStatus, error) {
	order, ok := b.Order(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return NextStatuses(order.Status), nil
}

func (b *Board) Advance(ctx context.Context, orderID int, to domain.OrderStatus) (domain.Order, error) {
	current, ok := b.Order(orderID)
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	if !CanTransition(current.Status, to) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}

	updated, err := b.api.UpdateStatus(ctx, orderID, to)
	if err != nil {
		return domain.Order{}, err
	}

	if b.publisher != nil {
		event := domain.OrderEvent{
			Type:         domain.EventOrderStatusChanged,
			OrderID:      orderID,
			RestaurantID: current.Restaurant.ID,
			From:         current.Status,
			To:           updated.Status,
			Timestamp:    time.Now(),
		}
		if err := b.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[orderflow] failed to publish status change of order %d: %v", orderID, err)
		}
	}

	if err := b.Refresh(ctx); err != nil {
		log.Printf("[orderflow] refresh after status change failed: %v", err)
		b.replace(updated)
	}
	return updated, nil
}

func (b *Board) replace(order domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == order.ID {
			merged := b.orders[i]
			merged.Status = order.Status
			b.orders[i] = merged
			return
		}
	}
}
