package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

// OrderCreator is a mock type for the cart.OrderCreator type
type OrderCreator struct {
	mock.Mock
}

func (_m *OrderCreator) Create(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(domain.Order), ret.Error(1)
}

func NewOrderCreator(t testingT) *OrderCreator {
	m := &OrderCreator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
