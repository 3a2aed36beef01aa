package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

// StatusAPI is a mock type for the orderflow.StatusAPI type
type StatusAPI struct {
	mock.Mock
}

func (_m *StatusAPI) RestaurantOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *StatusAPI) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (domain.Order, error) {
	ret := _m.Called(ctx, orderID, status)
	return ret.Get(0).(domain.Order), ret.Error(1)
}

func NewStatusAPI(t testingT) *StatusAPI {
	m := &StatusAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
