package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

// CartAPI is a mock type for the cart.API type
type CartAPI struct {
	mock.Mock
}

func (_m *CartAPI) Get(ctx context.Context) (domain.Cart, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.Cart), ret.Error(1)
}

func (_m *CartAPI) Add(ctx context.Context, dishID int) error {
	ret := _m.Called(ctx, dishID)
	return ret.Error(0)
}

func (_m *CartAPI) Remove(ctx context.Context, dishID int) error {
	ret := _m.Called(ctx, dishID)
	return ret.Error(0)
}

func (_m *CartAPI) UpdateQuantity(ctx context.Context, dishID, qty int) error {
	ret := _m.Called(ctx, dishID, qty)
	return ret.Error(0)
}

func (_m *CartAPI) Clear(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func NewCartAPI(t testingT) *CartAPI {
	m := &CartAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
