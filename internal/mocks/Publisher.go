package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
)

// Publisher is a mock type for the orderflow.Publisher type
type Publisher struct {
	mock.Mock
}

func (_m *Publisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewPublisher(t testingT) *Publisher {
	m := &Publisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
