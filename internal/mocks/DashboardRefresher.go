package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
)

// DashboardRefresher is a mock type for the events.DashboardRefresher type
type DashboardRefresher struct {
	mock.Mock
}

func (_m *DashboardRefresher) Dashboard(ctx context.Context) fallback.Result[domain.DashboardStats] {
	ret := _m.Called(ctx)
	return ret.Get(0).(fallback.Result[domain.DashboardStats])
}

func NewDashboardRefresher(t testingT) *DashboardRefresher {
	m := &DashboardRefresher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
