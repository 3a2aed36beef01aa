package mocks

import (
	"context"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

// MessageWriter is a mock type for the events.MessageWriter type
type MessageWriter struct {
	mock.Mock
}

func (_m *MessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := []interface{}{ctx}
	for _, msg := range msgs {
		args = append(args, msg)
	}
	ret := _m.Called(args...)
	return ret.Error(0)
}

func NewMessageWriter(t testingT) *MessageWriter {
	m := &MessageWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
