package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type DashboardRefresher interface {
	Dashboard(ctx context.Context) fallback.Result[domain.DashboardStats]
}

type Consumer struct {
	Reader MessageReader
	Stats  DashboardRefresher
}

func NewConsumer(reader MessageReader, stats DashboardRefresher) *Consumer {
	return &Consumer{Reader: reader, Stats: stats}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[events] starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[events] consumer stopped")
				return
			}
			log.Printf("[events] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[events] error unmarshaling message: %v", err)
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) bool {
	if event.Type != domain.EventOrderStatusChanged {
		return false
	}
	log.Printf("[events] order %d: %s -> %s", event.OrderID, event.From, event.To)

	res := c.Stats.Dashboard(ctx)
	if res.Source != fallback.SourceFresh {
		log.Printf("[events] dashboard refresh degraded to %s: %v", res.Source, res.Cause)
		return false
	}
	return true
}
