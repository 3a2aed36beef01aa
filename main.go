package main

import (
	"context"
	"log"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/config"
	httpapi "github.com/xuandat7/food-delivery-FE-sub000/internal/api/http"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/cart"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/events"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/gateway"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/orderflow"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/service"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/session"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

func initStore(ctx context.Context, cfg config.Config) (storage.Store, func()) {
	switch cfg.StoreDriver {
	case config.StoreRedis:
		client := config.MustInitRedis()
		return storage.NewRedisStore(client, cfg.RedisPrefix), func() { client.Close() }
	case config.StorePostgres:
		db := config.MustInitPostgres()
		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		return store, func() { db.Close() }
	case config.StoreMemory, "":
	default:
		log.Printf("[app-svc] unknown STORE_DRIVER %q, using memory", cfg.StoreDriver)
	}
	return storage.NewMemoryStore(), func() {}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	store, closeStore := initStore(ctx, cfg)
	defer closeStore()

	sess := session.New(store)
	if err := sess.Load(ctx); err != nil {
		log.Printf("[app-svc] failed to restore session: %v", err)
	}
	if first, err := sess.FirstLaunch(ctx); err == nil && first {
		log.Println("[app-svc] first launch")
	}

	httpClient := &http.Client{}
	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
	}, httpClient, sess)
	fetcher := fallback.NewFetcher(store)

	orders := service.NewOrderService(client, service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL})
	stats := service.NewStatisticsService(client, fetcher)

	var publisher orderflow.Publisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrderTopic)
		defer writer.Close()
		publisher = events.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrderTopic, cfg.ConsumerGroup)
		defer reader.Close()
		go events.NewConsumer(reader, stats).Start(ctx)
	}

	userCart := cart.New(service.NewCartService(client))
	sess.OnInvalidate(userCart.Reset)
	if _, ok := sess.Token(); ok {
		if err := userCart.Refresh(ctx); err != nil {
			log.Printf("[app-svc] initial cart load failed: %v", err)
		}
	}

	handler := &httpapi.Handler{
		Auth:    service.NewAuthService(client, sess),
		Users:   service.NewUserService(client, sess, fetcher),
		Catalog: service.NewCatalogService(client, fetcher),
		Orders:  orders,
		Stats:   stats,
		Cart:    userCart,
		Board:   orderflow.NewBoard(orders, publisher),
		Proxy: gateway.New(gateway.Config{
			BackendURL:     cfg.APIBaseURL,
			Prefix:         "/api/backend",
			Timeout:        cfg.RequestTimeout,
			AllowedOrigins: cfg.AllowedOrigins,
		}, httpClient, sess),
	}

	httpapi.StartServer(cfg.ListenAddr, httpapi.NewRouter(handler, cfg.AllowedOrigins))
}
