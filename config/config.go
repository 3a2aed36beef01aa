package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type Config struct {
	APIBaseURL     string
	ListenAddr     string
	RequestTimeout time.Duration
	StoreDriver    string
	RedisPrefix    string
	KafkaBroker    string
	OrderTopic     string
	ConsumerGroup  string
	QRBaseURL      string
	AllowedOrigins []string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using environment variables")
	}

	timeout, err := time.ParseDuration(GetEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		log.Printf("Invalid REQUEST_TIMEOUT, using 10s")
		timeout = 10 * time.Second
	}

	return Config{
		APIBaseURL:     GetEnv("API_BASE_URL", "http://localhost:3000"),
		ListenAddr:     GetEnv("LISTEN_ADDR", ":8090"),
		RequestTimeout: timeout,
		StoreDriver:    GetEnv("STORE_DRIVER", StoreMemory),
		RedisPrefix:    GetEnv("REDIS_PREFIX", "foodapp:"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		OrderTopic:     GetEnv("ORDER_EVENTS_TOPIC", "order-events"),
		ConsumerGroup:  GetEnv("ORDER_EVENTS_GROUP", "app-svc"),
		QRBaseURL:      GetEnv("QR_BASE_URL", "http://localhost:8090"),
		AllowedOrigins: splitList(GetEnv("ALLOWED_ORIGINS", "http://localhost:8090,http://127.0.0.1:8090")),
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}
