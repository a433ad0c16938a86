package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"cartflow/pkg/cart/storage"
	"cartflow/pkg/catalog"
	"cartflow/pkg/events"
	"cartflow/pkg/logger"
	"cartflow/pkg/metrics"
	"cartflow/pkg/order"
	ordermemory "cartflow/pkg/order/memory"
	ordermongo "cartflow/pkg/order/mongo"
	orderpg "cartflow/pkg/order/postgres"
	"cartflow/pkg/otel"
	"cartflow/pkg/user"
	usermemory "cartflow/pkg/user/memory"
	usermongo "cartflow/pkg/user/mongo"
	userpg "cartflow/pkg/user/postgres"
)

var (
	cat         *catalog.Catalog
	repo        order.Repository
	users       user.Repository
	cartStorage *storage.Redis
	publisher   *events.Publisher
	m           *metrics.ServerMetrics
	log         *zap.Logger
	tracer      trace.Tracer
)

// @title Cartflow API
// @version 1.0
// @description Shop demo API: order creation, catalog and user lookups
// @host localhost:8080
// @BasePath /
func main() {
	var err error
	log, err = logger.New("cartflow-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	ctx := context.Background()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "cartflow",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		log.Error("init tracing", zap.Error(err))
		return
	}
	defer shutdown(ctx)
	tracer = tp.Tracer("cartflow")

	cat = catalog.Default()

	// Postgres and Mongo are interchangeable backends; memory keeps the
	// binary runnable with no infrastructure.
	switch os.Getenv("DB_BACKEND") {
	case "postgres":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			log.Error("db connect", zap.Error(err))
			os.Exit(1)
		}
		if err := orderpg.Bootstrap(ctx, db); err != nil {
			log.Error("bootstrap orders", zap.Error(err))
			os.Exit(1)
		}
		if err := userpg.Bootstrap(ctx, db); err != nil {
			log.Error("bootstrap users", zap.Error(err))
			os.Exit(1)
		}
		repo = orderpg.New(db)
		users = userpg.New(db)
	case "mongo":
		cli, err := mongo.Connect(ctx, options.Client().ApplyURI(getenv("MONGO_URI", "mongodb://localhost:27017")))
		if err != nil {
			log.Error("mongo connect", zap.Error(err))
			os.Exit(1)
		}
		defer cli.Disconnect(ctx)
		db := cli.Database("cartflow")
		repo = ordermongo.New(db)
		users = usermongo.New(db)
	default:
		repo = ordermemory.New()
		users = usermemory.New(demoUsers()...)
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cartStorage = storage.NewRedis(redis.NewClient(&redis.Options{Addr: addr}))
	}

	publisher = events.NewPublisher(os.Getenv("KAFKA_BROKERS"))
	defer publisher.Close()
	if publisher.Enabled() {
		log.Info("order events enabled", zap.String("topic", events.Topic))
	}

	m = metrics.NewServerMetrics("api")

	r := newRouter()
	addr := getenv("ADDR", ":8080")
	log.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("server closed", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func demoUsers() []user.User {
	return []user.User{
		{ID: "1", Name: "Alice", Email: "alice@example.com", Age: 42},
		{ID: "2", Name: "Robert", Email: "robert@example.com", Age: 21},
	}
}
