// Command seed loads the demo users into the configured backend.
// Postgres inserts skip existing emails; mongo seeding is skipped
// entirely when the collection already has documents.
package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"cartflow/pkg/logger"
	"cartflow/pkg/user"
	userpg "cartflow/pkg/user/postgres"
)

var seedUsers = []user.User{
	{Name: "Alice", Email: "alice@example.com", Age: 42},
	{Name: "Robert", Email: "robert@example.com", Age: 21},
}

func main() {
	log, err := logger.New("cartflow-seed")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	ctx := context.Background()

	switch os.Getenv("DB_BACKEND") {
	case "mongo":
		if err := seedMongo(ctx, log); err != nil {
			log.Error("seed mongo", zap.Error(err))
			os.Exit(1)
		}
	default:
		if err := seedPostgres(ctx, log); err != nil {
			log.Error("seed postgres", zap.Error(err))
			os.Exit(1)
		}
	}
	log.Info("seed complete")
}

func seedPostgres(ctx context.Context, log *zap.Logger) error {
	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := userpg.Bootstrap(ctx, db); err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, u := range seedUsers {
		res, err := db.ExecContext(ctx, `
			INSERT INTO users (id,name,email,age,created_at,updated_at)
			VALUES ($1,$2,$3,$4,$5,$5)
			ON CONFLICT (email) DO NOTHING`,
			uuid.NewString(), u.Name, u.Email, u.Age, now)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			log.Info("user exists, skipped", zap.String("email", u.Email))
		}
	}
	return nil
}

func seedMongo(ctx context.Context, log *zap.Logger) error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	defer cli.Disconnect(ctx)

	col := cli.Database("cartflow").Collection("users")
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info("users already exist, skip seeding", zap.Int64("count", n))
		return nil
	}
	now := time.Now().UTC()
	docs := make([]any, 0, len(seedUsers))
	for _, u := range seedUsers {
		docs = append(docs, bson.M{
			"_id":        uuid.NewString(),
			"name":       u.Name,
			"email":      u.Email,
			"age":        u.Age,
			"created_at": now,
			"updated_at": now,
		})
	}
	_, err = col.InsertMany(ctx, docs)
	return err
}
