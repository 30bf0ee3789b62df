package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DialMongo connects and pings so a bad URI fails at startup, not on the
// first request.
func DialMongo(ctx context.Context, mongoURI, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}
	return client, client.Database(dbName), nil
}

// Helper for handlers that want a sane timeout.
func DefaultTimeout() time.Duration { return 10 * time.Second }
