// Package database owns the MongoDB client lifecycle. The client is built
// once at startup and handed to consumers explicitly; there is no
// package-level connection slot.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	connectAttempts = 5
	initialBackoff  = time.Second
	pingTimeout     = 10 * time.Second
)

// Connect dials MongoDB and verifies the connection with a primary ping,
// retrying with doubling backoff before giving up.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	backoff := initialBackoff
	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := mongo.Connect(opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()
			if err == nil {
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}

		lastErr = err
		if attempt < connectAttempts {
			log.Printf("mongo connect attempt %d/%d failed: %v (retrying in %s)", attempt, connectAttempts, err, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("mongo connect: %w", lastErr)
}

func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
