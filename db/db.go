package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtroom/apperrors"
)

// extractDBName parses the database name from the URI, defaulting to "user_db"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "user_db"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "user_db"
}

// Connect establishes a connection to MongoDB using the provided URI and
// returns a handle to the database named in it.
func Connect(ctx context.Context, uri string) (*mongo.Database, error) {
	if uri == "" {
		return nil, fmt.Errorf("document store URI: %w", apperrors.ErrConfigMissing)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(extractDBName(uri)), nil
}
