// Package mongodb provides the MongoDB client used by the admin tools.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/pollwise/admin-tools/internal/config"
)

// Connect opens a client configured from MongoConfig and returns it together
// with the default database of the connection string. Server selection is
// bounded by cfg.ServerSelectionTimeout so an unreachable host fails fast
// instead of hanging. The database is pinged for fail-fast validation.
//
// The caller owns the client and must Disconnect it on every exit path.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	name, err := DefaultDatabase(cfg.URI)
	if err != nil {
		return nil, nil, err
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping: %w", err)
	}

	return client, client.Database(name), nil
}

// DefaultDatabase extracts the default database name from a connection string.
// A connection string without a database path is rejected: the tools never
// hardcode a database name.
func DefaultDatabase(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("parse connection string: %w", err)
	}
	// Never echo the URI itself: it may embed credentials.
	if cs.Database == "" {
		return "", fmt.Errorf("connection string has no default database")
	}
	return cs.Database, nil
}
