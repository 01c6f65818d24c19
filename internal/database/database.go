package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/bodyai/backend/config"
)

// ErrMissingMongoURL is returned when no connection string is configured.
var ErrMissingMongoURL = errors.New("database: MONGODB_URL environment variable is not set")

// defaultDatabase is used when the connection string carries no path component.
const defaultDatabase = "body_ai"

// Database wraps a single MongoDB client shared by all repositories. It is
// created once at startup, passed by reference, and closed at shutdown; the
// driver handles its own internal connection pooling, so one handle is safe
// for concurrent use by many in-flight requests.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping. The
// database name is derived from the connection string's path, falling back to
// "body_ai" when absent.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Database, error) {
	if cfg.MongoURL == "" {
		return nil, ErrMissingMongoURL
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	name := DatabaseName(cfg.MongoURL)
	logger.Info("connected to MongoDB", zap.String("database", name))

	return &Database{
		client: client,
		db:     client.Database(name),
	}, nil
}

// DatabaseName extracts the database name from a MongoDB connection string.
func DatabaseName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultDatabase
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return defaultDatabase
	}
	return name
}

// Collection returns a handle to the named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// HealthCheck checks if the database is reachable.
func (d *Database) HealthCheck(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close releases the client. Safe to call once at shutdown.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
