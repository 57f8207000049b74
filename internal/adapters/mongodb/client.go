// Package mongodb implements the repository ports on MongoDB.
// Documents are mapped to domain types at the package boundary; domain code
// never sees bson or driver types.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	collCategorias = "categorias"
	collMemorias   = "memorias"
	collPessoas    = "pessoas"
	collGrupos     = "grupos"
)

// Config configures the MongoDB connection.
type Config struct {
	// URI is the connection string (e.g. "mongodb://localhost:27017").
	URI string

	// Database is the database name.
	Database string

	// ConnectTimeout bounds the initial connection and ping.
	ConnectTimeout time.Duration

	// QueryTimeout bounds individual queries when the caller's context
	// carries no deadline of its own.
	QueryTimeout time.Duration
}

// Client wraps the driver client and the application database.
// It implements ports.HealthChecker.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// Connect establishes the connection and verifies it with a ping.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logger.InfoContext(ctx, "connected to mongodb", slog.String("database", cfg.Database))

	return &Client{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// Database returns the application database handle.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Name identifies this component in health check responses.
func (c *Client) Name() string {
	return "mongodb"
}

// Check reports connection health by pinging the primary.
func (c *Client) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}

	return nil
}

// Disconnect closes the connection. Safe to call during shutdown.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}

	return nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// numeric categoria_id, pessoa nome, and grupo nome.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{collCategorias, mongo.IndexModel{Keys: bson.D{{Key: "categoria_id", Value: 1}}, Options: unique}},
		{collPessoas, mongo.IndexModel{Keys: bson.D{{Key: "nome", Value: 1}}, Options: unique}},
		{collGrupos, mongo.IndexModel{Keys: bson.D{{Key: "nome", Value: 1}}, Options: unique}},
		{collMemorias, mongo.IndexModel{Keys: bson.D{{Key: "categoria_id", Value: 1}}}},
		{collMemorias, mongo.IndexModel{Keys: bson.D{{Key: "pessoa_id", Value: 1}}}},
		{collMemorias, mongo.IndexModel{Keys: bson.D{{Key: "data", Value: -1}}}},
	}

	for _, idx := range indexes {
		if _, err := c.database.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("creating index on %s: %w", idx.collection, err)
		}
	}

	return nil
}
