// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds connection pool and timeout settings for the driver.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration

	// EnableCompression turns on wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-oriented pool settings.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// clientOptions translates the pool configuration into driver options.
func (cfg MongoConfig) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	return opts
}

// MongoDB bundles the client with the collections the service reads and writes.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	BoxCatalogs *mongo.Collection
	Logs        *mongo.Collection
}

// NewMongoDB connects with the default pool configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects to MongoDB, verifies the connection, and
// ensures the indexes the service relies on.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database(databaseName)
	m := &MongoDB{
		Client:      client,
		Database:    database,
		BoxCatalogs: database.Collection("box_catalogs"),
		Logs:        database.Collection("logs"),
	}

	if err := m.createIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// createIndexes builds the query indexes. The active-catalog lookup runs on
// every pack request that uses the stored catalog, so it must never scan.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.BoxCatalogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "active", Value: 1}},
	})
	if err != nil {
		return err
	}

	// Log queries filter by request_id or by level within a time window.
	// Creation errors are ignored when the indexes already exist.
	logIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "level", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
	_, _ = m.Logs.Indexes().CreateMany(ctx, logIndexes)

	// The logs TTL index is managed separately by SetLogsTTL.
	return nil
}

// SetLogsTTL replaces the TTL index on the logs collection so entries expire
// after ttlDays.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	// The old index must be dropped first; expireAfterSeconds cannot be
	// changed in place. A missing index is fine.
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttlDays * 24 * 60 * 60)),
	})
	if err != nil && strings.Contains(err.Error(), "IndexOptionsConflict") {
		return nil
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
