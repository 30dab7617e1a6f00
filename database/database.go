// path: database/database.go
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Result caps shared by every list operation.
const (
	maxListResults   = 100
	maxRatingReviews = 1000
)

// Sentinel errors shared by all repositories. Handlers translate these to
// HTTP 400 and 404; everything else surfaces as a server error.
var (
	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("not found")
)

// Config holds the store connection parameters, resolved by the caller.
type Config struct {
	URI    string
	DBName string
}

// DB wraps the mongo client and database handle. It is constructed once at
// process start and injected into the repositories; nothing reads it as
// ambient state.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the document store and verifies the connection with a ping.
func Connect(ctx context.Context, cfg Config) (*DB, error) {
	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(dctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = client.Ping(dctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &DB{client: client, db: client.Database(cfg.DBName)}, nil
}

// Disconnect tears down the connection pool on shutdown.
func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Collection returns a handle to a named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// EnsureIndexes creates the query-path indexes. The saved_locations index is
// deliberately non-unique: save idempotency is enforced in application code,
// and a unique constraint would turn the duplicate no-op into a write error.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	ictx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var errs []string

	if _, err := d.Collection("reviews").Indexes().CreateOne(ictx, mongo.IndexModel{
		Keys: bson.D{{Key: "location_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		errs = append(errs, "reviews location_id,created_at: "+err.Error())
	}
	if _, err := d.Collection("saved_locations").Indexes().CreateOne(ictx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "location_id", Value: 1}},
	}); err != nil {
		errs = append(errs, "saved_locations user_id,location_id: "+err.Error())
	}
	if _, err := d.Collection("locations").Indexes().CreateOne(ictx, mongo.IndexModel{
		Keys: bson.D{{Key: "location_type", Value: 1}},
	}); err != nil {
		errs = append(errs, "locations location_type: "+err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
