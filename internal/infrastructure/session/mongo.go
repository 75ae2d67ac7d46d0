package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

const (
	sessionCollection = "console_sessions"
	mongoOpTimeout    = 5 * time.Second
)

// MongoBackend keeps one document per browser session:
//
//	{ _id: <session_id>, entries: { <key>: <value> }, updated_at, expires_at }
//
// Expired documents are ignored on read and reaped by a TTL index.
type MongoBackend struct {
	col *mongo.Collection
	ttl time.Duration
	now func() time.Time
}

// NewMongoBackend returns a backend over the console_sessions collection.
// A non-positive ttl disables expiry.
func NewMongoBackend(db *mongo.Database, ttl time.Duration) *MongoBackend {
	return &MongoBackend{col: db.Collection(sessionCollection), ttl: ttl, now: time.Now}
}

// EnsureIndexes creates the TTL index on expires_at.
func (b *MongoBackend) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	_, err := b.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("mongo session index: %w", err)
	}
	return nil
}

// ForSession returns the store of one browser session.
func (b *MongoBackend) ForSession(sessionID string) ports.SessionStore {
	return &mongoStore{backend: b, sessionID: sessionID}
}

// Clear drops every entry of a browser session.
func (b *MongoBackend) Clear(ctx context.Context, sessionID string) (err error) {
	defer func(start time.Time) { observe(BackendMongo, "clear", start, err) }(time.Now())

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	if _, err = b.col.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("mongo session clear: %w", err)
	}
	return nil
}

func (b *MongoBackend) liveFilter(sessionID string) bson.M {
	filter := bson.M{"_id": sessionID}
	if b.ttl > 0 {
		filter["expires_at"] = bson.M{"$gt": b.now().UTC()}
	}
	return filter
}

func (b *MongoBackend) stamp(set bson.M) bson.M {
	now := b.now().UTC()
	set["updated_at"] = now
	if b.ttl > 0 {
		set["expires_at"] = now.Add(b.ttl)
	}
	return set
}

// entryPath returns the dotted field path of key inside the document.
func entryPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, ".\x00") || strings.HasPrefix(key, "$") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSessionKey, key)
	}
	return "entries." + key, nil
}

type mongoSessionDoc struct {
	ID      string            `bson:"_id"`
	Entries map[string]string `bson:"entries"`
}

type mongoStore struct {
	backend   *MongoBackend
	sessionID string
}

func (s *mongoStore) Get(ctx context.Context, key string) (value string, found bool, err error) {
	defer func(start time.Time) { observe(BackendMongo, "get", start, err) }(time.Now())

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	path, err := entryPath(key)
	if err != nil {
		return "", false, err
	}

	var doc mongoSessionDoc
	opts := options.FindOne().SetProjection(bson.M{path: 1})
	err = s.backend.col.FindOne(ctx, s.backend.liveFilter(s.sessionID), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mongo session get %q: %w", key, err)
	}
	value, found = doc.Entries[key]
	return value, found, nil
}

func (s *mongoStore) Set(ctx context.Context, key, value string) (err error) {
	defer func(start time.Time) { observe(BackendMongo, "set", start, err) }(time.Now())

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	path, err := entryPath(key)
	if err != nil {
		return err
	}

	// An expired document not yet reaped must not resurface its old entries.
	if s.backend.ttl > 0 {
		expired := bson.M{"_id": s.sessionID, "expires_at": bson.M{"$lte": s.backend.now().UTC()}}
		if _, err = s.backend.col.DeleteOne(ctx, expired); err != nil {
			return fmt.Errorf("mongo session set %q: %w", key, err)
		}
	}

	update := bson.M{"$set": s.backend.stamp(bson.M{path: value})}
	_, err = s.backend.col.UpdateOne(ctx, bson.M{"_id": s.sessionID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo session set %q: %w", key, err)
	}
	return nil
}

func (s *mongoStore) Remove(ctx context.Context, key string) (err error) {
	defer func(start time.Time) { observe(BackendMongo, "remove", start, err) }(time.Now())

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	path, err := entryPath(key)
	if err != nil {
		return err
	}

	update := bson.M{
		"$unset": bson.M{path: ""},
		"$set":   s.backend.stamp(bson.M{}),
	}
	if _, err = s.backend.col.UpdateOne(ctx, bson.M{"_id": s.sessionID}, update); err != nil {
		return fmt.Errorf("mongo session remove %q: %w", key, err)
	}
	return nil
}
