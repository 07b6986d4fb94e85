package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prana-g/livestock-api/internal/api/metrics"
	"github.com/prana-g/livestock-api/internal/core/domain"
)

const kvCollection = "kv_store"

// KVStore implements ports.Store on a single MongoDB collection. The store
// key is the document _id, so point lookups ride the mandatory _id index and
// prefix enumeration is an anchored regex scan over the same index.
type KVStore struct {
	coll *mongo.Collection
}

func NewKVStore(db *mongo.Database) *KVStore {
	return &KVStore{coll: db.Collection(kvCollection)}
}

type kvDocument struct {
	Key       string `bson:"_id"`
	Value     string `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *KVStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	defer observe("get")()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return json.RawMessage(doc.Value), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value any) error {
	defer observe("set")()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set: marshal %s: %w", key, err)
	}

	doc := kvDocument{Key: key, Value: string(data), UpdatedAt: time.Now().Unix()}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *KVStore) Del(ctx context.Context, key string) error {
	defer observe("del")()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// DeleteOne on an absent key matches zero documents; deletion stays idempotent.
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("kv del: %w", err)
	}
	return nil
}

func (s *KVStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	defer observe("get_by_prefix")()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("kv prefix scan: %w", err)
	}
	defer cursor.Close(ctx)

	var values []json.RawMessage
	for cursor.Next(ctx) {
		var doc kvDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("kv prefix scan: decode: %w", err)
		}
		values = append(values, json.RawMessage(doc.Value))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("kv prefix scan: %w", err)
	}
	return values, nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

func observe(op string) func() {
	start := time.Now()
	return func() {
		metrics.StoreOpDuration.WithLabelValues(op, "mongo").Observe(time.Since(start).Seconds())
	}
}
