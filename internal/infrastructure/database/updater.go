package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/repository/database"
)

// Update sets fields on the document and returns it as stored afterwards.
func (s *Store[T]) Update(ctx context.Context, id string, fields dto.Fields) (*T, error) {
	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M(fields)})
}

// Increment atomically adds delta to a numeric field.
func (s *Store[T]) Increment(ctx context.Context, id, field string, delta int64) (*T, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$inc": bson.M{field: delta}})
}

func (s *Store[T]) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", database.ErrDuplicate, err)
		}

		return nil, err
	}

	return &doc, nil
}
