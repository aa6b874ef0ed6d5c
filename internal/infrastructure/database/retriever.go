package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/domain/repository/database"
)

func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.GetBy(ctx, "_id", id)
}

func (s *Store[T]) GetBy(ctx context.Context, field string, value any) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var doc T
	err := s.collection().FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	return &doc, nil
}
