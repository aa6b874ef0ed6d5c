package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"storefront/internal/domain/repository/database"
)

func (s *Store[T]) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}
