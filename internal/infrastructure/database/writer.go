package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/domain/repository/database"
)

func (s *Store[T]) Write(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.collection().InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", database.ErrDuplicate, err)
	}

	return err
}
