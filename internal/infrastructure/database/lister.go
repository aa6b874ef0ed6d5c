package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/domain/dto"
)

func (s *Store[T]) List(ctx context.Context, q dto.ListQuery) ([]T, int64, error) {
	q.Normalize()

	filter, err := buildFilter(s.schema, q)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.collection()

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(buildSort(s.schema, q)).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0, q.Limit)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}
