package database

import "go.mongodb.org/mongo-driver/mongo"

// Store is the mongo repository for one collection of T documents.
type Store[T any] struct {
	db     *Database
	schema Schema
}

func NewStore[T any](db *Database, schema Schema) *Store[T] {
	return &Store[T]{
		db:     db,
		schema: schema,
	}
}

func (s *Store[T]) collection() *mongo.Collection {
	return s.db.Collection(s.schema.Collection)
}
