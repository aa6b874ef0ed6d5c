package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/pkg/logger"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initCollections(db); err != nil {
		_ = db.Stop()

		return nil, fmt.Errorf("prepare collections: %w", err)
	}

	logger.Info("connected to database", "db", cfg.DBName)

	return db, nil
}

func (db *Database) Collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func initCollections(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	existing, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}

	found := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		found[name] = struct{}{}
	}

	for _, schema := range Schemas() {
		if _, ok := found[schema.Collection]; !ok {
			collOpts := options.CreateCollection()
			if schema.Validator != nil {
				collOpts.SetValidator(schema.Validator)
			}

			if err := db.Client.Database(db.DBName).CreateCollection(ctx, schema.Collection, collOpts); err != nil {
				return fmt.Errorf("create %s: %w", schema.Collection, err)
			}
		}

		if len(schema.Indexes) == 0 {
			continue
		}

		if _, err := db.Collection(schema.Collection).Indexes().CreateMany(ctx, schema.Indexes); err != nil {
			return fmt.Errorf("index %s: %w", schema.Collection, err)
		}
	}

	return nil
}

// Stop disconnects, waiting at most one query timeout for in-flight operations.
func (db *Database) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	return db.Client.Disconnect(ctx)
}
