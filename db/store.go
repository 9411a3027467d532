// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Initial reference and motivation taken from
// https://gitlab.com/project-emco/core/emco-base/-/blob/main/src/orchestrator/pkg/infra/db

package db

import (
	"context"
)

type StoreCollection interface {
	// inserts one entry with given key and data to the collection
	// returns errors if entry already exists
	InsertOne(ctx context.Context, key any, data any) error

	// inserts or updates one entry with given key and data to the
	// collection, acts based on the flag passed for upsert
	UpdateOne(ctx context.Context, key any, data any, upsert bool) error

	// Find one entry from the store collection for the given key,
	// decoding the stored value into data
	FindOne(ctx context.Context, key any, data any) error

	// Return count of entries matching the provided filter
	Count(ctx context.Context, filter any) (int64, error)

	// remove one entry from the collection matching the given key
	DeleteOne(ctx context.Context, key any) error
}

type Store interface {
	// Gets collection corresponding to the name provided
	GetCollection(name string) StoreCollection

	// Name of the data store
	Name() string
}

type StoreClient interface {
	// Get the Data Store interface given the client interface
	GetDataStore(dbName string) Store

	// Health Check, if the Store is connectable and healthy
	// returns the status of health of the server by means of
	// error if error is nil the health of the DB store can be
	// considered healthy
	HealthCheck(ctx context.Context) error
}
