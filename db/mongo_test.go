// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package db

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/go-core-stack/embedcore/errors"
)

func Test_MongoConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		config := &MongoConfig{}
		if err := config.validate(); err != nil {
			t.Fatalf("unexpected validation error: %s", err)
		}
		if config.uri() != "mongodb://localhost:27017" {
			t.Errorf("unexpected uri %q", config.uri())
		}
	})

	t.Run("Uri_Config", func(t *testing.T) {
		config := &MongoConfig{
			Uri: "mongodb://db.example:27018",
		}
		if err := config.validate(); err != nil {
			t.Fatalf("unexpected validation error: %s", err)
		}
		if config.uri() != "mongodb://db.example:27018" {
			t.Errorf("unexpected uri %q", config.uri())
		}
	})

	t.Run("Uri_With_Host", func(t *testing.T) {
		config := &MongoConfig{
			Uri:  "mongodb://db.example:27018",
			Host: "localhost",
		}
		err := config.validate()
		if !errors.IsInvalidArgument(err) {
			t.Errorf("expected invalid argument, got %v", err)
		}
	})

	t.Run("InValid_Port", func(t *testing.T) {
		config := &MongoConfig{
			Host:     "localhost",
			Port:     "abc",
			Username: "root",
			Password: "badPassword",
		}
		_, err := NewMongoClient(config)

		if err == nil {
			t.Errorf("Connection succeeded while using invalid port number")
			return
		}
		if !errors.IsInvalidArgument(err) {
			t.Errorf("expected invalid argument, got %v", err)
		}
	})

	t.Run("Nil_Config", func(t *testing.T) {
		_, err := NewMongoClient(nil)
		if !errors.IsInvalidArgument(err) {
			t.Errorf("expected invalid argument, got %v", err)
		}
	})
}

func Test_SourceIdentifier(t *testing.T) {
	if !SetSourceIdentifier("embedcore-test") {
		t.Fatalf("failed to set source identifier before use")
	}
	if getSourceIdentifier() != "embedcore-test" {
		t.Errorf("unexpected source identifier %q", getSourceIdentifier())
	}
	if SetSourceIdentifier("other") {
		t.Errorf("source identifier changed after being used")
	}
}

func Test_InterpretMongoError(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	other := fmt.Errorf("connection reset")

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"no_documents", mongo.ErrNoDocuments, errors.IsNotFound},
		{"wrapped_no_documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), errors.IsNotFound},
		{"duplicate_key", duplicate, errors.IsAlreadyExists},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := interpretMongoError(test.err); !test.check(err) {
				t.Errorf("interpretMongoError(%v) = %v with code %v", test.err, err, errors.GetErrCode(err))
			}
		})
	}

	if err := interpretMongoError(other); err != other {
		t.Errorf("expected unrecognized error to pass through, got %v", err)
	}
}

func Test_CollectionArgumentErrors(t *testing.T) {
	// argument checks fail before the mongo collection is touched
	col := &mongoCollection{colName: "id-allocator-state"}
	ctx := context.Background()

	errs := []error{
		col.InsertOne(ctx, "key", nil),
		col.InsertOne(ctx, nil, struct{}{}),
		col.UpdateOne(ctx, "key", nil, true),
		col.UpdateOne(ctx, nil, struct{}{}, true),
	}
	for i, err := range errs {
		if !errors.IsInvalidArgument(err) {
			t.Errorf("call %d: expected invalid argument, got %v", i, err)
			continue
		}
		if !strings.Contains(err.Error(), "id-allocator-state") {
			t.Errorf("call %d: error %q does not name the collection", i, err)
		}
	}
}
