// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Initial reference and motivation taken from
// https://gitlab.com/project-emco/core/emco-base/-/blob/main/src/orchestrator/pkg/infra/db

package db

import (
	"context"
	"net"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"github.com/go-core-stack/embedcore/errors"
	"github.com/go-core-stack/embedcore/utils"
)

type mongoCollection struct {
	colName string // name of the collection this collection object is working with
	col     *mongo.Collection
}

// interprets mongo db error and returns library parsable error codes
func interpretMongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(errors.AlreadyExists, err.Error())
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errors.Wrap(errors.NotFound, err.Error())
	}
	return err
}

// inserts one entry with given key and data to the collection
// returns errors if entry already exists or if there is a connection
// error with the database server
func (c *mongoCollection) InsertOne(ctx context.Context, key any, data any) error {
	if data == nil {
		return errors.Wrapf(errors.InvalidArgument, "db Insert error in %s: No data to store", c.colName)
	}
	if key == nil {
		return errors.Wrapf(errors.InvalidArgument, "db Insert error in %s: No Key specified to store", c.colName)
	}

	// convert data to bson document for transacting with mongo db library
	marshaledData, err := bson.Marshal(data)
	if err != nil {
		return err
	}

	bd := bson.D{}
	err = bson.Unmarshal(marshaledData, &bd)
	if err != nil {
		return err
	}

	// set the primary key to specified key.
	bd = append(bd, bson.E{
		Key:   "_id",
		Value: key,
	})

	_, err = c.col.InsertOne(ctx, bd)
	if err != nil {
		// identify and differentiate Already Exist error here.
		return interpretMongoError(err)
	}
	return nil
}

// inserts or updates one entry with given key and data to the collection
// acts based on the flag passed for upsert
// returns errors if entry not found while upsert flag is false or if
// there is a connection error with the database server
func (c *mongoCollection) UpdateOne(ctx context.Context, key any, data any, upsert bool) error {
	if data == nil {
		return errors.Wrapf(errors.InvalidArgument, "db Update error in %s: No data to store", c.colName)
	}
	if key == nil {
		return errors.Wrapf(errors.InvalidArgument, "db Update error in %s: No Key specified to store", c.colName)
	}

	opts := options.UpdateOne().SetUpsert(upsert)
	resp, err := c.col.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.D{
			{Key: "$set", Value: data},
		},
		opts)

	if err != nil {
		return interpretMongoError(err)
	}

	// there should be at least one entry in matched count
	// or upserted count to not return an error here
	if resp.MatchedCount == 0 && resp.UpsertedCount == 0 {
		return errors.Wrapf(errors.NotFound, "No Document found in %s", c.colName)
	}

	return nil
}

// Find one entry from the store collection for the given key, where the data
// value is returned based on the object type passed to it
func (c *mongoCollection) FindOne(ctx context.Context, key any, data any) error {
	resp := c.col.FindOne(ctx, bson.M{"_id": key})
	// decode the value returned by the mongodb client into the data
	// object passed by the caller
	if err := resp.Decode(data); err != nil {
		return interpretMongoError(err)
	}
	return nil
}

// Return count of entries matching the provided filter
func (c *mongoCollection) Count(ctx context.Context, filter any) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := c.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, interpretMongoError(err)
	}
	return count, nil
}

// remove one entry from the collection matching the given key
func (c *mongoCollection) DeleteOne(ctx context.Context, key any) error {
	resp, err := c.col.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return interpretMongoError(err)
	}
	if resp.DeletedCount == 0 {
		return errors.Wrapf(errors.NotFound, "No Document found in %s", c.colName)
	}

	return nil
}

type mongoStore struct {
	db *mongo.Database
}

func (s *mongoStore) GetCollection(name string) StoreCollection {
	return &mongoCollection{
		colName: name,
		col:     s.db.Collection(name),
	}
}

func (s *mongoStore) Name() string {
	return s.db.Name()
}

type mongoClient struct {
	client *mongo.Client
}

type MongoConfig struct {
	Host     string
	Port     string
	Uri      string
	Username string
	Password string
}

func (c *MongoConfig) validate() error {
	if c.Uri != "" {
		if c.Host != "" || c.Port != "" {
			return errors.Wrap(errors.InvalidArgument, "cannot provide host and port if uri is configured")
		}
	} else {
		if c.Host == "" {
			c.Host = defaultMongoHost
		}
		if c.Port == "" || c.Port == "0" {
			c.Port = defaultMongoPort
		} else {
			if _, err := strconv.Atoi(c.Port); err != nil {
				return errors.Wrap(errors.InvalidArgument, "invalid database port")
			}
		}
	}
	return nil
}

// uri to connect with, built from host and port if not configured
func (c *MongoConfig) uri() string {
	if c.Uri != "" {
		return c.Uri
	}
	return "mongodb://" + net.JoinHostPort(c.Host, c.Port)
}

func NewMongoClient(conf *MongoConfig) (StoreClient, error) {
	if conf == nil {
		return nil, errors.Wrap(errors.InvalidArgument, "mongo config not provided")
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	clientOptions := options.Client()
	clientOptions.ApplyURI(conf.uri())
	clientOptions.SetAppName(getSourceIdentifier())
	clientOptions.SetAuth(options.Credential{
		AuthMechanism: "SCRAM-SHA-256",
		AuthSource:    "admin",
		Username:      conf.Username,
		Password:      conf.Password,
	})

	// by default ensure majority write concern and journal to be true
	// so that a saved allocator state survives a primary failover
	wc := writeconcern.Majority()
	wc.Journal = utils.Pointer(true)
	clientOptions.SetWriteConcern(wc)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, err
	}

	return &mongoClient{
		client: client,
	}, nil
}

// Gets Mongodb Data Store for given database name
// typically while working with mongodb it requires to work on a collection
// which is scoped inside a database construct of mongodb
func (c *mongoClient) GetDataStore(dbName string) Store {
	return &mongoStore{
		db: c.client.Database(dbName),
	}
}

func (c *mongoClient) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}
