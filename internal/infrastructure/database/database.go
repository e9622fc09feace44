package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"saukstas/internal/domain/model"
	"saukstas/pkg/logger"
)

const (
	RecipeCollection     = "recipes"
	CommentCollection    = "comments"
	SubscriberCollection = "newsletter_subscribers"
	SettingsCollection   = "settings"
	UserCollection       = "users"
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
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := db.initCollections(); err != nil {
		return nil, err
	}

	logger.Info("connected to mongo", "db", cfg.DBName)

	return db, nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func (db *Database) initCollections() error {
	if err := db.ensureCollection(RecipeCollection, recipeValidator()); err != nil {
		return err
	}

	for _, name := range []string{CommentCollection, SubscriberCollection, SettingsCollection, UserCollection} {
		if err := db.ensureCollection(name, nil); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		RecipeCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "categories", Value: 1}}},
		},
		CommentCollection: {
			{Keys: bson.D{{Key: "recipe_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		SubscriberCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		UserCollection: {
			{
				Keys: bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetCollation(&options.Collation{Locale: "en", Strength: 2}),
			},
		},
	}

	for name, models := range indexes {
		if _, err := db.collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}

func (db *Database) ensureCollection(name string, validator bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection()
	if validator != nil {
		collOpts.SetValidator(validator)
	}

	err = db.Client.Database(db.DBName).CreateCollection(ctx, name, collOpts)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
		return nil
	}

	return err
}

// maxStoredTitle bounds the escaped title: a 200 character title grows to at
// most five bytes per character once HTML escaped.
const maxStoredTitle = 5 * 200

func recipeValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "title", "status", "created_at"},
			"properties": bson.M{
				"_id": bson.M{"bsonType": "string"},
				"title": bson.M{
					"bsonType":  "string",
					"minLength": 3,
					"maxLength": maxStoredTitle,
				},
				"status": bson.M{
					"enum": []string{string(model.StatusDraft), string(model.StatusPublished)},
				},
				"categories":  bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"tags":        bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"ingredients": bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"steps":       bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"prep_time":   bson.M{"bsonType": []string{"int", "long"}, "minimum": 0},
				"cook_time":   bson.M{"bsonType": []string{"int", "long"}, "minimum": 0},
				"servings":    bson.M{"bsonType": []string{"int", "long"}, "minimum": 1},
				"created_at":  bson.M{"bsonType": "date"},
				"updated_at":  bson.M{"bsonType": []string{"date", "null"}},
			},
		},
	}
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
