package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"saukstas/internal/domain/model"
	repository "saukstas/internal/domain/repository/database"
)

const aboutID = "about"

type aboutDocument struct {
	ID              string `bson:"_id"`
	model.AboutPage `bson:",inline"`
}

type SettingsStore struct {
	db *Database
}

func NewSettingsStore(db *Database) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) GetAbout(ctx context.Context) (*model.AboutPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var doc aboutDocument
	err := s.db.collection(SettingsCollection).FindOne(ctx, bson.M{"_id": aboutID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc.AboutPage, nil
}

func (s *SettingsStore) PutAbout(ctx context.Context, page *model.AboutPage) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(SettingsCollection).ReplaceOne(ctx,
		bson.M{"_id": aboutID},
		aboutDocument{ID: aboutID, AboutPage: *page},
		options.Replace().SetUpsert(true),
	)

	return err
}
