package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"saukstas/internal/domain/model"
	repository "saukstas/internal/domain/repository/database"
)

type UserStore struct {
	db *Database
}

func NewUserStore(db *Database) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetByIdentity(ctx context.Context, identity string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	query := bson.M{"$or": bson.A{bson.M{"username": identity}, bson.M{"email": identity}}}
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	return s.findOne(ctx, query, opts)
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) Insert(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(UserCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}

	return err
}

func (s *UserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return s.db.collection(UserCollection).CountDocuments(ctx, bson.M{"role": role})
}

func (s *UserStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(UserCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": at}})

	return err
}

func (s *UserStore) findOne(ctx context.Context, query bson.M, opts ...*options.FindOneOptions) (*model.User, error) {
	var user model.User
	err := s.db.collection(UserCollection).FindOne(ctx, query, opts...).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
