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

type SubscriberStore struct {
	db *Database
}

func NewSubscriberStore(db *Database) *SubscriberStore {
	return &SubscriberStore{db: db}
}

func (s *SubscriberStore) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var sub model.Subscriber
	err := s.db.collection(SubscriberCollection).FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (s *SubscriberStore) Insert(ctx context.Context, subscriber *model.Subscriber) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(SubscriberCollection).InsertOne(ctx, subscriber)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}

	return err
}

func (s *SubscriberStore) SetActive(ctx context.Context, email string, active bool, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": true, "subscribed_at": at}, "$unset": bson.M{"unsubscribed_at": ""}}
	if !active {
		update = bson.M{"$set": bson.M{"active": false, "unsubscribed_at": at}}
	}

	res, err := s.db.collection(SubscriberCollection).UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *SubscriberStore) Delete(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(SubscriberCollection).DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *SubscriberStore) List(ctx context.Context, activeOnly bool) ([]model.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "subscribed_at", Value: -1}})
	cursor, err := s.db.collection(SubscriberCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := make([]model.Subscriber, 0)
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	return subs, nil
}

func (s *SubscriberStore) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return s.db.collection(SubscriberCollection).CountDocuments(ctx, bson.M{"active": true})
}
