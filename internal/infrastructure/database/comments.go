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

type CommentStore struct {
	db *Database
}

func NewCommentStore(db *Database) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Insert(ctx context.Context, comment *model.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(CommentCollection).InsertOne(ctx, comment)

	return err
}

func (s *CommentStore) Get(ctx context.Context, recipeID, id string) (*model.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var comment model.Comment
	err := s.db.collection(CommentCollection).FindOne(ctx, bson.M{"_id": id, "recipe_id": recipeID}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *CommentStore) Delete(ctx context.Context, recipeID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(CommentCollection).DeleteOne(ctx, bson.M{"_id": id, "recipe_id": recipeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *CommentStore) DeleteByRecipe(ctx context.Context, recipeID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(CommentCollection).DeleteMany(ctx, bson.M{"recipe_id": recipeID})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (s *CommentStore) SetStatus(ctx context.Context, recipeID, id string, status model.CommentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(CommentCollection).UpdateOne(ctx,
		bson.M{"_id": id, "recipe_id": recipeID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *CommentStore) ListByRecipe(ctx context.Context, recipeID string,
	status model.CommentStatus,
) ([]model.Comment, error) {
	query := bson.M{"recipe_id": recipeID}
	if status != "" {
		query["status"] = status
	}

	return s.find(ctx, query, 0)
}

func (s *CommentStore) List(ctx context.Context, status model.CommentStatus, limit int64) ([]model.Comment, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	return s.find(ctx, query, limit)
}

func (s *CommentStore) Count(ctx context.Context, status model.CommentStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	return s.db.collection(CommentCollection).CountDocuments(ctx, query)
}

func (s *CommentStore) find(ctx context.Context, query bson.M, limit int64) ([]model.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.collection(CommentCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]model.Comment, 0)
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}
