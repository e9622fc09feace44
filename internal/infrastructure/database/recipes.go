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

type RecipeStore struct {
	db *Database
}

func NewRecipeStore(db *Database) *RecipeStore {
	return &RecipeStore{db: db}
}

func (s *RecipeStore) Insert(ctx context.Context, recipe *model.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.db.collection(RecipeCollection).InsertOne(ctx, recipe)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}

	return err
}

func (s *RecipeStore) Replace(ctx context.Context, recipe *model.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(RecipeCollection).ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *RecipeStore) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var recipe model.Recipe
	err := s.db.collection(RecipeCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.db.collection(RecipeCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *RecipeStore) List(ctx context.Context, filter repository.RecipeFilter) ([]model.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(filter.Offset)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := s.db.collection(RecipeCollection).Find(ctx, recipeQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := make([]model.Recipe, 0)
	if err = cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (s *RecipeStore) Count(ctx context.Context, filter repository.RecipeFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return s.db.collection(RecipeCollection).CountDocuments(ctx, recipeQuery(filter))
}

func (s *RecipeStore) CountWithImage(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return s.db.collection(RecipeCollection).CountDocuments(ctx, bson.M{"image": bson.M{"$nin": bson.A{nil, ""}}})
}

func (s *RecipeStore) PublishedCategories(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"categories": 1})
	cursor, err := s.db.collection(RecipeCollection).Find(ctx, bson.M{"status": model.StatusPublished}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out [][]string
	for cursor.Next(ctx) {
		var doc struct {
			Categories []string `bson:"categories"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.Categories)
	}

	return out, cursor.Err()
}

func recipeQuery(filter repository.RecipeFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["categories"] = filter.Category
	}

	return query
}
