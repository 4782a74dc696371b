package shows

import (
	"context"
	"regexp"
	"time"

	"showsvc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShowStore is the narrow persistence surface the service depends on.
// It exists so tests can run against an in-memory fake instead of mongo.
type ShowStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Show, error)
	FindOneByName(ctx context.Context, name string) (*models.Show, error)
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByNameContains(ctx context.Context, substr string) ([]models.Show, error)
	Insert(ctx context.Context, show models.Show) (*models.Show, error)
	UpdateByName(ctx context.Context, name string, payload models.ShowPayload) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type mongoShowStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) ShowStore {
	return &mongoShowStore{coll: coll}
}

func (s *mongoShowStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Show, error) {
	var show models.Show
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (s *mongoShowStore) FindOneByName(ctx context.Context, name string) (*models.Show, error) {
	var show models.Show
	if err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (s *mongoShowStore) FindAll(ctx context.Context) ([]models.Show, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shows []models.Show
	if err := cursor.All(ctx, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// FindByNameContains matches names containing substr, case-insensitively.
// The pattern is unanchored, so "bre" matches "Breaking Bad".
func (s *mongoShowStore) FindByNameContains(ctx context.Context, substr string) ([]models.Show, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(substr), "$options": "i"}}
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shows []models.Show
	if err := cursor.All(ctx, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

func (s *mongoShowStore) Insert(ctx context.Context, show models.Show) (*models.Show, error) {
	if show.ID.IsZero() {
		show.ID = primitive.NewObjectID()
	}
	if show.Date.IsZero() {
		show.Date = time.Now()
	}

	if _, err := s.coll.InsertOne(ctx, show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (s *mongoShowStore) UpdateByName(ctx context.Context, name string, payload models.ShowPayload) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":  payload.Name,
		"image": payload.Image,
		"type":  payload.Type,
	}}
	result, err := s.coll.UpdateOne(ctx, bson.M{"name": name}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *mongoShowStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
