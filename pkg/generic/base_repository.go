package generic

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseRepository is the storage collaborator every collection exposes:
// create, find-by-id, filtered find, partial update, delete.
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (T, error)
	FindOne(ctx context.Context, filter bson.M) (T, error)
	Find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// MongoBaseRepository Implementation
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *MongoBaseRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	return entity, err
}

func (r *MongoBaseRepository[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, filter).Decode(&entity)
	return entity, err
}

func (r *MongoBaseRepository[T]) Find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entities := make([]T, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// UpdateByID applies a partial $set update and returns the updated document.
func (r *MongoBaseRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (T, error) {
	var entity T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&entity)
	return entity, err
}

func (r *MongoBaseRepository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
