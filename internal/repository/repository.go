// Package repository binds each document collection to the generic Mongo
// base repository and translates driver-level errors into the application
// taxonomy.
package repository

import (
	"context"
	"errors"

	"salesdesk/internal/apperr"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the typed repository bundle the services are wired with.
type Store struct {
	Users         generic.BaseRepository[*model.User]
	Leads         generic.BaseRepository[*model.Lead]
	Tasks         generic.BaseRepository[*model.Task]
	Meetings      generic.BaseRepository[*model.Meeting]
	Customers     generic.BaseRepository[*model.Customer]
	Complaints    generic.BaseRepository[*model.Complaint]
	Documents     generic.BaseRepository[*model.Document]
	Activities    generic.BaseRepository[*model.Activity]
	Notifications generic.BaseRepository[*model.Notification]
	Mail          generic.BaseRepository[*model.Mail]
}

// NewStore wires every collection against the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		Users:         wrap(generic.NewBaseRepository[*model.User](db.Collection("users"))),
		Leads:         wrap(generic.NewBaseRepository[*model.Lead](db.Collection("leads"))),
		Tasks:         wrap(generic.NewBaseRepository[*model.Task](db.Collection("tasks"))),
		Meetings:      wrap(generic.NewBaseRepository[*model.Meeting](db.Collection("meetings"))),
		Customers:     wrap(generic.NewBaseRepository[*model.Customer](db.Collection("customers"))),
		Complaints:    wrap(generic.NewBaseRepository[*model.Complaint](db.Collection("complaints"))),
		Documents:     wrap(generic.NewBaseRepository[*model.Document](db.Collection("documents"))),
		Activities:    wrap(generic.NewBaseRepository[*model.Activity](db.Collection("activities"))),
		Notifications: wrap(generic.NewBaseRepository[*model.Notification](db.Collection("notifications"))),
		Mail:          wrap(generic.NewBaseRepository[*model.Mail](db.Collection("mail"))),
	}
}

func wrap[T generic.Entity](base *generic.MongoBaseRepository[T]) generic.BaseRepository[T] {
	return &errMapping[T]{inner: base}
}

// errMapping converts mongo.ErrNoDocuments into apperr.ErrNotFound so no
// caller above this layer sees driver internals.
type errMapping[T generic.Entity] struct {
	inner *generic.MongoBaseRepository[T]
}

func (r *errMapping[T]) Create(ctx context.Context, entity T) error {
	return r.inner.Create(ctx, entity)
}

func (r *errMapping[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	entity, err := r.inner.FindByID(ctx, id)
	return entity, mapErr(err)
}

func (r *errMapping[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	entity, err := r.inner.FindOne(ctx, filter)
	return entity, mapErr(err)
}

func (r *errMapping[T]) Find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	return r.inner.Find(ctx, filter, sort)
}

func (r *errMapping[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (T, error) {
	entity, err := r.inner.UpdateByID(ctx, id, fields)
	return entity, mapErr(err)
}

func (r *errMapping[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return mapErr(r.inner.DeleteByID(ctx, id))
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.ErrNotFound
	}
	return err
}
