package service

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"
	"salesdesk/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityService handles the append-only activity timeline.
type ActivityService struct {
	activities generic.BaseRepository[*model.Activity]
}

func NewActivityService(activities generic.BaseRepository[*model.Activity]) *ActivityService {
	return &ActivityService{activities: activities}
}

// List returns the actor's activities (all for admins), newest first.
func (s *ActivityService) List(ctx context.Context, actor authz.Actor) ([]*model.Activity, error) {
	return s.activities.Find(ctx, authz.ActivityListFilter(actor), bson.D{{Key: "createdAt", Value: -1}})
}

// Create appends a new activity recorded against the actor.
func (s *ActivityService) Create(ctx context.Context, actor authz.Actor, req *model.CreateActivityRequest) (*model.Activity, error) {
	lead, err := util.ParseOptionalObjectID(req.Lead)
	if err != nil {
		return nil, fmt.Errorf("lead: %w", apperr.ErrValidation)
	}
	contact, err := util.ParseOptionalObjectID(req.Contact)
	if err != nil {
		return nil, fmt.Errorf("contact: %w", apperr.ErrValidation)
	}

	activity := &model.Activity{
		Type:        req.Type,
		Description: req.Description,
		Lead:        lead,
		Contact:     contact,
		User:        actor.ID,
		Metadata:    req.Metadata,
		CreatedAt:   time.Now(),
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// ListFor returns the timeline for a lead or contact, newest first.
// kind is "lead" or "contact". Scoped to the actor's own entries (all for
// admins), same as the flat listing.
func (s *ActivityService) ListFor(ctx context.Context, actor authz.Actor, kind string, id primitive.ObjectID) ([]*model.Activity, error) {
	field := "contact"
	if kind == "lead" {
		field = "lead"
	}
	filter := authz.ActivityListFilter(actor)
	filter[field] = id
	return s.activities.Find(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}
