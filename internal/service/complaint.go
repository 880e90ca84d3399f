package service

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintService handles complaint business logic.
type ComplaintService struct {
	complaints generic.BaseRepository[*model.Complaint]
}

func NewComplaintService(complaints generic.BaseRepository[*model.Complaint]) *ComplaintService {
	return &ComplaintService{complaints: complaints}
}

// List returns the actor's complaints, newest first.
func (s *ComplaintService) List(ctx context.Context, actor authz.Actor) ([]*model.Complaint, error) {
	return s.complaints.Find(ctx, authz.ComplaintListFilter(actor), bson.D{{Key: "createdAt", Value: -1}})
}

// Create files a new complaint owned by the actor.
func (s *ComplaintService) Create(ctx context.Context, actor authz.Actor, req *model.CreateComplaintRequest) (*model.Complaint, error) {
	now := time.Now()
	complaint := &model.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      "open",
		User:        actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint, nil
}

// Get returns one complaint. Owner or admin.
func (s *ComplaintService) Get(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessComplaint(actor, complaint, authz.OpRead) {
		return nil, apperr.ErrNotAuthorized
	}
	return complaint, nil
}

// Update rewrites a complaint. Owner or admin.
func (s *ComplaintService) Update(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.UpdateComplaintRequest) (*model.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessComplaint(actor, complaint, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}

	return s.complaints.UpdateByID(ctx, id, bson.M{
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
		"status":      req.Status,
		"updatedAt":   time.Now(),
	})
}

// Delete removes a complaint. Owner or admin.
func (s *ComplaintService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessComplaint(actor, complaint, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.complaints.DeleteByID(ctx, id)
}
