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

// LeadService handles sales-lead business logic.
type LeadService struct {
	leads         generic.BaseRepository[*model.Lead]
	notifications generic.BaseRepository[*model.Notification]
}

func NewLeadService(leads generic.BaseRepository[*model.Lead], notifications generic.BaseRepository[*model.Notification]) *LeadService {
	return &LeadService{leads: leads, notifications: notifications}
}

// List returns leads visible to the actor, newest first.
func (s *LeadService) List(ctx context.Context, actor authz.Actor) ([]*model.Lead, error) {
	return s.leads.Find(ctx, authz.LeadListFilter(actor), bson.D{{Key: "createdAt", Value: -1}})
}

// Create stores a new lead with the actor stamped as creator and assignee.
func (s *LeadService) Create(ctx context.Context, actor authz.Actor, req *model.CreateLeadRequest) (*model.Lead, error) {
	now := time.Now()
	lead := &model.Lead{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Company:           req.Company,
		Title:             req.Title,
		Status:            model.LeadStatusNew,
		Priority:          defaultString(req.Priority, "medium"),
		Source:            defaultString(req.Source, "other"),
		AssignedTo:        actor.ID,
		Value:             req.Value,
		ExpectedCloseDate: req.ExpectedCloseDate,
		Notes:             req.Notes,
		CreatedBy:         actor.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// Get returns one lead after the read predicate passes.
func (s *LeadService) Get(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Lead, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessLead(actor, lead, authz.OpRead) {
		return nil, apperr.ErrNotAuthorized
	}
	return lead, nil
}

// Update rewrites a lead's fields. Creator or admin; reassigning AssignedTo
// is admin-only. A reassignment to a different user leaves a lead_assigned
// notification for the new assignee.
func (s *LeadService) Update(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.UpdateLeadRequest) (*model.Lead, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessLead(actor, lead, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}

	fields := bson.M{
		"name":      req.Name,
		"email":     req.Email,
		"phone":     req.Phone,
		"company":   req.Company,
		"title":     req.Title,
		"value":     req.Value,
		"notes":     req.Notes,
		"updatedAt": time.Now(),
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if req.Priority != "" {
		fields["priority"] = req.Priority
	}
	if req.Source != "" {
		fields["source"] = req.Source
	}
	if req.ExpectedCloseDate != nil {
		fields["expectedCloseDate"] = req.ExpectedCloseDate
	}

	var newAssignee primitive.ObjectID
	if req.AssignedTo != "" {
		assignee, err := util.ParseObjectID(req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("assignedTo: %w", apperr.ErrValidation)
		}
		if assignee != lead.AssignedTo {
			if !actor.IsAdmin() {
				return nil, fmt.Errorf("only admins may reassign leads: %w", apperr.ErrNotAuthorized)
			}
			fields["assignedTo"] = assignee
			newAssignee = assignee
		}
	}

	updated, err := s.leads.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if !newAssignee.IsZero() && newAssignee != actor.ID {
		s.notifyAssigned(ctx, updated, newAssignee)
	}
	return updated, nil
}

// Delete removes a lead. Creator or admin.
func (s *LeadService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessLead(actor, lead, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.leads.DeleteByID(ctx, id)
}

// notifyAssigned records a lead_assigned notification. Best effort: the lead
// update has already committed, so a failed insert is not surfaced.
func (s *LeadService) notifyAssigned(ctx context.Context, lead *model.Lead, assignee primitive.ObjectID) {
	_ = s.notifications.Create(ctx, &model.Notification{
		Type:        model.NotificationLeadAssigned,
		Title:       "Lead assigned to you",
		Message:     fmt.Sprintf("Lead %q has been assigned to you", lead.Name),
		Recipient:   assignee,
		RelatedLead: lead.ID,
		CreatedAt:   time.Now(),
	})
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
