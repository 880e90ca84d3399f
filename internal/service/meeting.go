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

// MeetingService handles meeting business logic.
type MeetingService struct {
	meetings generic.BaseRepository[*model.Meeting]
}

func NewMeetingService(meetings generic.BaseRepository[*model.Meeting]) *MeetingService {
	return &MeetingService{meetings: meetings}
}

// List returns meetings the actor created or attends, earliest first.
func (s *MeetingService) List(ctx context.Context, actor authz.Actor) ([]*model.Meeting, error) {
	return s.meetings.Find(ctx, authz.MeetingListFilter(actor), bson.D{{Key: "startTime", Value: 1}})
}

// Create stores a new meeting. With no explicit attendees the actor is the
// sole attendee.
func (s *MeetingService) Create(ctx context.Context, actor authz.Actor, req *model.CreateMeetingRequest) (*model.Meeting, error) {
	attendees, err := parseAttendees(req.Attendees)
	if err != nil {
		return nil, err
	}
	if len(attendees) == 0 {
		attendees = []primitive.ObjectID{actor.ID}
	}
	lead, err := util.ParseOptionalObjectID(req.Lead)
	if err != nil {
		return nil, fmt.Errorf("lead: %w", apperr.ErrValidation)
	}
	contact, err := util.ParseOptionalObjectID(req.Contact)
	if err != nil {
		return nil, fmt.Errorf("contact: %w", apperr.ErrValidation)
	}

	now := time.Now()
	meeting := &model.Meeting{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Type:        defaultString(req.Type, "call"),
		Lead:        lead,
		Contact:     contact,
		Attendees:   attendees,
		Notes:       req.Notes,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// Get returns one meeting. Creator, attendee or admin, matching the list
// filter.
func (s *MeetingService) Get(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessMeeting(actor, meeting, authz.OpRead) {
		return nil, apperr.ErrNotAuthorized
	}
	return meeting, nil
}

// Update rewrites a meeting. Creator or admin.
func (s *MeetingService) Update(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.UpdateMeetingRequest) (*model.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessMeeting(actor, meeting, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}

	fields := bson.M{
		"description": req.Description,
		"location":    req.Location,
		"notes":       req.Notes,
		"updatedAt":   time.Now(),
	}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.StartTime != nil {
		fields["startTime"] = req.StartTime
	}
	if req.EndTime != nil {
		fields["endTime"] = req.EndTime
	}
	if req.Type != "" {
		fields["type"] = req.Type
	}
	if req.Lead != "" {
		lead, err := util.ParseObjectID(req.Lead)
		if err != nil {
			return nil, fmt.Errorf("lead: %w", apperr.ErrValidation)
		}
		fields["lead"] = lead
	}
	if req.Contact != "" {
		contact, err := util.ParseObjectID(req.Contact)
		if err != nil {
			return nil, fmt.Errorf("contact: %w", apperr.ErrValidation)
		}
		fields["contact"] = contact
	}
	if req.Attendees != nil {
		attendees, err := parseAttendees(req.Attendees)
		if err != nil {
			return nil, err
		}
		fields["attendees"] = attendees
	}

	return s.meetings.UpdateByID(ctx, id, fields)
}

// Delete removes a meeting. Creator or admin.
func (s *MeetingService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessMeeting(actor, meeting, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.meetings.DeleteByID(ctx, id)
}

func parseAttendees(hexIDs []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := util.ParseObjectID(h)
		if err != nil {
			return nil, fmt.Errorf("attendees: %w", apperr.ErrValidation)
		}
		out = append(out, id)
	}
	return out, nil
}
