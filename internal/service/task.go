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

// TaskService handles task business logic.
type TaskService struct {
	tasks generic.BaseRepository[*model.Task]
}

func NewTaskService(tasks generic.BaseRepository[*model.Task]) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the actor's work queue (assigned tasks), soonest due first.
// Admins see every task.
func (s *TaskService) List(ctx context.Context, actor authz.Actor) ([]*model.Task, error) {
	return s.tasks.Find(ctx, authz.TaskListFilter(actor), bson.D{{Key: "dueDate", Value: 1}})
}

// Create stores a new task. The assignee defaults to the actor.
func (s *TaskService) Create(ctx context.Context, actor authz.Actor, req *model.CreateTaskRequest) (*model.Task, error) {
	assignedTo := actor.ID
	if req.AssignedTo != "" {
		id, err := util.ParseObjectID(req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("assignedTo: %w", apperr.ErrValidation)
		}
		assignedTo = id
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
	task := &model.Task{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Status:       model.TaskStatusPending,
		Priority:     defaultString(req.Priority, "medium"),
		DueDate:      req.DueDate,
		ReminderDate: req.ReminderDate,
		Lead:         lead,
		Contact:      contact,
		AssignedTo:   assignedTo,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Get returns one task after the read predicate passes (assignee, creator or
// admin).
func (s *TaskService) Get(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessTask(actor, task, authz.OpRead) {
		return nil, apperr.ErrNotAuthorized
	}
	return task, nil
}

// Update rewrites a task. Assignee or admin. Moving status to completed
// stamps completedAt.
func (s *TaskService) Update(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessTask(actor, task, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}

	fields := bson.M{
		"title":       req.Title,
		"description": req.Description,
		"updatedAt":   time.Now(),
	}
	if req.Type != "" {
		fields["type"] = req.Type
	}
	if req.Priority != "" {
		fields["priority"] = req.Priority
	}
	if req.DueDate != nil {
		fields["dueDate"] = req.DueDate
	}
	if req.ReminderDate != nil {
		fields["reminderDate"] = req.ReminderDate
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
	if req.Status != "" {
		fields["status"] = req.Status
		if req.Status == model.TaskStatusCompleted {
			fields["completedAt"] = time.Now()
		}
	}

	return s.tasks.UpdateByID(ctx, id, fields)
}

// Delete removes a task. Creator or admin; the assignee alone is not enough.
func (s *TaskService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessTask(actor, task, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.tasks.DeleteByID(ctx, id)
}
