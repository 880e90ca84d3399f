package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task is readable by its assignee or creator; updates follow the assignee,
// deletion follows the creator.
type Task struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Type         string             `bson:"type" json:"type"`
	Status       string             `bson:"status" json:"status"`
	Priority     string             `bson:"priority" json:"priority"`
	DueDate      *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	ReminderDate *time.Time         `bson:"reminderDate,omitempty" json:"reminderDate,omitempty"`
	Lead         primitive.ObjectID `bson:"lead,omitempty" json:"lead,omitempty"`
	Contact      primitive.ObjectID `bson:"contact,omitempty" json:"contact,omitempty"`
	AssignedTo   primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CompletedAt  *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *Task) GetID() primitive.ObjectID   { return t.ID }
func (t *Task) SetID(id primitive.ObjectID) { t.ID = id }

type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Type         string     `json:"type" binding:"required,oneof=call meeting demo email other"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate      *time.Time `json:"dueDate"`
	ReminderDate *time.Time `json:"reminderDate"`
	Lead         string     `json:"lead"`
	Contact      string     `json:"contact"`
	AssignedTo   string     `json:"assignedTo"`
}

type UpdateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Type         string     `json:"type" binding:"omitempty,oneof=call meeting demo email other"`
	Status       string     `json:"status" binding:"omitempty,oneof=pending in-progress completed cancelled"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate      *time.Time `json:"dueDate"`
	ReminderDate *time.Time `json:"reminderDate"`
	Lead         string     `json:"lead"`
	Contact      string     `json:"contact"`
}
