package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses
const (
	LeadStatusNew        = "new"
	LeadStatusContacted  = "contacted"
	LeadStatusInProgress = "in-progress"
	LeadStatusWon        = "won"
	LeadStatusLost       = "lost"
)

// Lead represents a sales lead. Owned jointly by its creator and assignee.
type Lead struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company           string             `bson:"company,omitempty" json:"company,omitempty"`
	Title             string             `bson:"title,omitempty" json:"title,omitempty"`
	Status            string             `bson:"status" json:"status"`
	Priority          string             `bson:"priority" json:"priority"`
	Source            string             `bson:"source" json:"source"`
	AssignedTo        primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Value             float64            `bson:"value" json:"value"`
	ExpectedCloseDate *time.Time         `bson:"expectedCloseDate,omitempty" json:"expectedCloseDate,omitempty"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy         primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (l *Lead) GetID() primitive.ObjectID   { return l.ID }
func (l *Lead) SetID(id primitive.ObjectID) { l.ID = id }

type CreateLeadRequest struct {
	Name              string     `json:"name" binding:"required"`
	Email             string     `json:"email" binding:"required,email"`
	Phone             string     `json:"phone"`
	Company           string     `json:"company"`
	Title             string     `json:"title"`
	Priority          string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Source            string     `json:"source" binding:"omitempty,oneof=website phone email social referral other"`
	Value             float64    `json:"value"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
	Notes             string     `json:"notes"`
}

type UpdateLeadRequest struct {
	Name              string     `json:"name" binding:"required"`
	Email             string     `json:"email" binding:"required,email"`
	Phone             string     `json:"phone"`
	Company           string     `json:"company"`
	Title             string     `json:"title"`
	Status            string     `json:"status" binding:"omitempty,oneof=new contacted in-progress won lost"`
	Priority          string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Source            string     `json:"source" binding:"omitempty,oneof=website phone email social referral other"`
	Value             float64    `json:"value"`
	ExpectedCloseDate *time.Time `json:"expectedCloseDate"`
	Notes             string     `json:"notes"`
	AssignedTo        string     `json:"assignedTo"`
}
