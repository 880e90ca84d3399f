package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Complaint is strictly scoped to the user that filed it.
type Complaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Priority    string             `bson:"priority" json:"priority"`
	Status      string             `bson:"status" json:"status"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (c *Complaint) GetID() primitive.ObjectID   { return c.ID }
func (c *Complaint) SetID(id primitive.ObjectID) { c.ID = id }

type CreateComplaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high urgent"`
}

type UpdateComplaintRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high urgent"`
	Status      string `json:"status" binding:"required,oneof=open in-progress resolved closed"`
}
