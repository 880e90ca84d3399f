package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is an append-only timeline record tied to a lead or contact.
type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	Lead        primitive.ObjectID `bson:"lead,omitempty" json:"lead,omitempty"`
	Contact     primitive.ObjectID `bson:"contact,omitempty" json:"contact,omitempty"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Metadata    map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (a *Activity) GetID() primitive.ObjectID   { return a.ID }
func (a *Activity) SetID(id primitive.ObjectID) { a.ID = id }

type CreateActivityRequest struct {
	Type        string         `json:"type" binding:"required,oneof=call email meeting note status_change file_upload"`
	Description string         `json:"description" binding:"required"`
	Lead        string         `json:"lead"`
	Contact     string         `json:"contact"`
	Metadata    map[string]any `json:"metadata"`
}
