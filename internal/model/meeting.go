package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting is readable by its creator or any attendee; only the creator (or
// an admin) may mutate it.
type Meeting struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   time.Time            `bson:"startTime" json:"startTime"`
	EndTime     *time.Time           `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Location    string               `bson:"location,omitempty" json:"location,omitempty"`
	Type        string               `bson:"type" json:"type"`
	Lead        primitive.ObjectID   `bson:"lead,omitempty" json:"lead,omitempty"`
	Contact     primitive.ObjectID   `bson:"contact,omitempty" json:"contact,omitempty"`
	Attendees   []primitive.ObjectID `bson:"attendees" json:"attendees"`
	Notes       string               `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy   primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

func (m *Meeting) GetID() primitive.ObjectID   { return m.ID }
func (m *Meeting) SetID(id primitive.ObjectID) { m.ID = id }

type CreateMeetingRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"startTime" binding:"required"`
	EndTime     *time.Time `json:"endTime"`
	Location    string     `json:"location"`
	Type        string     `json:"type" binding:"omitempty,oneof=call in-person video demo"`
	Lead        string     `json:"lead"`
	Contact     string     `json:"contact"`
	Attendees   []string   `json:"attendees"`
	Notes       string     `json:"notes"`
}

type UpdateMeetingRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Location    string     `json:"location"`
	Type        string     `json:"type" binding:"omitempty,oneof=call in-person video demo"`
	Lead        string     `json:"lead"`
	Contact     string     `json:"contact"`
	Attendees   []string   `json:"attendees"`
	Notes       string     `json:"notes"`
}
