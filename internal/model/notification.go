package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotificationTaskDue         = "task_due"
	NotificationLeadAssigned    = "lead_assigned"
	NotificationMeetingReminder = "meeting_reminder"
	NotificationReminder        = "reminder"
	NotificationSystem          = "system"
)

// Notification is strictly scoped to its recipient. Unlike the other
// resources there is no admin bypass on any notification operation.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	Title       string             `bson:"title" json:"title"`
	Message     string             `bson:"message" json:"message"`
	Recipient   primitive.ObjectID `bson:"recipient" json:"recipient"`
	RelatedLead primitive.ObjectID `bson:"relatedLead,omitempty" json:"relatedLead,omitempty"`
	RelatedTask primitive.ObjectID `bson:"relatedTask,omitempty" json:"relatedTask,omitempty"`
	IsRead      bool               `bson:"isRead" json:"isRead"`
	ActionURL   string             `bson:"actionUrl,omitempty" json:"actionUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (n *Notification) GetID() primitive.ObjectID   { return n.ID }
func (n *Notification) SetID(id primitive.ObjectID) { n.ID = id }
