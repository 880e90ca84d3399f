package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mail folders
const (
	FolderInbox  = "inbox"
	FolderSent   = "sent"
	FolderDrafts = "drafts"
	FolderTrash  = "trash"
)

// Mail is one mailbox copy of a logical message. Sending duplicates the
// message into the sender's "sent" copy and, when the recipient address
// belongs to a known user, that user's "inbox" copy. UserID is the owner of
// this particular copy.
type Mail struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	From      string             `bson:"from" json:"from"`
	To        string             `bson:"to" json:"to"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Read      bool               `bson:"read" json:"read"`
	Starred   bool               `bson:"starred" json:"starred"`
	Folder    string             `bson:"folder" json:"folder"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
}

func (m *Mail) GetID() primitive.ObjectID   { return m.ID }
func (m *Mail) SetID(id primitive.ObjectID) { m.ID = id }

type SendMailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}
