// Package authz holds the access-control rules for every resource kind.
// Each rule has two forms that must agree: a per-record predicate used on
// single-record operations, and a listing filter used on collection reads.
// The general shape is admin OR ownership; Notification deliberately has no
// admin bypass, and Mail folder listings are always scoped to the caller's
// own mailbox.
package authz

import (
	"salesdesk/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operation is the kind of access being requested on a record.
type Operation int

const (
	OpRead Operation = iota
	OpWrite
	OpDelete
)

// Actor is the authenticated identity making a request.
type Actor struct {
	ID    primitive.ObjectID
	Role  string
	Email string
}

func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// Unfiltered is the listing filter that selects the whole collection.
func Unfiltered() bson.M { return bson.M{} }

// CanAccessLead: creator and assignee may read; only the creator updates or
// deletes. Reassignment of AssignedTo itself is gated separately in the
// service (admin only when the actor is not the creator).
func CanAccessLead(a Actor, l *model.Lead, op Operation) bool {
	if a.IsAdmin() {
		return true
	}
	switch op {
	case OpRead:
		return l.CreatedBy == a.ID || l.AssignedTo == a.ID
	default:
		return l.CreatedBy == a.ID
	}
}

// LeadListFilter scopes collection reads to leads the actor created or holds.
func LeadListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"$or": bson.A{
		bson.M{"assignedTo": a.ID},
		bson.M{"createdBy": a.ID},
	}}
}

// CanAccessTask: read follows assignee or creator, update follows the
// assignee, delete follows the creator. An assignee who is not the creator
// may update but never delete.
func CanAccessTask(a Actor, t *model.Task, op Operation) bool {
	if a.IsAdmin() {
		return true
	}
	switch op {
	case OpRead:
		return t.AssignedTo == a.ID || t.CreatedBy == a.ID
	case OpWrite:
		return t.AssignedTo == a.ID
	default:
		return t.CreatedBy == a.ID
	}
}

// TaskListFilter scopes collection reads to the actor's assigned tasks only.
// Narrower than the read predicate on purpose: the task list is a work
// queue, while created tasks stay reachable by id.
func TaskListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"assignedTo": a.ID}
}

// CanAccessMeeting: the creator or any attendee may read; only the creator
// mutates.
func CanAccessMeeting(a Actor, m *model.Meeting, op Operation) bool {
	if a.IsAdmin() {
		return true
	}
	if op == OpRead {
		if m.CreatedBy == a.ID {
			return true
		}
		for _, att := range m.Attendees {
			if att == a.ID {
				return true
			}
		}
		return false
	}
	return m.CreatedBy == a.ID
}

func MeetingListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"$or": bson.A{
		bson.M{"createdBy": a.ID},
		bson.M{"attendees": a.ID},
	}}
}

// CanAccessCustomer: strict owner-or-admin for every operation.
func CanAccessCustomer(a Actor, c *model.Customer, _ Operation) bool {
	return a.IsAdmin() || c.User == a.ID
}

func CustomerListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"user": a.ID}
}

// CanAccessComplaint: strict owner-or-admin for every operation.
func CanAccessComplaint(a Actor, c *model.Complaint, _ Operation) bool {
	return a.IsAdmin() || c.User == a.ID
}

func ComplaintListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"user": a.ID}
}

// CanAccessDocument: access follows the uploader. There is no update route
// for documents, so OpWrite never reaches this predicate in practice.
func CanAccessDocument(a Actor, d *model.Document, _ Operation) bool {
	return a.IsAdmin() || d.UploadedBy == a.ID
}

func DocumentListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"uploadedBy": a.ID}
}

func ActivityListFilter(a Actor) bson.M {
	if a.IsAdmin() {
		return Unfiltered()
	}
	return bson.M{"user": a.ID}
}

// CanAccessNotification: recipient only. No admin bypass on any operation.
func CanAccessNotification(a Actor, n *model.Notification, _ Operation) bool {
	return n.Recipient == a.ID
}

// NotificationListFilter scopes to the recipient for every role.
func NotificationListFilter(a Actor) bson.M {
	return bson.M{"recipient": a.ID}
}

// CanAccessMail: the owner of the specific folder copy, or an admin. The
// read/star toggles go through OpWrite and are owner-enforced.
func CanAccessMail(a Actor, m *model.Mail, _ Operation) bool {
	return a.IsAdmin() || m.UserID == a.ID
}

// MailFolderFilter scopes a folder listing to the caller's own mailbox.
// Mailboxes are personal even for admins.
func MailFolderFilter(a Actor, folder string) bson.M {
	return bson.M{"userId": a.ID, "folder": folder}
}

// MailStarredFilter selects the caller's starred copies across folders,
// excluding trash.
func MailStarredFilter(a Actor) bson.M {
	return bson.M{
		"userId":  a.ID,
		"starred": true,
		"folder":  bson.M{"$ne": model.FolderTrash},
	}
}

// CanAccessUser implements the profile rules: any authenticated actor may
// view any profile; updates are self-or-admin; deletion is admin only.
func CanAccessUser(a Actor, target *model.User, op Operation) bool {
	switch op {
	case OpRead:
		return true
	case OpWrite:
		return a.IsAdmin() || target.ID == a.ID
	default:
		return a.IsAdmin()
	}
}
