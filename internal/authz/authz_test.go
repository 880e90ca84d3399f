package authz

import (
	"testing"

	"salesdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	adminID    = primitive.NewObjectID()
	creatorID  = primitive.NewObjectID()
	assigneeID = primitive.NewObjectID()
	strangerID = primitive.NewObjectID()

	admin    = Actor{ID: adminID, Role: model.RoleAdmin}
	creator  = Actor{ID: creatorID, Role: model.RoleUser}
	assignee = Actor{ID: assigneeID, Role: model.RoleUser}
	stranger = Actor{ID: strangerID, Role: model.RoleManager}
)

func TestLeadPredicate(t *testing.T) {
	lead := &model.Lead{CreatedBy: creatorID, AssignedTo: assigneeID}

	tests := []struct {
		name  string
		actor Actor
		op    Operation
		want  bool
	}{
		{"creator reads", creator, OpRead, true},
		{"assignee reads", assignee, OpRead, true},
		{"stranger read denied", stranger, OpRead, false},
		{"creator writes", creator, OpWrite, true},
		{"assignee write denied", assignee, OpWrite, false},
		{"creator deletes", creator, OpDelete, true},
		{"assignee delete denied", assignee, OpDelete, false},
		{"admin writes", admin, OpWrite, true},
		{"admin deletes", admin, OpDelete, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessLead(tt.actor, lead, tt.op))
		})
	}
}

func TestTaskPredicate(t *testing.T) {
	task := &model.Task{CreatedBy: creatorID, AssignedTo: assigneeID}

	// The assignee may update but never delete; the creator may delete but
	// not update.
	assert.True(t, CanAccessTask(assignee, task, OpWrite))
	assert.False(t, CanAccessTask(assignee, task, OpDelete))
	assert.False(t, CanAccessTask(creator, task, OpWrite))
	assert.True(t, CanAccessTask(creator, task, OpDelete))

	assert.True(t, CanAccessTask(assignee, task, OpRead))
	assert.True(t, CanAccessTask(creator, task, OpRead))
	assert.False(t, CanAccessTask(stranger, task, OpRead))
}

func TestMeetingPredicate(t *testing.T) {
	meeting := &model.Meeting{
		CreatedBy: creatorID,
		Attendees: []primitive.ObjectID{assigneeID, strangerID},
	}

	assert.True(t, CanAccessMeeting(creator, meeting, OpRead))
	assert.True(t, CanAccessMeeting(assignee, meeting, OpRead))
	assert.True(t, CanAccessMeeting(stranger, meeting, OpRead))
	assert.False(t, CanAccessMeeting(Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}, meeting, OpRead))

	assert.True(t, CanAccessMeeting(creator, meeting, OpWrite))
	assert.False(t, CanAccessMeeting(assignee, meeting, OpWrite))
	assert.False(t, CanAccessMeeting(stranger, meeting, OpDelete))
}

func TestOwnerOnlyResources(t *testing.T) {
	owner := creator
	customer := &model.Customer{User: owner.ID}
	complaint := &model.Complaint{User: owner.ID}
	document := &model.Document{UploadedBy: owner.ID}

	for _, op := range []Operation{OpRead, OpWrite, OpDelete} {
		assert.True(t, CanAccessCustomer(owner, customer, op))
		assert.False(t, CanAccessCustomer(stranger, customer, op))
		assert.True(t, CanAccessComplaint(owner, complaint, op))
		assert.False(t, CanAccessComplaint(stranger, complaint, op))
		assert.True(t, CanAccessDocument(owner, document, op))
		assert.False(t, CanAccessDocument(stranger, document, op))
	}
}

// Admin passes every ownership predicate regardless of owning fields, for
// every resource that carries an admin bypass.
func TestAdminBypass(t *testing.T) {
	for _, op := range []Operation{OpRead, OpWrite, OpDelete} {
		assert.True(t, CanAccessLead(admin, &model.Lead{CreatedBy: strangerID}, op))
		assert.True(t, CanAccessTask(admin, &model.Task{CreatedBy: strangerID, AssignedTo: strangerID}, op))
		assert.True(t, CanAccessMeeting(admin, &model.Meeting{CreatedBy: strangerID}, op))
		assert.True(t, CanAccessCustomer(admin, &model.Customer{User: strangerID}, op))
		assert.True(t, CanAccessComplaint(admin, &model.Complaint{User: strangerID}, op))
		assert.True(t, CanAccessDocument(admin, &model.Document{UploadedBy: strangerID}, op))
		assert.True(t, CanAccessMail(admin, &model.Mail{UserID: strangerID}, op))
	}
}

// Notifications are the one resource with no admin bypass: strictly the
// recipient's.
func TestNotificationRecipientOnly(t *testing.T) {
	n := &model.Notification{Recipient: creatorID}

	for _, op := range []Operation{OpRead, OpWrite, OpDelete} {
		assert.True(t, CanAccessNotification(creator, n, op))
		assert.False(t, CanAccessNotification(admin, n, op))
		assert.False(t, CanAccessNotification(stranger, n, op))
	}

	filter := NotificationListFilter(admin)
	assert.Equal(t, bson.M{"recipient": adminID}, filter)
}

func TestUserProfilePredicate(t *testing.T) {
	target := &model.User{ID: creatorID}

	assert.True(t, CanAccessUser(stranger, target, OpRead))
	assert.True(t, CanAccessUser(creator, target, OpWrite))
	assert.False(t, CanAccessUser(stranger, target, OpWrite))
	assert.True(t, CanAccessUser(admin, target, OpWrite))
	assert.False(t, CanAccessUser(creator, target, OpDelete))
	assert.True(t, CanAccessUser(admin, target, OpDelete))
}

// matchesFilter evaluates the restricted filter shapes this package emits:
// equality, $or lists and array-contains equality.
func matchesFilter(t *testing.T, filter bson.M, doc map[string]any) bool {
	t.Helper()
	for key, want := range filter {
		if key == "$or" {
			alts, ok := want.(bson.A)
			require.True(t, ok, "$or must hold a bson.A")
			matched := false
			for _, alt := range alts {
				if matchesFilter(t, alt.(bson.M), doc) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
			continue
		}
		got, exists := doc[key]
		if !exists {
			return false
		}
		if ids, ok := got.([]primitive.ObjectID); ok {
			found := false
			for _, id := range ids {
				if id == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

// Listing and single-record access must agree: a lead is selected by the
// list filter exactly when the read predicate passes.
func TestLeadListConsistency(t *testing.T) {
	leads := []*model.Lead{
		{CreatedBy: creatorID, AssignedTo: assigneeID},
		{CreatedBy: assigneeID, AssignedTo: assigneeID},
		{CreatedBy: strangerID, AssignedTo: strangerID},
		{CreatedBy: strangerID, AssignedTo: creatorID},
	}

	for _, actor := range []Actor{creator, assignee, stranger, admin} {
		filter := LeadListFilter(actor)
		for i, lead := range leads {
			doc := map[string]any{
				"createdBy":  lead.CreatedBy,
				"assignedTo": lead.AssignedTo,
			}
			assert.Equal(t,
				CanAccessLead(actor, lead, OpRead),
				matchesFilter(t, filter, doc),
				"actor %s lead %d", actor.Role, i)
		}
	}
}

func TestMeetingListConsistency(t *testing.T) {
	meetings := []*model.Meeting{
		{CreatedBy: creatorID},
		{CreatedBy: strangerID, Attendees: []primitive.ObjectID{creatorID, assigneeID}},
		{CreatedBy: strangerID, Attendees: []primitive.ObjectID{strangerID}},
	}

	for _, actor := range []Actor{creator, assignee, stranger, admin} {
		filter := MeetingListFilter(actor)
		for i, m := range meetings {
			doc := map[string]any{
				"createdBy": m.CreatedBy,
				"attendees": m.Attendees,
			}
			assert.Equal(t,
				CanAccessMeeting(actor, m, OpRead),
				matchesFilter(t, filter, doc),
				"actor %s meeting %d", actor.Role, i)
		}
	}
}

// The task list is deliberately narrower than the read predicate: it is the
// assignee's work queue, while created tasks stay reachable by id.
func TestTaskListScope(t *testing.T) {
	assert.Equal(t, bson.M{"assignedTo": assigneeID}, TaskListFilter(assignee))
	assert.Equal(t, Unfiltered(), TaskListFilter(admin))
}

func TestMailFilters(t *testing.T) {
	f := MailFolderFilter(creator, model.FolderInbox)
	assert.Equal(t, bson.M{"userId": creatorID, "folder": model.FolderInbox}, f)

	// Mailboxes are personal: no admin widening on folder listings.
	f = MailFolderFilter(admin, model.FolderSent)
	assert.Equal(t, bson.M{"userId": adminID, "folder": model.FolderSent}, f)

	starred := MailStarredFilter(creator)
	assert.Equal(t, creatorID, starred["userId"])
	assert.Equal(t, true, starred["starred"])
}
