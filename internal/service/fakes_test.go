package service

import (
	"context"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo is an in-memory BaseRepository used by the service tests. Filter
// matching and field application are injected per entity type, covering only
// the filters and update fields the services actually emit.
type memRepo[T generic.Entity] struct {
	docs        []T
	match       func(doc T, filter bson.M) bool
	apply       func(doc T, fields bson.M)
	createCalls int
	failCreate  int // 1-based Create call index that fails; 0 disables
}

func (r *memRepo[T]) Create(_ context.Context, entity T) error {
	r.createCalls++
	if r.failCreate != 0 && r.createCalls == r.failCreate {
		return apperr.ErrValidation
	}
	entity.SetID(primitive.NewObjectID())
	r.docs = append(r.docs, entity)
	return nil
}

func (r *memRepo[T]) FindByID(_ context.Context, id primitive.ObjectID) (T, error) {
	for _, doc := range r.docs {
		if doc.GetID() == id {
			return doc, nil
		}
	}
	var zero T
	return zero, apperr.ErrNotFound
}

func (r *memRepo[T]) FindOne(_ context.Context, filter bson.M) (T, error) {
	for _, doc := range r.docs {
		if r.match(doc, filter) {
			return doc, nil
		}
	}
	var zero T
	return zero, apperr.ErrNotFound
}

func (r *memRepo[T]) Find(_ context.Context, filter bson.M, _ bson.D) ([]T, error) {
	out := make([]T, 0)
	for _, doc := range r.docs {
		if len(filter) == 0 || r.match(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *memRepo[T]) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (T, error) {
	doc, err := r.FindByID(context.Background(), id)
	if err != nil {
		return doc, err
	}
	r.apply(doc, fields)
	return doc, nil
}

func (r *memRepo[T]) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for i, doc := range r.docs {
		if doc.GetID() == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func newUserRepo(seed ...*model.User) *memRepo[*model.User] {
	r := &memRepo[*model.User]{
		match: func(u *model.User, filter bson.M) bool {
			if email, ok := filter["email"]; ok && u.Email != email {
				return false
			}
			return true
		},
		apply: func(u *model.User, fields bson.M) {
			if v, ok := fields["name"]; ok {
				u.Name = v.(string)
			}
			if v, ok := fields["email"]; ok {
				u.Email = v.(string)
			}
			if v, ok := fields["role"]; ok {
				u.Role = v.(string)
			}
			if v, ok := fields["isActive"]; ok {
				u.IsActive = v.(bool)
			}
			if v, ok := fields["password"]; ok {
				u.Password = v.(string)
			}
		},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newMailRepo(seed ...*model.Mail) *memRepo[*model.Mail] {
	r := &memRepo[*model.Mail]{
		match: func(m *model.Mail, filter bson.M) bool {
			if v, ok := filter["userId"]; ok && m.UserID != v {
				return false
			}
			if v, ok := filter["starred"]; ok && m.Starred != v {
				return false
			}
			if v, ok := filter["folder"]; ok {
				if cond, isCond := v.(bson.M); isCond {
					if m.Folder == cond["$ne"] {
						return false
					}
				} else if m.Folder != v {
					return false
				}
			}
			return true
		},
		apply: func(m *model.Mail, fields bson.M) {
			if v, ok := fields["read"]; ok {
				m.Read = v.(bool)
			}
			if v, ok := fields["starred"]; ok {
				m.Starred = v.(bool)
			}
			if v, ok := fields["folder"]; ok {
				m.Folder = v.(string)
			}
		},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newLeadRepo(seed ...*model.Lead) *memRepo[*model.Lead] {
	r := &memRepo[*model.Lead]{
		match: func(*model.Lead, bson.M) bool { return true },
		apply: func(l *model.Lead, fields bson.M) {
			if v, ok := fields["status"]; ok {
				l.Status = v.(string)
			}
			if v, ok := fields["assignedTo"]; ok {
				l.AssignedTo = v.(primitive.ObjectID)
			}
			if v, ok := fields["name"]; ok {
				l.Name = v.(string)
			}
			if v, ok := fields["value"]; ok {
				l.Value = v.(float64)
			}
		},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newMeetingRepo(seed ...*model.Meeting) *memRepo[*model.Meeting] {
	r := &memRepo[*model.Meeting]{
		match: func(*model.Meeting, bson.M) bool { return true },
		apply: func(m *model.Meeting, fields bson.M) {
			if v, ok := fields["title"]; ok {
				m.Title = v.(string)
			}
			if v, ok := fields["attendees"]; ok {
				m.Attendees = v.([]primitive.ObjectID)
			}
		},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newTaskRepo(seed ...*model.Task) *memRepo[*model.Task] {
	r := &memRepo[*model.Task]{
		match: func(t *model.Task, filter bson.M) bool {
			if v, ok := filter["assignedTo"]; ok && t.AssignedTo != v {
				return false
			}
			return true
		},
		apply: func(t *model.Task, fields bson.M) {
			if v, ok := fields["title"]; ok {
				t.Title = v.(string)
			}
			if v, ok := fields["status"]; ok {
				t.Status = v.(string)
			}
			if v, ok := fields["completedAt"]; ok {
				at := v.(time.Time)
				t.CompletedAt = &at
			}
		},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newDocumentRepo(seed ...*model.Document) *memRepo[*model.Document] {
	r := &memRepo[*model.Document]{
		match: func(d *model.Document, filter bson.M) bool {
			if v, ok := filter["uploadedBy"]; ok && d.UploadedBy != v {
				return false
			}
			if v, ok := filter["lead"]; ok && d.Lead != v {
				return false
			}
			if v, ok := filter["contact"]; ok && d.Contact != v {
				return false
			}
			return true
		},
		apply: func(*model.Document, bson.M) {},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newActivityRepo(seed ...*model.Activity) *memRepo[*model.Activity] {
	r := &memRepo[*model.Activity]{
		match: func(a *model.Activity, filter bson.M) bool {
			if v, ok := filter["user"]; ok && a.User != v {
				return false
			}
			if v, ok := filter["lead"]; ok && a.Lead != v {
				return false
			}
			if v, ok := filter["contact"]; ok && a.Contact != v {
				return false
			}
			return true
		},
		apply: func(*model.Activity, bson.M) {},
	}
	r.docs = append(r.docs, seed...)
	return r
}

func newNotificationRepo(seed ...*model.Notification) *memRepo[*model.Notification] {
	r := &memRepo[*model.Notification]{
		match: func(n *model.Notification, filter bson.M) bool {
			if v, ok := filter["recipient"]; ok && n.Recipient != v {
				return false
			}
			return true
		},
		apply: func(n *model.Notification, fields bson.M) {
			if v, ok := fields["isRead"]; ok {
				n.IsRead = v.(bool)
			}
		},
	}
	r.docs = append(r.docs, seed...)
	return r
}
