package service

import (
	"context"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService handles per-user notifications. Every operation is
// recipient-scoped; there is deliberately no admin bypass here.
type NotificationService struct {
	notifications generic.BaseRepository[*model.Notification]
}

func NewNotificationService(notifications generic.BaseRepository[*model.Notification]) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List returns the actor's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, actor authz.Actor) ([]*model.Notification, error) {
	return s.notifications.Find(ctx, authz.NotificationListFilter(actor), bson.D{{Key: "createdAt", Value: -1}})
}

// MarkRead sets the isRead flag. Recipient only.
func (s *NotificationService) MarkRead(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Notification, error) {
	notification, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessNotification(actor, notification, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}
	return s.notifications.UpdateByID(ctx, id, bson.M{"isRead": true})
}

// Delete removes a notification. Recipient only.
func (s *NotificationService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	notification, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessNotification(actor, notification, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.notifications.DeleteByID(ctx, id)
}
