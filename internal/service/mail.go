package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MailService handles the internal mailbox. Mail here is purely a stored
// record; nothing leaves the system over SMTP.
type MailService struct {
	mail  generic.BaseRepository[*model.Mail]
	users generic.BaseRepository[*model.User]
}

func NewMailService(mail generic.BaseRepository[*model.Mail], users generic.BaseRepository[*model.User]) *MailService {
	return &MailService{mail: mail, users: users}
}

// Inbox returns the actor's inbox copies, newest first.
func (s *MailService) Inbox(ctx context.Context, actor authz.Actor) ([]*model.Mail, error) {
	return s.mail.Find(ctx, authz.MailFolderFilter(actor, model.FolderInbox), bson.D{{Key: "timestamp", Value: -1}})
}

// Sent returns the actor's sent copies, newest first.
func (s *MailService) Sent(ctx context.Context, actor authz.Actor) ([]*model.Mail, error) {
	return s.mail.Find(ctx, authz.MailFolderFilter(actor, model.FolderSent), bson.D{{Key: "timestamp", Value: -1}})
}

// Starred returns the actor's starred copies across folders, newest first.
func (s *MailService) Starred(ctx context.Context, actor authz.Actor) ([]*model.Mail, error) {
	return s.mail.Find(ctx, authz.MailStarredFilter(actor), bson.D{{Key: "timestamp", Value: -1}})
}

// Get returns one mail copy. Copy owner or admin.
func (s *MailService) Get(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Mail, error) {
	mail, err := s.mail.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessMail(actor, mail, authz.OpRead) {
		return nil, apperr.ErrNotAuthorized
	}
	return mail, nil
}

// Send stores the sender's "sent" copy and, when the recipient address
// belongs to a known user, that user's "inbox" copy. The two writes are
// independent: if the inbox write fails the sent copy stays committed and
// the error is surfaced. Returns the sent copy.
func (s *MailService) Send(ctx context.Context, actor authz.Actor, req *model.SendMailRequest) (*model.Mail, error) {
	to := strings.ToLower(strings.TrimSpace(req.To))
	now := time.Now()

	sent := &model.Mail{
		From:      actor.Email,
		To:        to,
		Subject:   req.Subject,
		Body:      req.Body,
		Timestamp: now,
		Folder:    model.FolderSent,
		UserID:    actor.ID,
	}
	if err := s.mail.Create(ctx, sent); err != nil {
		return nil, fmt.Errorf("failed to store sent copy: %w", err)
	}

	recipient, err := s.users.FindOne(ctx, bson.M{"email": to})
	if err != nil {
		if apperr.IsNotFound(err) {
			// External address: only the sent copy exists.
			return sent, nil
		}
		return sent, fmt.Errorf("failed to look up recipient: %w", err)
	}

	inbox := &model.Mail{
		From:      actor.Email,
		To:        to,
		Subject:   req.Subject,
		Body:      req.Body,
		Timestamp: now,
		Folder:    model.FolderInbox,
		UserID:    recipient.ID,
	}
	if err := s.mail.Create(ctx, inbox); err != nil {
		// No compensating delete of the sent copy; the one-sided send is a
		// known accepted inconsistency.
		return sent, fmt.Errorf("failed to deliver inbox copy: %w", err)
	}
	return sent, nil
}

// ToggleRead flips the read flag. Copy owner or admin.
func (s *MailService) ToggleRead(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Mail, error) {
	mail, err := s.mail.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessMail(actor, mail, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}
	return s.mail.UpdateByID(ctx, id, bson.M{"read": !mail.Read})
}

// ToggleStar flips the starred flag. Copy owner or admin.
func (s *MailService) ToggleStar(ctx context.Context, actor authz.Actor, id primitive.ObjectID) (*model.Mail, error) {
	mail, err := s.mail.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessMail(actor, mail, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}
	return s.mail.UpdateByID(ctx, id, bson.M{"starred": !mail.Starred})
}

// Delete moves a copy to trash, or removes it permanently when it is
// already there. A second delete from trash reports NotFound.
func (s *MailService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	mail, err := s.mail.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessMail(actor, mail, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}

	if mail.Folder == model.FolderTrash {
		return s.mail.DeleteByID(ctx, id)
	}
	_, err = s.mail.UpdateByID(ctx, id, bson.M{"folder": model.FolderTrash})
	return err
}
