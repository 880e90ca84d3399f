package service

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"
	"salesdesk/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentService handles document-record business logic. Storage of the
// underlying file is outside this service; only the metadata record lives
// here.
type DocumentService struct {
	documents generic.BaseRepository[*model.Document]
}

func NewDocumentService(documents generic.BaseRepository[*model.Document]) *DocumentService {
	return &DocumentService{documents: documents}
}

// List returns the actor's documents (all for admins), newest first.
func (s *DocumentService) List(ctx context.Context, actor authz.Actor) ([]*model.Document, error) {
	return s.documents.Find(ctx, authz.DocumentListFilter(actor), bson.D{{Key: "createdAt", Value: -1}})
}

// Create stores a new document record uploaded by the actor.
func (s *DocumentService) Create(ctx context.Context, actor authz.Actor, req *model.CreateDocumentRequest) (*model.Document, error) {
	lead, err := util.ParseOptionalObjectID(req.Lead)
	if err != nil {
		return nil, fmt.Errorf("lead: %w", apperr.ErrValidation)
	}
	contact, err := util.ParseOptionalObjectID(req.Contact)
	if err != nil {
		return nil, fmt.Errorf("contact: %w", apperr.ErrValidation)
	}

	doc := &model.Document{
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		FilePath:     req.FilePath,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		Category:     defaultString(req.Category, "other"),
		Lead:         lead,
		Contact:      contact,
		UploadedBy:   actor.ID,
		CreatedAt:    time.Now(),
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// ListFor returns documents attached to a lead or contact, newest first.
// kind is "lead" or "contact". Scoped to the actor's own uploads (all for
// admins), same as the flat listing.
func (s *DocumentService) ListFor(ctx context.Context, actor authz.Actor, kind string, id primitive.ObjectID) ([]*model.Document, error) {
	field := "contact"
	if kind == "lead" {
		field = "lead"
	}
	filter := authz.DocumentListFilter(actor)
	filter[field] = id
	return s.documents.Find(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}

// Delete removes a document record. Uploader or admin.
func (s *DocumentService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessDocument(actor, doc, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.documents.DeleteByID(ctx, id)
}
