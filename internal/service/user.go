package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/auth"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles user administration and profile management.
type UserService struct {
	users generic.BaseRepository[*model.User]
}

func NewUserService(users generic.BaseRepository[*model.User]) *UserService {
	return &UserService{users: users}
}

// List returns all users, newest first. Admin only.
func (s *UserService) List(ctx context.Context, actor authz.Actor) ([]*model.User, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrNotAuthorized
	}
	return s.users.Find(ctx, nil, bson.D{{Key: "createdAt", Value: -1}})
}

// Create adds a new user with an explicit role. Admin only.
func (s *UserService) Create(ctx context.Context, actor authz.Actor, req *model.CreateUserRequest) (*model.User, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrNotAuthorized
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.FindOne(ctx, bson.M{"email": email}); err == nil {
		return nil, fmt.Errorf("user %w", apperr.ErrDuplicate)
	} else if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hash,
		Role:      req.Role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Get returns a single profile. Any authenticated actor may view any profile.
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update changes profile fields. Self or admin; the role and isActive fields
// only apply when the actor is an admin.
func (s *UserService) Update(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.UpdateUserRequest) (*model.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccessUser(actor, target, authz.OpWrite) {
		return nil, apperr.ErrNotAuthorized
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != target.Email {
			if _, err := s.users.FindOne(ctx, bson.M{"email": email}); err == nil {
				return nil, fmt.Errorf("user %w", apperr.ErrDuplicate)
			} else if !apperr.IsNotFound(err) {
				return nil, fmt.Errorf("failed to check existing user: %w", err)
			}
		}
		fields["email"] = email
	}
	if actor.IsAdmin() {
		if req.Role != "" {
			fields["role"] = req.Role
		}
		if req.IsActive != nil {
			fields["isActive"] = *req.IsActive
		}
	}
	if len(fields) == 0 {
		return target, nil
	}
	return s.users.UpdateByID(ctx, id, fields)
}

// ChangePassword verifies the current password and stores a new hash.
// Strictly self-service: even admins cannot change another user's password.
func (s *UserService) ChangePassword(ctx context.Context, actor authz.Actor, id primitive.ObjectID, req *model.ChangePasswordRequest) error {
	if actor.ID != id {
		return apperr.ErrNotAuthorized
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(req.CurrentPassword, user.Password) {
		return fmt.Errorf("current password is incorrect: %w", apperr.ErrValidation)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	_, err = s.users.UpdateByID(ctx, id, bson.M{"password": hash})
	return err
}

// Delete removes a user. Admin only.
func (s *UserService) Delete(ctx context.Context, actor authz.Actor, id primitive.ObjectID) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccessUser(actor, target, authz.OpDelete) {
		return apperr.ErrNotAuthorized
	}
	return s.users.DeleteByID(ctx, id)
}
