package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/auth"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users  generic.BaseRepository[*model.User]
	tokens *auth.Tokens
}

func NewAuthService(users generic.BaseRepository[*model.User], tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account with the default user role and returns the
// stored user together with a session token.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindOne(ctx, bson.M{"email": email}); err == nil {
		return nil, "", fmt.Errorf("user %w", apperr.ErrDuplicate)
	} else if !apperr.IsNotFound(err) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hash,
		Role:      model.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a session token. Inactive accounts
// are rejected the same way as bad credentials.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, "", fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive || !auth.VerifyPassword(req.Password, user.Password) {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}
