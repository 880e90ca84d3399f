package service

import (
	"context"
	"testing"
	"time"

	"salesdesk/internal/apperr"
	"salesdesk/internal/auth"
	"salesdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestTokens(t *testing.T) *auth.Tokens {
	t.Helper()
	tokens, err := auth.NewTokens("test-secret", time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestRegister(t *testing.T) {
	repo := newUserRepo()
	svc := NewAuthService(repo, newTestTokens(t))
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &model.RegisterRequest{
		Name: " Alice ", Email: "Alice@Corp.Test", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@corp.test", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret1", user.Password)

	// Registering the same address again, any casing, is rejected.
	_, _, err = svc.Register(ctx, &model.RegisterRequest{
		Name: "Alice2", Email: "ALICE@corp.test", Password: "secret2",
	})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	active := &model.User{ID: primitive.NewObjectID(), Email: "alice@corp.test", Password: hash, Role: model.RoleUser, IsActive: true}
	disabled := &model.User{ID: primitive.NewObjectID(), Email: "bob@corp.test", Password: hash, Role: model.RoleUser}

	svc := NewAuthService(newUserRepo(active, disabled), newTestTokens(t))
	ctx := context.Background()

	user, token, err := svc.Login(ctx, &model.LoginRequest{Email: "alice@corp.test", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, active.ID, user.ID)
	assert.NotEmpty(t, token)

	// Wrong password, unknown address and a deactivated account all fail
	// identically.
	_, _, err = svc.Login(ctx, &model.LoginRequest{Email: "alice@corp.test", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, _, err = svc.Login(ctx, &model.LoginRequest{Email: "nobody@corp.test", Password: "secret1"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, _, err = svc.Login(ctx, &model.LoginRequest{Email: "bob@corp.test", Password: "secret1"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}
