package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens, err := NewTokens("secret", time.Hour)
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	signed, err := tokens.Issue(userID, "admin", "alice@corp.test")
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "alice@corp.test", claims.Email)
}

func TestTokenRejections(t *testing.T) {
	tokens, err := NewTokens("secret", time.Hour)
	require.NoError(t, err)

	_, err = tokens.Verify("not-a-token")
	assert.Error(t, err)

	// Signed with a different secret.
	other, err := NewTokens("different", time.Hour)
	require.NoError(t, err)
	signed, err := other.Issue(primitive.NewObjectID(), "user", "x@y.test")
	require.NoError(t, err)
	_, err = tokens.Verify(signed)
	assert.Error(t, err)

	// Already expired.
	expired, err := NewTokens("secret", -time.Minute)
	require.NoError(t, err)
	signed, err = expired.Issue(primitive.NewObjectID(), "user", "x@y.test")
	require.NoError(t, err)
	_, err = tokens.Verify(signed)
	assert.Error(t, err)
}

func TestNewTokensRequiresSecret(t *testing.T) {
	_, err := NewTokens("", time.Hour)
	assert.Error(t, err)
}
