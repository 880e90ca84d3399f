package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims is the decoded identity carried by a session token.
type Claims struct {
	UserID primitive.ObjectID
	Role   string
	Email  string
}

// Tokens issues and verifies signed session tokens (HS256).
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the user's id, role and email.
func (t *Tokens) Issue(userID primitive.ObjectID, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID.Hex(),
		"role":   role,
		"email":  email,
		"exp":    time.Now().Add(t.ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token string and returns its claims.
// Any parse, signature or expiry failure comes back as a single opaque error.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	idHex, _ := mapClaims["userId"].(string)
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token claims")
	}

	role, _ := mapClaims["role"].(string)
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: userID, Role: role, Email: email}, nil
}
