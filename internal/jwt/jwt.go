package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthHeader is the request header carrying the bearer token.
const AuthHeader = "x-auth-token"

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a JWT token for a given userID (uuid.UUID).
// The user identifier is carried as a nested {"user": {"id": ...}} claim.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]any{
			"id": userID.String(),
		},
		"exp": time.Now().Add(j.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetUserID parses the token string and returns the userID (uuid.UUID) if
// the signature and expiry are valid.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	userClaim, ok := claims["user"].(map[string]any)
	if !ok {
		return uuid.Nil, errors.New("user claim not found in token")
	}
	userIDStr, ok := userClaim["id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user id not found in token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id format")
	}
	return userID, nil
}

// GetTokenFromRequest extracts the token string from the x-auth-token header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	token := r.Header.Get(AuthHeader)
	if token == "" {
		return "", errors.New("auth token header missing")
	}
	return token, nil
}
