package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, uuid.New())
	assert.NoError(t, err)

	got, err := New("secret-b", time.Minute).GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	got, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidHeader", "mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptestRequest()
			if tt.header != "" {
				req.Header.Set(AuthHeader, tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func httptestRequest() *http.Request {
	req, _ := http.NewRequest(http.MethodGet, "http://localhost/", nil)
	return req
}
