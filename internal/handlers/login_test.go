package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/movielog/movielog/internal/handlers"
	"github.com/movielog/movielog/internal/models"
	"github.com/movielog/movielog/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *handlers.MockLoginer)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			body: `{"email":"alice@example.com","password":"secret1"}`,
			mockSetup: func(m *handlers.MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret1").
					Return("signed-token", &models.UserDB{UserID: userID}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp handlers.AuthResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, userID, resp.User.UserID)
			},
		},
		{
			name: "InvalidCredentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			mockSetup: func(m *handlers.MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp handlers.LoginErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Invalid Credentials", resp.Error)
			},
		},
		{
			name:           "InvalidJSON",
			body:           "{not json",
			mockSetup:      func(m *handlers.MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			body: `{"email":"alice@example.com","password":"secret1"}`,
			mockSetup: func(m *handlers.MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret1").
					Return("", nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := handlers.NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handlers.NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
