package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/models"
	"github.com/movielog/movielog/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, firstName, lastName, email, phone, password string) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"lastName"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Phone number
	// required: true
	// default: +15550100
	Phone string `json:"phone"`

	// Password, 6 characters minimum
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful registration or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Created or authenticated user
	User *models.UserDB `json:"user"`
}

// FieldError describes a single invalid request field
// swagger:model FieldError
type FieldError struct {
	// Field name
	// default: email
	Field string `json:"field"`

	// Error message
	// default: Please include a valid email
	Message string `json:"msg"`
}

// ValidationErrorResponse carries field-level validation errors
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: User already exists
	Error string `json:"error"`
}

// validateRegisterRequest checks required fields the way the API contract
// demands: all fields present, a plausible email, password of 6 or more.
func validateRegisterRequest(req RegisterRequest) []FieldError {
	var fieldErrors []FieldError
	if strings.TrimSpace(req.FirstName) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "firstName", Message: "First Name is required"})
	}
	if strings.TrimSpace(req.LastName) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "lastName", Message: "Last Name is required"})
	}
	if !strings.Contains(req.Email, "@") {
		fieldErrors = append(fieldErrors, FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if strings.TrimSpace(req.Phone) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "phone", Message: "Phone number is required"})
	}
	if len(req.Password) < 6 {
		fieldErrors = append(fieldErrors, FieldError{Field: "password", Message: "Please enter a password with 6 or more characters"})
	}
	return fieldErrors
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and returns a token. Ensures unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.AuthResponse "Token and created user"
// @Failure 400 {object} handlers.RegisterErrorResponse "User already exists / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if fieldErrors := validateRegisterRequest(req); len(fieldErrors) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: fieldErrors})
			return
		}

		token, user, err := svc.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Phone, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "User already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AuthResponse{
			Token: token,
			User:  user,
		})
	}
}
