package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email, used as login
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,max=72"`
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed access token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Always "bearer"
	// default: bearer
	TokenType string `json:"token_type"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.User "Registered user"
// @Failure 302 {object} handlers.ErrorResponse "User already exists"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} handlers.ErrorResponse "Validation failed"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewTokenHandler returns an HTTP handler issuing access tokens.
// @Summary Obtain an access token
// @Description OAuth2 password flow: form fields username (the email) and password
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenResponse "Access token"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect email or password"
// @Failure 422 {object} handlers.ErrorResponse "Missing form fields"
// @Router /users/token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid form body"})
			return
		}

		username := r.PostForm.Get("username")
		password := r.PostForm.Get("password")
		if username == "" || password == "" {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "username and password are required"})
			return
		}

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// NewMeHandler returns an HTTP handler describing the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /users/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetPrincipalFromContext(r.Context())
		if user == nil {
			writeError(w, services.ErrUnauthenticated)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
