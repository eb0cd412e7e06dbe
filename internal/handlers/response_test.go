package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

var (
	admin  = &models.User{ID: 1, Email: "admin@example.com", IsAdmin: true}
	member = &models.User{ID: 2, Email: "member@example.com"}
)

// newRequest builds a request carrying the principal and the {id} path parameter.
func newRequest(method, target, body string, principal *models.User, id string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := req.Context()
	if principal != nil {
		ctx = middlewares.WithPrincipal(ctx, principal)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Error
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{services.ErrInvalidCredentials, http.StatusUnauthorized, services.ErrInvalidCredentials.Error()},
		{services.ErrForbidden, http.StatusForbidden, "you do not have enough permissions"},
		{services.ErrRecipeNotFound, http.StatusNotFound, "recipe not found"},
		{services.ErrIngredientExists, http.StatusFound, "ingredient already exists"},
		{services.ErrIngredientCategoryInUse, http.StatusConflict, "ingredient category is in use"},
		{errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, decodeError(t, rr))

			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"9999", 9999, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rr := httptest.NewRecorder()
			id, ok := parseID(rr, newRequest(http.MethodGet, "/", "", nil, tt.raw))

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
			if !ok {
				assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantError  string
	}{
		{name: "valid", body: `{"title":"Milk","category_id":1}`, wantOK: true},
		{name: "malformed", body: `{"title":`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
		{name: "missing title", body: `{"category_id":1}`, wantStatus: http.StatusUnprocessableEntity, wantError: "title: failed on required"},
		{name: "bad category", body: `{"title":"Milk","category_id":-1}`, wantStatus: http.StatusUnprocessableEntity, wantError: "category_id: failed on gt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			var req IngredientRequest

			ok := decodeJSON(rr, newRequest(http.MethodPost, "/", tt.body, nil, ""), &req)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, tt.wantStatus, rr.Code)
				assert.Equal(t, tt.wantError, decodeError(t, rr))
			}
		})
	}
}
