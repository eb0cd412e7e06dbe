package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	alice := &models.User{ID: 1, Email: "alice@example.com"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, auth *MockAuthenticator)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, services.ErrUnauthenticated)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "StorageFailure",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockTokener(ctrl)
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockTokener, mockAuth)

			// Wrap a next handler to check if it was called
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, alice, GetPrincipalFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

				var body map[string]string
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.NotEmpty(t, body["error"])
			}

			if tt.expectedStatus == http.StatusInternalServerError {
				assert.Empty(t, rr.Header().Get("WWW-Authenticate"))

				var body map[string]string
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "Internal server error", body["error"])
			}
		})
	}
}

func TestGetPrincipalFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetPrincipalFromContext(req.Context()))
}
