package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angaro192/crud-financas/internal/service"
	"github.com/angaro192/crud-financas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	recorder := doRequest(t, router, http.MethodGet, "/auth/me", nil, false)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body models.ErrorResponse
	decodeBody(t, recorder, &body)
	assert.Equal(t, "Access token is required", body.Error)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "scheme without token", header: "Bearer "},
		{name: "bare token without scheme", header: "some-token"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router, _, _ := newTestHandler(t, ctrl)

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.Header.Set("Authorization", test.header)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusUnauthorized, recorder.Code)

			var body models.ErrorResponse
			decodeBody(t, recorder, &body)
			assert.Equal(t, "Access token is required", body.Error)
		})
	}
}

func TestAuthMiddleware_TokenOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		parseErr    error
		wantMessage string
	}{
		{name: "invalid token", parseErr: service.ErrInvalidToken, wantMessage: "Invalid token"},
		{name: "expired token", parseErr: service.ErrTokenIsExpired, wantMessage: "Token expired"},
		{name: "non-UUID subject", parseErr: service.ErrInvalidTokenSubject, wantMessage: "Invalid token format"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router, authSvc, _ := newTestHandler(t, ctrl)

			authSvc.EXPECT().
				ParseToken(testToken).
				Return(models.Token{}, test.parseErr)

			recorder := doRequest(t, router, http.MethodGet, "/auth/me", nil, true)

			require.Equal(t, http.StatusUnauthorized, recorder.Code)

			var body models.ErrorResponse
			decodeBody(t, recorder, &body)
			assert.Equal(t, test.wantMessage, body.Error)
		})
	}
}

func TestAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, authSvc, _ := newTestHandler(t, ctrl)

	expectAuthenticated(authSvc)
	authSvc.EXPECT().
		GetUserByID(gomock.Any(), gomock.Any()).
		Return(models.User{ID: testUserID, Name: "John Doe", Email: testUserEmail}, nil)

	recorder := doRequest(t, router, http.MethodGet, "/auth/me", nil, true)

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	t.Run("well-formed bearer token", func(t *testing.T) {
		token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("empty header", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("")
		require.ErrorIs(t, err, ErrEmptyAuthorizationHeader)
	})

	t.Run("missing scheme", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("abc.def.ghi")
		require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})

	t.Run("empty token value", func(t *testing.T) {
		_, err := getTokenFromAuthHeader("Bearer ")
		require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
	})
}
