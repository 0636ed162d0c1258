package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/angaro192/crud-financas/internal/service"
	"github.com/angaro192/crud-financas/internal/store"
	"github.com/angaro192/crud-financas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("successful registration", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		req := models.RegisterRequest{Name: "John Doe", Email: "john@example.com", Password: "secret1"}
		created := models.User{
			ID:        testUserID,
			Name:      req.Name,
			Email:     req.Email,
			CreatedAt: time.Now(),
		}

		expectAuthenticated(authSvc)
		authSvc.EXPECT().
			RegisterUser(gomock.Any(), req).
			Return(created, models.Token{SignedString: "issued-token"}, nil)

		recorder := doRequest(t, router, http.MethodPost, "/auth/register", req, true)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var body models.RegisterResponse
		decodeBody(t, recorder, &body)
		assert.Equal(t, "User created successfully", body.Message)
		assert.Equal(t, testUserID, body.User.ID)
		assert.Equal(t, "john@example.com", body.User.Email)
		assert.Equal(t, "issued-token", body.Token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		req := models.RegisterRequest{Name: "John Doe", Email: "taken@example.com", Password: "secret1"}

		expectAuthenticated(authSvc)
		authSvc.EXPECT().
			RegisterUser(gomock.Any(), req).
			Return(models.User{}, models.Token{}, store.ErrEmailAlreadyExists)

		recorder := doRequest(t, router, http.MethodPost, "/auth/register", req, true)

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var body models.ErrorResponse
		decodeBody(t, recorder, &body)
		assert.Equal(t, "User with this email already exists", body.Error)
	})

	t.Run("validation failure carries per-field details", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		expectAuthenticated(authSvc)

		recorder := doRequest(t, router, http.MethodPost, "/auth/register",
			models.RegisterRequest{Email: "not-an-email", Password: "123"}, true)

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var body models.ErrorResponse
		decodeBody(t, recorder, &body)
		assert.Equal(t, "Validation error", body.Error)

		details, ok := body.Details.([]any)
		require.True(t, ok)
		assert.Len(t, details, 3)
	})

	t.Run("registration requires authentication", func(t *testing.T) {
		router, _, _ := newTestHandler(t, ctrl)

		recorder := doRequest(t, router, http.MethodPost, "/auth/register",
			models.RegisterRequest{Name: "John", Email: "john@example.com", Password: "secret1"}, false)

		require.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("successful login", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		req := models.LoginRequest{Email: "john@example.com", Password: "secret1"}

		authSvc.EXPECT().
			Login(gomock.Any(), req).
			Return(
				models.User{ID: testUserID, Name: "John Doe", Email: req.Email},
				models.Token{SignedString: "issued-token"},
				nil,
			)

		recorder := doRequest(t, router, http.MethodPost, "/auth/login", req, false)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body models.LoginResponse
		decodeBody(t, recorder, &body)
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, testUserID, body.User.ID)
		assert.Equal(t, "issued-token", body.Token)
		assert.True(t, body.User.CreatedAt.IsZero())
	})

	t.Run("wrong password and unknown email answer identically", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		wrongPassword := models.LoginRequest{Email: "john@example.com", Password: "wrong"}
		unknownEmail := models.LoginRequest{Email: "nobody@example.com", Password: "secret1"}

		authSvc.EXPECT().
			Login(gomock.Any(), wrongPassword).
			Return(models.User{}, models.Token{}, service.ErrInvalidCredentials)
		authSvc.EXPECT().
			Login(gomock.Any(), unknownEmail).
			Return(models.User{}, models.Token{}, service.ErrInvalidCredentials)

		first := doRequest(t, router, http.MethodPost, "/auth/login", wrongPassword, false)
		second := doRequest(t, router, http.MethodPost, "/auth/login", unknownEmail, false)

		require.Equal(t, http.StatusUnauthorized, first.Code)
		require.Equal(t, http.StatusUnauthorized, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())

		var body models.ErrorResponse
		decodeBody(t, first, &body)
		assert.Equal(t, "Invalid credentials", body.Error)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		router, _, _ := newTestHandler(t, ctrl)

		recorder := doRequest(t, router, http.MethodPost, "/auth/login", "not-an-object", false)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the authenticated account", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		expectAuthenticated(authSvc)
		authSvc.EXPECT().
			GetUserByID(gomock.Any(), gomock.Any()).
			Return(models.User{ID: testUserID, Name: "John Doe", Email: testUserEmail, CreatedAt: time.Now()}, nil)

		recorder := doRequest(t, router, http.MethodGet, "/auth/me", nil, true)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body models.MeResponse
		decodeBody(t, recorder, &body)
		assert.Equal(t, testUserID, body.User.ID)
		assert.Equal(t, testUserEmail, body.User.Email)
	})

	t.Run("account deleted after token issuance", func(t *testing.T) {
		router, authSvc, _ := newTestHandler(t, ctrl)

		expectAuthenticated(authSvc)
		authSvc.EXPECT().
			GetUserByID(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrNoUserWasFound)

		recorder := doRequest(t, router, http.MethodGet, "/auth/me", nil, true)

		require.Equal(t, http.StatusNotFound, recorder.Code)

		var body models.ErrorResponse
		decodeBody(t, recorder, &body)
		assert.Equal(t, "User not found", body.Error)
	})
}

func TestHandler_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, authSvc, _ := newTestHandler(t, ctrl)

	expectAuthenticated(authSvc)
	authSvc.EXPECT().
		ListUsers(gomock.Any()).
		Return([]models.User{
			{ID: "id-1", Name: "Alice", Email: "alice@example.com"},
			{ID: "id-2", Name: "Bob", Email: "bob@example.com"},
		}, nil)

	recorder := doRequest(t, router, http.MethodGet, "/users", nil, true)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body models.UsersResponse
	decodeBody(t, recorder, &body)
	require.Len(t, body.Users, 2)

	// The listing exposes no identifiers.
	assert.Empty(t, body.Users[0].ID)
	assert.Equal(t, "alice@example.com", body.Users[0].Email)
}

func TestHandler_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, authSvc, _ := newTestHandler(t, ctrl)

	req := models.RegisterRequest{Name: "New User", Email: "new@example.com", Password: "secret1"}

	expectAuthenticated(authSvc)
	authSvc.EXPECT().
		RegisterUser(gomock.Any(), req).
		Return(
			models.User{ID: "some-id", Name: req.Name, Email: req.Email, CreatedAt: time.Now()},
			models.Token{SignedString: "unused-token"},
			nil,
		)

	recorder := doRequest(t, router, http.MethodPost, "/users", req, true)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body models.RegisterResponse
	decodeBody(t, recorder, &body)
	assert.Equal(t, "User created successfully", body.Message)
	assert.Equal(t, "new@example.com", body.User.Email)

	// The provisioning variant never leaks a token or an identifier.
	assert.Empty(t, body.Token)
	assert.Empty(t, body.User.ID)
}
