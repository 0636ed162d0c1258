package http

import (
	"encoding/json"
	"net/http"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/internal/validators"
	"github.com/angaro192/crud-financas/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := validators.ValidateRegister(req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgUserCreatedSuccessfully,
		User: models.PublicUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Token: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := validators.ValidateLogin(req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoginSuccessful,
		User: models.PublicUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || !utils.IsValidUUID(userID.String()) {
		log.Warn().Msg("authenticated request carries no valid user id")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidUserIDFormat}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		User: models.PublicUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.AuthService.ListUsers(ctx)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	// The listing exposes no identifiers, only public profile fields.
	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, models.PublicUser{
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}

	utils.WriteJSON(w, models.UsersResponse{Users: publicUsers}, http.StatusOK)
}

// createUser is the admin-provisioning variant of register: same rules and
// duplicate-email handling, but the response carries no token.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := validators.ValidateRegister(req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	user, _, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user provisioned")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgUserCreatedSuccessfully,
		User: models.PublicUser{
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, http.StatusCreated)
}
