package http

import (
	"encoding/json"
	"net/http"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/internal/validators"
	"github.com/angaro192/crud-financas/models"
	"github.com/go-chi/chi/v5"
)

// ownerFromContext extracts the authenticated owner of the request. The auth
// middleware guarantees its presence on protected routes; a miss means the
// handler was wired outside the protected group.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (utils.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalServerError}, http.StatusInternalServerError)
		return "", false
	}

	return userID, true
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	transaction, err := validators.ValidateCreateTransaction(req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	created, err := h.services.TransactionService.Create(ctx, userID, transaction)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug().Str("id", created.ID).Msg("transaction created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	filter, err := validators.ParseListQuery(r.URL.Query())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	filter.UserID = userID.String()

	transactions, pagination, err := h.services.TransactionService.List(ctx, filter)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	if transactions == nil {
		transactions = []models.FinancialTransaction{}
	}

	utils.WriteJSON(w, models.ListTransactionsResponse{
		Transactions: transactions,
		Pagination:   pagination,
	}, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	transaction, err := h.services.TransactionService.GetByID(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

// updateTransaction serves both PUT and PATCH: the payload is partial either
// way, and only the fields present are applied.
func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var req models.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	update, err := validators.ValidateUpdateTransaction(req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	updated, err := h.services.TransactionService.Update(ctx, chi.URLParam(r, "id"), userID, update)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug().Str("id", updated.ID).Msg("transaction updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.TransactionService.Delete(ctx, id, userID); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug().Str("id", id).Msg("transaction deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) transactionStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	filter, err := validators.ParseStatsQuery(r.URL.Query())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	filter.UserID = userID.String()

	stats, err := h.services.TransactionService.Stats(ctx, filter)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatsResponse{Stats: stats}, http.StatusOK)
}
