// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/service"
	"github.com/angaro192/crud-financas/internal/store"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/internal/validators"
	"github.com/angaro192/crud-financas/models"
)

// errorStatusMap translates well-known service and store errors into the
// HTTP statuses of the error taxonomy. Anything not listed is an internal
// fault and maps to 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrInvalidTokenSubject: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:  http.StatusBadRequest,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrTransactionNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the wire message for every error of the taxonomy.
// Internal detail never crosses this boundary: unmapped errors answer with
// the generic internal-error message, the full cause is logged server-side.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:  msgInvalidCredentials,
	service.ErrTokenIsExpired:      msgTokenExpired,
	service.ErrInvalidToken:        msgInvalidToken,
	service.ErrInvalidTokenSubject: msgInvalidTokenFormat,

	store.ErrEmailAlreadyExists:  msgEmailAlreadyExists,
	store.ErrNoUserWasFound:      msgUserNotFound,
	store.ErrTransactionNotFound: msgTransactionNotFound,
}

// respondWithError writes the JSON error body matching err: validation
// failures carry their per-field details, mapped sentinels their taxonomy
// message and status, everything else a generic 500.
func (h *Handler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var violations validators.ValidationErrors
	if errors.As(err, &violations) {
		log.Debug().Err(err).Msg("request failed validation")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgValidationError, Details: violations}, http.StatusBadRequest)
		return
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			message, ok := errorMessageMap[target]
			if !ok {
				message = msgInternalServerError
			}

			log.Err(err).Int("status", status).Msg("request failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalServerError}, http.StatusInternalServerError)
}
