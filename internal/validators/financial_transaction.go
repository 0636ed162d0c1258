// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"net/url"
	"strconv"
	"time"

	"github.com/angaro192/crud-financas/models"
)

// Validation message constants for financial-transaction payloads.
const (
	msgValorPositive   = "Valor must be positive"
	msgValorPrecision  = "Valor can have at most 3 decimal places"
	msgEmpresaRequired = "Empresa is required"
	msgEmpresaTooLong  = "Empresa must be less than 255 characters"
	msgInvalidData     = "Data must be a valid ISO datetime string"
	msgInvalidTipo     = `Tipo must be either "Despesa" or "Receita"`
	msgInvalidPage     = "Page must be an integer greater than or equal to 1"
	msgInvalidLimit    = "Limit must be an integer between 1 and 100"
)

// maxEmpresaLength bounds the counterparty name.
const maxEmpresaLength = 255

// Pagination defaults and bounds for the listing query.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ValidateCreateTransaction checks a create payload and returns its
// normalized domain form (parsed date, validated category). All violations
// are aggregated; the returned transaction is meaningful only when the
// error is nil. ID and UserID are left for the caller to assign.
func ValidateCreateTransaction(req models.CreateTransactionRequest) (models.FinancialTransaction, error) {
	var violations ValidationErrors

	if !req.Valor.IsPositive() {
		violations = violations.add("valor", msgValorPositive)
	} else if !req.Valor.Equal(req.Valor.Round(3)) {
		violations = violations.add("valor", msgValorPrecision)
	}

	if req.Empresa == "" {
		violations = violations.add("empresa", msgEmpresaRequired)
	} else if len(req.Empresa) > maxEmpresaLength {
		violations = violations.add("empresa", msgEmpresaTooLong)
	}

	data, err := time.Parse(time.RFC3339, req.Data)
	if err != nil {
		violations = violations.add("data", msgInvalidData)
	}

	if !req.Tipo.IsValid() {
		violations = violations.add("tipo", msgInvalidTipo)
	}

	if len(violations) > 0 {
		return models.FinancialTransaction{}, violations
	}

	return models.FinancialTransaction{
		Valor:   req.Valor,
		Empresa: req.Empresa,
		Data:    data,
		Tipo:    req.Tipo,
	}, nil
}

// ValidateUpdateTransaction checks a partial update payload. Each present
// field obeys the same rule as in the create payload; absent fields are
// skipped. The returned update is meaningful only when the error is nil.
func ValidateUpdateTransaction(req models.UpdateTransactionRequest) (models.TransactionUpdate, error) {
	var violations ValidationErrors
	var update models.TransactionUpdate

	if req.Valor != nil {
		switch {
		case !req.Valor.IsPositive():
			violations = violations.add("valor", msgValorPositive)
		case !req.Valor.Equal(req.Valor.Round(3)):
			violations = violations.add("valor", msgValorPrecision)
		default:
			update.Valor = req.Valor
		}
	}

	if req.Empresa != nil {
		switch {
		case *req.Empresa == "":
			violations = violations.add("empresa", msgEmpresaRequired)
		case len(*req.Empresa) > maxEmpresaLength:
			violations = violations.add("empresa", msgEmpresaTooLong)
		default:
			update.Empresa = req.Empresa
		}
	}

	if req.Data != nil {
		data, err := time.Parse(time.RFC3339, *req.Data)
		if err != nil {
			violations = violations.add("data", msgInvalidData)
		} else {
			update.Data = &data
		}
	}

	if req.Tipo != nil {
		if !req.Tipo.IsValid() {
			violations = violations.add("tipo", msgInvalidTipo)
		} else {
			update.Tipo = req.Tipo
		}
	}

	if len(violations) > 0 {
		return models.TransactionUpdate{}, violations
	}

	return update, nil
}

// ParseListQuery validates the listing query string and returns a normalized
// filter: page ≥ 1 (default 1), limit 1–100 (default 10), optional exact
// tipo, optional empresa substring, optional inclusive startDate/endDate
// bounds. UserID is left for the caller to set from the authenticated
// context.
func ParseListQuery(values url.Values) (models.TransactionFilter, error) {
	var violations ValidationErrors

	filter := models.TransactionFilter{
		Page:  defaultPage,
		Limit: defaultLimit,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			violations = violations.add("page", msgInvalidPage)
		} else {
			filter.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			violations = violations.add("limit", msgInvalidLimit)
		} else {
			filter.Limit = limit
		}
	}

	if raw := values.Get("tipo"); raw != "" {
		tipo := models.TransactionType(raw)
		if !tipo.IsValid() {
			violations = violations.add("tipo", msgInvalidTipo)
		} else {
			filter.Tipo = &tipo
		}
	}

	filter.Empresa = values.Get("empresa")

	if raw := values.Get("startDate"); raw != "" {
		startDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			violations = violations.add("startDate", msgInvalidData)
		} else {
			filter.StartDate = &startDate
		}
	}

	if raw := values.Get("endDate"); raw != "" {
		endDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			violations = violations.add("endDate", msgInvalidData)
		} else {
			filter.EndDate = &endDate
		}
	}

	if len(violations) > 0 {
		return models.TransactionFilter{}, violations
	}

	return filter, nil
}

// ParseStatsQuery validates the statistics query string: optional empresa
// substring and optional inclusive date bounds. Pagination and tipo do not
// apply — the aggregates are always split by tipo internally.
func ParseStatsQuery(values url.Values) (models.TransactionFilter, error) {
	var violations ValidationErrors
	var filter models.TransactionFilter

	filter.Empresa = values.Get("empresa")

	if raw := values.Get("startDate"); raw != "" {
		startDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			violations = violations.add("startDate", msgInvalidData)
		} else {
			filter.StartDate = &startDate
		}
	}

	if raw := values.Get("endDate"); raw != "" {
		endDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			violations = violations.add("endDate", msgInvalidData)
		} else {
			filter.EndDate = &endDate
		}
	}

	if len(violations) > 0 {
		return models.TransactionFilter{}, violations
	}

	return filter, nil
}
