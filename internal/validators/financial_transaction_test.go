package validators

import (
	"net/url"
	"testing"
	"time"

	"github.com/angaro192/crud-financas/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateTransaction(t *testing.T) {
	validReq := func() models.CreateTransactionRequest {
		return models.CreateTransactionRequest{
			Valor:   decimal.RequireFromString("123.456"),
			Empresa: "Padaria do Zé",
			Data:    "2026-01-15T10:30:00Z",
			Tipo:    models.Despesa,
		}
	}

	t.Run("valid payload is normalized", func(t *testing.T) {
		transaction, err := ValidateCreateTransaction(validReq())
		require.NoError(t, err)

		assert.True(t, transaction.Valor.Equal(decimal.RequireFromString("123.456")))
		assert.Equal(t, "Padaria do Zé", transaction.Empresa)
		assert.Equal(t, time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), transaction.Data)
		assert.Equal(t, models.Despesa, transaction.Tipo)
	})

	tests := []struct {
		name      string
		mutate    func(*models.CreateTransactionRequest)
		wantField string
	}{
		{
			name:      "zero valor",
			mutate:    func(r *models.CreateTransactionRequest) { r.Valor = decimal.Zero },
			wantField: "valor",
		},
		{
			name:      "negative valor",
			mutate:    func(r *models.CreateTransactionRequest) { r.Valor = decimal.RequireFromString("-10") },
			wantField: "valor",
		},
		{
			name:      "more than three decimal places",
			mutate:    func(r *models.CreateTransactionRequest) { r.Valor = decimal.RequireFromString("1.2345") },
			wantField: "valor",
		},
		{
			name:      "empty empresa",
			mutate:    func(r *models.CreateTransactionRequest) { r.Empresa = "" },
			wantField: "empresa",
		},
		{
			name: "empresa over 255 characters",
			mutate: func(r *models.CreateTransactionRequest) {
				long := make([]byte, 256)
				for i := range long {
					long[i] = 'a'
				}
				r.Empresa = string(long)
			},
			wantField: "empresa",
		},
		{
			name:      "malformed data",
			mutate:    func(r *models.CreateTransactionRequest) { r.Data = "15/01/2026" },
			wantField: "data",
		},
		{
			name:      "unknown tipo",
			mutate:    func(r *models.CreateTransactionRequest) { r.Tipo = "Investimento" },
			wantField: "tipo",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := validReq()
			test.mutate(&req)

			_, err := ValidateCreateTransaction(req)

			var violations ValidationErrors
			require.ErrorAs(t, err, &violations)
			require.Len(t, violations, 1)
			assert.Equal(t, test.wantField, violations[0].Field)
		})
	}

	t.Run("aggregates all violations", func(t *testing.T) {
		_, err := ValidateCreateTransaction(models.CreateTransactionRequest{
			Valor: decimal.RequireFromString("-1"),
			Data:  "nope",
			Tipo:  "nope",
		})

		var violations ValidationErrors
		require.ErrorAs(t, err, &violations)
		assert.Len(t, violations, 4)
	})

	t.Run("trailing zeros beyond three places are exact", func(t *testing.T) {
		req := validReq()
		req.Valor = decimal.RequireFromString("10.1000")

		_, err := ValidateCreateTransaction(req)
		require.NoError(t, err)
	})
}

func TestValidateUpdateTransaction(t *testing.T) {
	t.Run("empty payload yields empty update", func(t *testing.T) {
		update, err := ValidateUpdateTransaction(models.UpdateTransactionRequest{})
		require.NoError(t, err)
		assert.True(t, update.IsEmpty())
	})

	t.Run("present fields are validated and normalized", func(t *testing.T) {
		valor := decimal.RequireFromString("99.9")
		empresa := "Mercado"
		data := "2026-02-01T00:00:00Z"
		tipo := models.Receita

		update, err := ValidateUpdateTransaction(models.UpdateTransactionRequest{
			Valor:   &valor,
			Empresa: &empresa,
			Data:    &data,
			Tipo:    &tipo,
		})
		require.NoError(t, err)

		require.NotNil(t, update.Valor)
		assert.True(t, update.Valor.Equal(valor))
		require.NotNil(t, update.Empresa)
		assert.Equal(t, "Mercado", *update.Empresa)
		require.NotNil(t, update.Data)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *update.Data)
		require.NotNil(t, update.Tipo)
		assert.Equal(t, models.Receita, *update.Tipo)
	})

	t.Run("invalid present field rejected", func(t *testing.T) {
		valor := decimal.RequireFromString("0.0001")

		_, err := ValidateUpdateTransaction(models.UpdateTransactionRequest{Valor: &valor})

		var violations ValidationErrors
		require.ErrorAs(t, err, &violations)
		require.Len(t, violations, 1)
		assert.Equal(t, "valor", violations[0].Field)
	})

	t.Run("explicit empty empresa rejected", func(t *testing.T) {
		empresa := ""

		_, err := ValidateUpdateTransaction(models.UpdateTransactionRequest{Empresa: &empresa})

		var violations ValidationErrors
		require.ErrorAs(t, err, &violations)
		require.Len(t, violations, 1)
		assert.Equal(t, "empresa", violations[0].Field)
	})
}

func TestParseListQuery(t *testing.T) {
	t.Run("defaults apply when query is empty", func(t *testing.T) {
		filter, err := ParseListQuery(url.Values{})
		require.NoError(t, err)

		assert.Equal(t, defaultPage, filter.Page)
		assert.Equal(t, defaultLimit, filter.Limit)
		assert.Nil(t, filter.Tipo)
		assert.Empty(t, filter.Empresa)
		assert.Nil(t, filter.StartDate)
		assert.Nil(t, filter.EndDate)
	})

	t.Run("all parameters parsed", func(t *testing.T) {
		values := url.Values{}
		values.Set("page", "3")
		values.Set("limit", "25")
		values.Set("tipo", "Receita")
		values.Set("empresa", "mercado")
		values.Set("startDate", "2026-01-01T00:00:00Z")
		values.Set("endDate", "2026-01-31T23:59:59Z")

		filter, err := ParseListQuery(values)
		require.NoError(t, err)

		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 25, filter.Limit)
		require.NotNil(t, filter.Tipo)
		assert.Equal(t, models.Receita, *filter.Tipo)
		assert.Equal(t, "mercado", filter.Empresa)
		require.NotNil(t, filter.StartDate)
		require.NotNil(t, filter.EndDate)
	})

	tests := []struct {
		name      string
		key       string
		value     string
		wantField string
	}{
		{name: "page zero", key: "page", value: "0", wantField: "page"},
		{name: "page negative", key: "page", value: "-2", wantField: "page"},
		{name: "page not a number", key: "page", value: "abc", wantField: "page"},
		{name: "limit zero", key: "limit", value: "0", wantField: "limit"},
		{name: "limit above the cap", key: "limit", value: "101", wantField: "limit"},
		{name: "unknown tipo", key: "tipo", value: "Outro", wantField: "tipo"},
		{name: "bad startDate", key: "startDate", value: "January", wantField: "startDate"},
		{name: "bad endDate", key: "endDate", value: "2026-13-01", wantField: "endDate"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(test.key, test.value)

			_, err := ParseListQuery(values)

			var violations ValidationErrors
			require.ErrorAs(t, err, &violations)
			require.Len(t, violations, 1)
			assert.Equal(t, test.wantField, violations[0].Field)
		})
	}

	t.Run("limit boundary of 100 accepted", func(t *testing.T) {
		values := url.Values{}
		values.Set("limit", "100")

		filter, err := ParseListQuery(values)
		require.NoError(t, err)
		assert.Equal(t, 100, filter.Limit)
	})
}

func TestParseStatsQuery(t *testing.T) {
	t.Run("empty query yields empty filter", func(t *testing.T) {
		filter, err := ParseStatsQuery(url.Values{})
		require.NoError(t, err)

		assert.Empty(t, filter.Empresa)
		assert.Nil(t, filter.StartDate)
		assert.Nil(t, filter.EndDate)
	})

	t.Run("date bounds parsed", func(t *testing.T) {
		values := url.Values{}
		values.Set("empresa", "loja")
		values.Set("startDate", "2026-01-01T00:00:00Z")

		filter, err := ParseStatsQuery(values)
		require.NoError(t, err)

		assert.Equal(t, "loja", filter.Empresa)
		require.NotNil(t, filter.StartDate)
		assert.Nil(t, filter.EndDate)
	})

	t.Run("malformed bound rejected", func(t *testing.T) {
		values := url.Values{}
		values.Set("endDate", "soon")

		_, err := ParseStatsQuery(values)

		var violations ValidationErrors
		require.ErrorAs(t, err, &violations)
		require.Len(t, violations, 1)
		assert.Equal(t, "endDate", violations[0].Field)
	})
}
