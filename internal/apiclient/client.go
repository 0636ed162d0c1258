// SPDX-License-Identifier: Apache-2.0

// Package apiclient provides a typed Go client for the crud-financas REST
// API, intended for integration tooling and smoke tests against a running
// instance.
package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/angaro192/crud-financas/models"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the crud-financas API. The bearer token captured by
// [Client.Login] (or set explicitly) is attached to every subsequent
// authenticated call; the client is safe for concurrent use.
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3333"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login authenticates with the given credentials and stores the issued
// token for subsequent calls.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetToken(out.Token)

	return out, nil
}

// Register creates a new account. The client must already hold a valid
// token; registration is admin-provisioned.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse

	resp, err := c.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return out, nil
}

// Me returns the account behind the stored token.
func (c *Client) Me(ctx context.Context) (models.MeResponse, error) {
	var out models.MeResponse

	resp, err := c.authedRequest(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return out, nil
}

// CreateTransaction records a new financial transaction for the
// authenticated user.
func (c *Client) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.FinancialTransaction, error) {
	var out models.FinancialTransaction

	resp, err := c.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/financial-transactions")
	if err != nil {
		return models.FinancialTransaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FinancialTransaction{}, err
	}

	return out, nil
}

// ListTransactions fetches one page of the authenticated user's
// transactions. A nil query lists the first page with default settings.
func (c *Client) ListTransactions(ctx context.Context, query map[string]string) (models.ListTransactionsResponse, error) {
	var out models.ListTransactionsResponse

	resp, err := c.authedRequest(ctx).
		SetQueryParams(query).
		SetResult(&out).
		Get("/financial-transactions")
	if err != nil {
		return models.ListTransactionsResponse{}, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListTransactionsResponse{}, err
	}

	return out, nil
}

// GetTransaction fetches one transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (models.FinancialTransaction, error) {
	var out models.FinancialTransaction

	resp, err := c.authedRequest(ctx).
		SetResult(&out).
		Get("/financial-transactions/" + id)
	if err != nil {
		return models.FinancialTransaction{}, fmt.Errorf("get transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FinancialTransaction{}, err
	}

	return out, nil
}

// UpdateTransaction applies a partial update to one transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.FinancialTransaction, error) {
	var out models.FinancialTransaction

	resp, err := c.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Patch("/financial-transactions/" + id)
	if err != nil {
		return models.FinancialTransaction{}, fmt.Errorf("update transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FinancialTransaction{}, err
	}

	return out, nil
}

// DeleteTransaction removes one transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	resp, err := c.authedRequest(ctx).
		Delete("/financial-transactions/" + id)
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

// TransactionStats fetches the aggregate statistics of the authenticated
// user's transactions. A nil query aggregates over all records.
func (c *Client) TransactionStats(ctx context.Context, query map[string]string) (models.StatsResponse, error) {
	var out models.StatsResponse

	resp, err := c.authedRequest(ctx).
		SetQueryParams(query).
		SetResult(&out).
		Get("/financial-transactions/stats")
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatsResponse{}, err
	}

	return out, nil
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
