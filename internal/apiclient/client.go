// Package apiclient is the HTTP client for the admin API. The data cache
// talks to the server exclusively through it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"
)

// Client calls the admin API over HTTP. The zero value is not usable,
// construct it with New.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken stores the bearer token sent on every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// LoginResponse is the payload returned by the login endpoint.
type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login authenticates and remembers the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	in := validation.LoginInput{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return LoginResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateClient(ctx context.Context, in validation.ClientInput) (models.Client, error) {
	var out models.Client
	err := c.do(ctx, http.MethodPost, "/api/clients", in, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, id uint, in validation.ClientInput) (models.Client, error) {
	var out models.Client
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/clients/%d", id), in, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil, nil)
}

func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	if err := c.do(ctx, http.MethodGet, "/api/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExpense(ctx context.Context, in validation.ExpenseInput) (models.Expense, error) {
	var out models.Expense
	err := c.do(ctx, http.MethodPost, "/api/expenses", in, &out)
	return out, err
}

func (c *Client) UpdateExpense(ctx context.Context, id uint, in validation.ExpenseInput) (models.Expense, error) {
	var out models.Expense
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/expenses/%d", id), in, &out)
	return out, err
}

func (c *Client) DeleteExpense(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), nil, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, in validation.ProjectInput) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", in, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, id uint, in validation.ProjectInput) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), in, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

// ReorderProjects applies a new display order and returns the full
// refreshed listing the server answers with.
func (c *Client) ReorderProjects(ctx context.Context, orders []validation.ProjectOrderInput) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects/reorder", orders, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddPaymentHistory(ctx context.Context, in validation.PaymentHistoryInput) (models.PaymentHistory, error) {
	var out models.PaymentHistory
	err := c.do(ctx, http.MethodPost, "/api/payment-history", in, &out)
	return out, err
}

func (c *Client) PaymentHistory(ctx context.Context, clientID uint) ([]models.PaymentHistory, error) {
	var out []models.PaymentHistory
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/payment-history/%d", clientID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.StoreUnavailable(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload errorPayload
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			msg = payload.Error
		}
		return apperr.FromStatus(resp.StatusCode, msg)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
