// Package client mirrors the server's collections for a UI process:
// it fetches over HTTP when a backend is reachable and degrades to the
// built-in sample dataset when it is not, applying the same catalog
// rules locally so create/edit/delete keep working offline.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

// Client is a thin API client. Calls carry no retries and rely on the
// default transport; a failed call degrades the caller to local data
// rather than blocking.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *Client) postJSON(ctx context.Context, path string, body, dst any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, strings.NewReader(string(payload)))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if dst != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) Shops(ctx context.Context) ([]models.Shop, error) {
	var out []models.Shop
	err := c.getJSON(ctx, "/api/shops", &out)
	return out, err
}

func (c *Client) Offers(ctx context.Context) ([]models.Offer, error) {
	var out []models.Offer
	err := c.getJSON(ctx, "/api/offers", &out)
	return out, err
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.getJSON(ctx, "/api/categories", &out)
	return out, err
}

func (c *Client) Floors(ctx context.Context) ([]models.Floor, error) {
	var out []models.Floor
	err := c.getJSON(ctx, "/api/floors", &out)
	return out, err
}

// LoginResult is what the auth endpoints hand back on success.
type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
}

var ErrLoginFailed = fmt.Errorf("login failed")

func (c *Client) AdminLogin(ctx context.Context, username, password string) (LoginResult, error) {
	var res LoginResult
	status, err := c.postJSON(ctx, "/api/auth/login", map[string]string{"username": username, "password": password}, &res)
	if err != nil {
		return LoginResult{}, err
	}
	if status != http.StatusOK {
		return LoginResult{}, ErrLoginFailed
	}
	return res, nil
}

func (c *Client) UserLogin(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	status, err := c.postJSON(ctx, "/api/auth/user-login", map[string]string{"email": email, "password": password}, &res)
	if err != nil {
		return LoginResult{}, err
	}
	if status != http.StatusOK {
		return LoginResult{}, ErrLoginFailed
	}
	return res, nil
}

func (c *Client) Register(ctx context.Context, name, email, phone, password string) (LoginResult, error) {
	var res LoginResult
	status, err := c.postJSON(ctx, "/api/auth/user-register", map[string]string{
		"name": name, "email": email, "phone": phone, "password": password,
	}, &res)
	if err != nil {
		return LoginResult{}, err
	}
	if status != http.StatusCreated {
		return LoginResult{}, fmt.Errorf("registration rejected with status %d", status)
	}
	return res, nil
}
