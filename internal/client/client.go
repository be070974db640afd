// Package client is a thin wrapper around the grocery list REST API. It
// keeps the bearer token for the session in memory; nothing is cached on
// disk.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"grocerylist/internal/common"
)

// Item mirrors the wire representation of a grocery item.
type Item struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Done    bool   `json:"done"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsAuthenticated reports whether a bearer token is held for this session.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// Logout discards the session token.
func (c *Client) Logout() {
	c.token = ""
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, username, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/signup", credentialsRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/login", credentialsRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// List returns the account's items.
func (c *Client) List(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add creates a new item.
func (c *Client) Add(ctx context.Context, name string) (*Item, error) {
	var item Item
	err := c.do(ctx, http.MethodPost, "/items", map[string]string{"name": name}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Toggle flips an item's done flag.
func (c *Client) Toggle(ctx context.Context, id string) (*Item, error) {
	var item Item
	err := c.do(ctx, http.MethodPut, "/items/"+id+"/toggle", nil, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// asError translates an HTTP error response into a sentinel error wrapped
// with the server's message.
func (c *Client) asError(resp *http.Response) error {
	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = common.ErrValidation
	case http.StatusUnauthorized:
		if c.token == "" {
			sentinel = common.ErrInvalidCredentials
		} else {
			sentinel = common.ErrUnauthenticated
		}
	case http.StatusNotFound:
		sentinel = common.ErrNotFound
	case http.StatusConflict:
		sentinel = common.ErrAlreadyExists
	default:
		sentinel = common.ErrInternal
	}

	raw, _ := io.ReadAll(resp.Body)
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error != "" {
		return fmt.Errorf("%s: %w", er.Error, sentinel)
	}
	return sentinel
}
