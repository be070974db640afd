// Package rest exposes the service core over HTTP/JSON: two credential
// routes and four owner-scoped item routes behind bearer authentication.
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocerylist/internal/common"
	"grocerylist/internal/logging"
	"grocerylist/internal/server/services"
)

type Handlers struct {
	auth   *services.AuthService
	items  *services.ItemService
	logger logging.Logger
}

func NewHandlers(auth *services.AuthService, items *services.ItemService, logger logging.Logger) *Handlers {
	return &Handlers{auth: auth, items: items, logger: logger.With("module", "rest")}
}

// credentialsRequest is the body of /signup and /login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// addItemRequest is the body of POST /items.
type addItemRequest struct {
	Name string `json:"name"`
}

// Signup registers a new account and returns a bearer token for it.
func (h *Handlers) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "account registered", "username", req.Username)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login verifies credentials and returns a fresh bearer token.
func (h *Handlers) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	token, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListItems returns all items owned by the authenticated account.
func (h *Handlers) ListItems(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.items.List(c.Request.Context(), identity.AccountID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddItem creates a new item owned by the authenticated account.
func (h *Handlers) AddItem(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	item, err := h.items.Add(c.Request.Context(), identity.AccountID, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ToggleItem flips the done flag of an owned item.
func (h *Handlers) ToggleItem(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	item, err := h.items.Toggle(c.Request.Context(), identity.AccountID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an owned item. Deleting a missing or foreign item is
// still a 204: the operation is idempotent and leaks no existence info.
func (h *Handlers) DeleteItem(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.items.Delete(c.Request.Context(), identity.AccountID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError maps service errors onto HTTP statuses. Unexpected errors are
// logged and surfaced as a generic 500 so no internals leak to the client.
func (h *Handlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	default:
		h.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
