// Package handler provides the HTTP handlers for the identity feature.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scorecard_backend/internal/api"
	"scorecard_backend/internal/feature/identity/transport/http/dto"
)

// TokenGenerator issues signed identity tokens for a chosen username.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider.
type TokenGenerator interface {
	GenerateToken(username string) (string, error)
}

// IdentityHandler handles the welcome flow: a caller picks a username and
// receives a token to present on later requests. There is no password and no
// uniqueness check; the username is an opaque session key.
type IdentityHandler struct {
	tokens TokenGenerator
}

// NewIdentityHandler creates a new IdentityHandler with the given generator.
func NewIdentityHandler(tokens TokenGenerator) *IdentityHandler {
	return &IdentityHandler{tokens: tokens}
}

// Welcome issues an identity token for a non-blank username.
//
// POST /welcome
func (h *IdentityHandler) Welcome(c *gin.Context) {
	var req dto.WelcomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("welcome validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "username must not be blank"})
		return
	}

	token, err := h.tokens.GenerateToken(username)
	if err != nil {
		slog.Error("token generation failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue token"})
		return
	}

	slog.Info("user welcomed", "username", username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
