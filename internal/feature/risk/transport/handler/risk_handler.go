// Package handler provides the HTTP handlers for the risk feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scorecard_backend/internal/api"
	"scorecard_backend/internal/feature/risk/domain/entity"
	"scorecard_backend/internal/feature/risk/transport/http/dto"
	jwtmw "scorecard_backend/internal/platform/jwt"
)

// RiskUsecase defines the usecase interface for the risk questionnaire.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider.
type RiskUsecase interface {
	Evaluate(ctx context.Context, user string, answers []string) (entity.Profile, error)
}

// RiskHandler handles HTTP requests for the risk questionnaire.
type RiskHandler struct {
	uc RiskUsecase
}

// NewRiskHandler creates a new RiskHandler with the given usecase.
func NewRiskHandler(uc RiskUsecase) *RiskHandler {
	return &RiskHandler{uc: uc}
}

// Form returns the fixed questionnaire the risk form is built from.
//
// GET /risk
func (h *RiskHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, entity.Questionnaire())
}

// Submit scores a submitted questionnaire and returns the stored profile.
// Missing or invalid answers contribute zero; the request never fails for
// them.
//
// POST /risk
func (h *RiskHandler) Submit(c *gin.Context) {
	var req dto.SubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("risk validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user := jwtmw.Username(c)
	profile, err := h.uc.Evaluate(c.Request.Context(), user, req.Answers)
	if err != nil {
		slog.Error("risk evaluation failed", "error", err, "user", user)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save result"})
		return
	}

	slog.Info("risk profile saved", "user", user, "score", profile.Score)
	c.JSON(http.StatusOK, profile)
}
