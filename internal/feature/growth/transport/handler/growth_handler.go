// Package handler provides the HTTP handlers for the growth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scorecard_backend/internal/api"
	"scorecard_backend/internal/feature/growth/domain/entity"
	"scorecard_backend/internal/feature/growth/transport/http/dto"
	jwtmw "scorecard_backend/internal/platform/jwt"
)

// DefaultCompanyName stands in when a submission names no company.
const DefaultCompanyName = "Unnamed Company"

// GrowthUsecase defines the usecase interface for growth scorecard operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider.
type GrowthUsecase interface {
	Evaluate(ctx context.Context, user, company string, answers []string) (entity.Result, error)
}

// GrowthHandler handles HTTP requests for the growth scorecard.
type GrowthHandler struct {
	uc GrowthUsecase
}

// NewGrowthHandler creates a new GrowthHandler with the given usecase.
func NewGrowthHandler(uc GrowthUsecase) *GrowthHandler {
	return &GrowthHandler{uc: uc}
}

// Form returns the fixed metric catalog the scorecard form is built from.
//
// GET /growth
func (h *GrowthHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, entity.Catalog())
}

// Evaluate scores a submitted scorecard and returns the stored result.
// Malformed per-metric scores degrade to zero inside the core; the request
// itself never fails for them.
//
// POST /growth
func (h *GrowthHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("growth validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = DefaultCompanyName
	}

	user := jwtmw.Username(c)
	res, err := h.uc.Evaluate(c.Request.Context(), user, company, req.Scores)
	if err != nil {
		slog.Error("growth evaluation failed", "error", err, "user", user, "company", company)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save result"})
		return
	}

	slog.Info("growth scorecard saved", "user", user, "company", company, "total_score", res.TotalScore)
	c.JSON(http.StatusOK, dto.EvaluateResp{Company: company, Result: res})
}
