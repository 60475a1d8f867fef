// Package handler provides the HTTP handlers for the fundamentals feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scorecard_backend/internal/api"
	"scorecard_backend/internal/feature/fundamentals/domain/entity"
	"scorecard_backend/internal/feature/fundamentals/transport/http/dto"
	"scorecard_backend/internal/feature/fundamentals/usecase"
	jwtmw "scorecard_backend/internal/platform/jwt"
)

// invalidInputMessage is the user-facing message for a rejected submission.
const invalidInputMessage = "Please enter valid numeric values for all inputs."

// FundamentalsUsecase defines the usecase interface for fundamentals evaluation.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider.
type FundamentalsUsecase interface {
	Evaluate(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error)
}

// FundamentalsHandler handles HTTP requests for the fundamentals evaluation.
type FundamentalsHandler struct {
	uc FundamentalsUsecase
}

// NewFundamentalsHandler creates a new FundamentalsHandler with the given usecase.
func NewFundamentalsHandler(uc FundamentalsUsecase) *FundamentalsHandler {
	return &FundamentalsHandler{uc: uc}
}

// Evaluate runs the fundamentals evaluation and returns the stored result.
// Unlike the growth scorecard, a single bad numeric field rejects the whole
// submission with 400 and nothing is stored.
//
// POST /company
func (h *FundamentalsHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("fundamentals validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user := jwtmw.Username(c)
	res, err := h.uc.Evaluate(c.Request.Context(), user, req.Company, usecase.Figures{
		PERatio:            req.PERatio,
		CurrentAssets:      req.CurrentAssets,
		CurrentLiabilities: req.CurrentLiabilities,
		TotalAssets:        req.TotalAssets,
		TotalLiabilities:   req.TotalLiabilities,
		OperatingIncome:    req.OperatingIncome,
		TotalRevenue:       req.TotalRevenue,
		FreeCashFlow:       req.FreeCashFlow,
		SharesOutstanding:  req.SharesOutstanding,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			slog.Warn("fundamentals input rejected", "error", err, "user", user, "company", req.Company)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: invalidInputMessage})
			return
		}
		slog.Error("fundamentals evaluation failed", "error", err, "user", user, "company", req.Company)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save result"})
		return
	}

	slog.Info("fundamentals evaluation saved", "user", user, "company", req.Company)
	c.JSON(http.StatusOK, dto.EvaluateResp{Company: req.Company, Result: res})
}
