// Package handler provides the HTTP handlers for the records feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scorecard_backend/internal/api"
	"scorecard_backend/internal/feature/records/domain/entity"
	"scorecard_backend/internal/feature/records/transport/http/dto"
	jwtmw "scorecard_backend/internal/platform/jwt"
)

// RecordsUsecase defines the usecase interface for saved-record operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider.
type RecordsUsecase interface {
	ListCompanies(ctx context.Context, user string) ([]string, error)
	Get(ctx context.Context, user, company string) (entity.CompanyRecord, bool, error)
	Delete(ctx context.Context, user, company string) error
}

// RecordsHandler handles HTTP requests for saved evaluation records.
type RecordsHandler struct {
	uc RecordsUsecase
}

// NewRecordsHandler creates a new RecordsHandler with the given usecase.
func NewRecordsHandler(uc RecordsUsecase) *RecordsHandler {
	return &RecordsHandler{uc: uc}
}

// List returns the user's saved company names.
//
// GET /memory
func (h *RecordsHandler) List(c *gin.Context) {
	user := jwtmw.Username(c)
	names, err := h.uc.ListCompanies(c.Request.Context(), user)
	if err != nil {
		slog.Error("list records failed", "error", err, "user", user)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list records"})
		return
	}
	c.JSON(http.StatusOK, dto.ListResp{Companies: names})
}

// Detail returns one company's saved record, 404 when none exists.
//
// GET /memory/:company
func (h *RecordsHandler) Detail(c *gin.Context) {
	user := jwtmw.Username(c)
	company := c.Param("company")

	rec, found, err := h.uc.Get(c.Request.Context(), user, company)
	if err != nil {
		slog.Error("get record failed", "error", err, "user", user, "company", company)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load record"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "record not found"})
		return
	}
	c.JSON(http.StatusOK, dto.DetailResp{Company: company, Record: rec})
}

// Delete removes one company's record. Deleting an unknown company is still
// a 204; only a persistence failure is an error.
//
// DELETE /memory/:company
func (h *RecordsHandler) Delete(c *gin.Context) {
	user := jwtmw.Username(c)
	company := c.Param("company")

	if err := h.uc.Delete(c.Request.Context(), user, company); err != nil {
		slog.Error("delete record failed", "error", err, "user", user, "company", company)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete record"})
		return
	}
	slog.Info("record deleted", "user", user, "company", company)
	c.Status(http.StatusNoContent)
}
