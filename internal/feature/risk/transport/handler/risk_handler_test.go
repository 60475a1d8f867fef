package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"scorecard_backend/internal/feature/risk/domain/entity"
)

// mockRiskUsecase is a mock implementation of the RiskUsecase interface.
type mockRiskUsecase struct {
	EvaluateFunc func(ctx context.Context, user string, answers []string) (entity.Profile, error)
}

func (m *mockRiskUsecase) Evaluate(ctx context.Context, user string, answers []string) (entity.Profile, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, user, answers)
	}
	return entity.Profile{}, nil
}

func newRouter(h *RiskHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/risk", h.Form)
	r.POST("/risk", h.Submit)
	return r
}

func TestRiskHandler_Form(t *testing.T) {
	t.Parallel()

	router := newRouter(NewRiskHandler(&mockRiskUsecase{}))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/risk", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "80% chance of profit")
	assert.Contains(t, w.Body.String(), "10. Why are your investments successful:")
}

func TestRiskHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, user string, answers []string) (entity.Profile, error)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "success: returns the stored profile",
			body: `{"answers":["A","B","C","D"]}`,
			mockFunc: func(ctx context.Context, user string, answers []string) (entity.Profile, error) {
				return entity.Profile{
					Score:   22,
					Message: "You are a moderate investor, you like to balance risk and reward. You are likely open to reasonable risks without major discomfort.",
					Advisor: entity.AdvisorInfo{
						Title:     "Moderate Investor",
						Goals:     []string{"Grow wealth over time"},
						Portfolio: entity.Portfolio{{Name: "Blend (Core) Equity Funds", Rationale: "Balanced growth and value exposure"}},
						Tips:      []string{"Rebalance annually to maintain target allocation"},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"score":22`)
				assert.Contains(t, body, `"title":"Moderate Investor"`)
				assert.Contains(t, body, `"Blend (Core) Equity Funds":"Balanced growth and value exposure"`)
			},
		},
		{
			name:           "failure: malformed JSON",
			body:           `{"answers":`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"invalid request"}`, body)
			},
		},
		{
			name: "failure: persistence error surfaces as 500",
			body: `{"answers":[]}`,
			mockFunc: func(ctx context.Context, user string, answers []string) (entity.Profile, error) {
				return entity.Profile{}, errors.New("write store document: disk full")
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"failed to save result"}`, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(NewRiskHandler(&mockRiskUsecase{EvaluateFunc: tt.mockFunc}))
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/risk", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkBody(t, w.Body.String())
		})
	}
}
