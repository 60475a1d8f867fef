package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"scorecard_backend/internal/feature/fundamentals/domain/entity"
	"scorecard_backend/internal/feature/fundamentals/usecase"
)

// mockFundamentalsUsecase is a mock implementation of the FundamentalsUsecase interface.
type mockFundamentalsUsecase struct {
	EvaluateFunc func(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error)
}

func (m *mockFundamentalsUsecase) Evaluate(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, user, company, in)
	}
	return entity.Result{}, nil
}

func newRouter(h *FundamentalsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/company", h.Evaluate)
	return r
}

const validBody = `{
	"company": "Acme",
	"pe_ratio": "15",
	"current_assets": "200",
	"current_liabilities": "100",
	"total_assets": "500",
	"total_liabilities": "300",
	"operating_income": "80",
	"total_revenue": "1000",
	"free_cash_flow": "50",
	"shares_outstanding": "10"
}`

func TestFundamentalsHandler_Evaluate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns evaluation and verdict",
			body: validBody,
			mockFunc: func(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error) {
				return entity.Result{
					Evaluations: []entity.Evaluation{{Metric: "Current Ratio", Detail: "Healthy short-term financial position."}},
					Verdict:     "Acme shows strong financial health and may be a good investment.",
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"company":"Acme","evaluations":[{"metric":"Current Ratio","detail":"Healthy short-term financial position."}],"verdict":"Acme shows strong financial health and may be a good investment."}`,
		},
		{
			name: "failure: invalid numeric input gets the original message",
			body: validBody,
			mockFunc: func(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error) {
				return entity.Result{}, fmt.Errorf("%w: pe_ratio", usecase.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Please enter valid numeric values for all inputs."}`,
		},
		{
			name:           "failure: missing company is rejected by binding",
			body:           `{"pe_ratio":"15"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: malformed JSON",
			body:           `{"company"`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name: "failure: persistence error surfaces as 500",
			body: validBody,
			mockFunc: func(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error) {
				return entity.Result{}, errors.New("write store document: disk full")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to save result"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(NewFundamentalsHandler(&mockFundamentalsUsecase{EvaluateFunc: tt.mockFunc}))
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/company", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestFundamentalsHandler_Evaluate_PassesRawStrings(t *testing.T) {
	t.Parallel()

	var got usecase.Figures
	uc := &mockFundamentalsUsecase{
		EvaluateFunc: func(ctx context.Context, user, company string, in usecase.Figures) (entity.Result, error) {
			got = in
			return entity.Result{}, nil
		},
	}

	router := newRouter(NewFundamentalsHandler(uc))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/company", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The transport does not parse numbers; the core does.
	assert.Equal(t, "15", got.PERatio)
	assert.Equal(t, "10", got.SharesOutstanding)
}
