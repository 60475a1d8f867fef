// Package dto defines data transfer objects for the fundamentals feature's HTTP transport layer.
package dto

import "scorecard_backend/internal/feature/fundamentals/domain/entity"

// EvaluateReq represents the request body for POST /company. The nine
// numeric fields are raw strings; the core parses and validates them and
// rejects the whole submission when any does not parse.
type EvaluateReq struct {
	Company            string `json:"company" binding:"required"`
	PERatio            string `json:"pe_ratio"`
	CurrentAssets      string `json:"current_assets"`
	CurrentLiabilities string `json:"current_liabilities"`
	TotalAssets        string `json:"total_assets"`
	TotalLiabilities   string `json:"total_liabilities"`
	OperatingIncome    string `json:"operating_income"`
	TotalRevenue       string `json:"total_revenue"`
	FreeCashFlow       string `json:"free_cash_flow"`
	SharesOutstanding  string `json:"shares_outstanding"`
}

// EvaluateResp is the evaluated fundamentals result echoed back with its
// company name.
type EvaluateResp struct {
	Company string `json:"company"`
	entity.Result
}
