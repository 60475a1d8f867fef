// Package dto defines data transfer objects for the growth feature's HTTP transport layer.
package dto

import "scorecard_backend/internal/feature/growth/domain/entity"

// EvaluateReq represents the request body for POST /growth. Scores are raw
// strings, positionally matching the metric catalog; the core does all
// parsing.
type EvaluateReq struct {
	Company string   `json:"company"`
	Scores  []string `json:"scores"`
}

// EvaluateResp is the evaluated scorecard echoed back with its company name.
type EvaluateResp struct {
	Company string `json:"company"`
	entity.Result
}
