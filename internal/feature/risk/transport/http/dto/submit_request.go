// Package dto defines data transfer objects for the risk feature's HTTP transport layer.
package dto

// SubmitReq represents the request body for POST /risk. Answers are raw
// strings, positionally matching the questionnaire; only the literal letters
// A-D contribute to the score.
type SubmitReq struct {
	Answers []string `json:"answers"`
}
