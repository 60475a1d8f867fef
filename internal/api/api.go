// Package api defines the response payloads shared across the HTTP surface.
package api

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform informational payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued identity token.
type TokenResponse struct {
	Token string `json:"token"`
}
