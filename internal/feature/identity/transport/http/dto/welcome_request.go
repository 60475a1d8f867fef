// Package dto defines data transfer objects for the identity feature's HTTP transport layer.
package dto

// WelcomeReq represents the request body for POST /welcome.
type WelcomeReq struct {
	Username string `json:"username" binding:"required"`
}
