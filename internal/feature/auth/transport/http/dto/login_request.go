// Package dto defines the HTTP request/response shapes for the auth feature.
package dto

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token issued on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
