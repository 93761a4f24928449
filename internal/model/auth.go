package model

import "github.com/golang-jwt/jwt/v5"

// TenantClaims scope a token to one school
type TenantClaims struct {
	SchoolID string `json:"schoolId"`
	jwt.RegisteredClaims
}

// LoginRequest is the operator login body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	SchoolID string `json:"schoolId"`
}

// LoginResponse carries the issued tenant token
type LoginResponse struct {
	Token    string `json:"token"`
	SchoolID string `json:"schoolId"`
}
