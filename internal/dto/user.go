package dto

import "github.com/kasku/kasku_backend/internal/core/domain"

// RegisterUserRequest is the payload for POST /users.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Fullname string `json:"fullname" binding:"required"`
}

// RegisterUserResponse returns the new user's identifier.
type RegisterUserResponse struct {
	UserID string `json:"userId"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// UpdateProfileRequest updates the caller's profile.
type UpdateProfileRequest struct {
	Fullname string `json:"fullname" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// ToUserResponse converts a domain.User to its public view.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username, Fullname: u.Fullname}
}
