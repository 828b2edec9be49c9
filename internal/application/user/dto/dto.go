package dto

import (
	"time"

	"ticketdesk/internal/domain/user"
)

const LoginSuccessMessage = "Login successful"

// UserResponse represents a user account; the password hash is never exposed
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is returned after a successful credential check
type LoginResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Role:      u.Role(),
		CreatedAt: u.CreatedAt(),
	}
}

func ToUserResponses(users []*user.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserResponse(u))
	}
	return result
}

func ToLoginResponse(u *user.User) *LoginResponse {
	return &LoginResponse{
		UserID:   u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role(),
		Message:  LoginSuccessMessage,
	}
}
