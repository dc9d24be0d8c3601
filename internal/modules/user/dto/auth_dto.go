package dto

import "anoa.com/civicwaste/internal/entity"

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  entity.UserSummary `json:"user"`
}

type RegisterResponse struct {
	Success bool               `json:"success"`
	User    entity.UserSummary `json:"user"`
}
