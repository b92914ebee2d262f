package dto

import (
	"time"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,min=1,max=50"`
}

// UpdateUserRequest representa uma atualização parcial de usuário
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,min=1,max=50"`
}

// ListUsersRequest representa os parâmetros de paginação da listagem
type ListUsersRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=100"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PaginatedUsersResponse representa uma página da listagem de usuários
type PaginatedUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToPaginatedUsersResponse converte uma página de usuários para resposta
func ToPaginatedUsersResponse(page *services.UserPage) PaginatedUsersResponse {
	users := make([]UserResponse, len(page.Users))
	for i, user := range page.Users {
		users[i] = ToUserResponse(user)
	}

	return PaginatedUsersResponse{
		Users:      users,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
