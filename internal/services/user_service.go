package services

import (
	"context"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/domain/repositories"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários do diretório
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name  string
	Email string
	Role  string
}

// UpdateUserInput representa uma atualização parcial.
// Campos nil não são alterados.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *string
}

// UserPage representa uma página da listagem de usuários
type UserPage struct {
	Users      []*entities.User
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// CreateUser cria um novo usuário
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	// Pré-checagem; o índice único do banco é a garantia final
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	user := &entities.User{
		Name:  input.Name,
		Email: email,
		Role:  input.Role,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", user.ID, "email", user.Email.String())

	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários paginados (created_at desc)
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) (*UserPage, error) {
	users, total, err := s.userRepo.List(ctx, repositories.UserFilters{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateUser aplica uma atualização parcial.
// Patch vazio → ErrEmptyUpdate; email de outro usuário → ErrEmailAlreadyExists.
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	if input.Name == nil && input.Email == nil && input.Role == nil {
		return nil, errors.ErrEmptyUpdate
	}

	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrUserNotFound
	}

	patch := repositories.UserPatch{
		Name: input.Name,
		Role: input.Role,
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}

		owner, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != id {
			return nil, errors.ErrEmailAlreadyExists
		}

		normalized := email.String()
		patch.Email = &normalized
	}

	if err := s.userRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.ErrUserNotFound
	}

	return updated, nil
}

// DeleteUser remove um usuário
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}
