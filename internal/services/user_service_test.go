package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainerrors "github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/mocks"
)

func newUserService() (*UserService, *mocks.UserRepository) {
	repo := mocks.NewUserRepository()
	return NewUserService(repo, mocks.NewLogger()), repo
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("cria usuário e permite busca pelo id retornado", func(t *testing.T) {
		service, _ := newUserService()

		user, err := service.CreateUser(ctx, CreateUserInput{
			Name:  "John Doe",
			Email: "john@example.com",
			Role:  "Developer",
		})
		if err != nil {
			t.Fatalf("CreateUser retornou erro: %v", err)
		}
		if user.ID == "" {
			t.Fatal("esperava ID gerado")
		}
		if user.CreatedAt.IsZero() {
			t.Fatal("esperava created_at definido")
		}

		found, err := service.GetUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUser retornou erro: %v", err)
		}
		if found.Email.String() != "john@example.com" {
			t.Errorf("email = %q, esperava %q", found.Email.String(), "john@example.com")
		}
	})

	t.Run("email duplicado retorna conflito", func(t *testing.T) {
		service, _ := newUserService()

		if _, err := service.CreateUser(ctx, CreateUserInput{Name: "A", Email: "dup@example.com", Role: "User"}); err != nil {
			t.Fatalf("primeiro CreateUser retornou erro: %v", err)
		}

		_, err := service.CreateUser(ctx, CreateUserInput{Name: "B", Email: "dup@example.com", Role: "Admin"})
		if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			t.Errorf("err = %v, esperava ErrEmailAlreadyExists", err)
		}
	})

	t.Run("email é normalizado para minúsculas", func(t *testing.T) {
		service, _ := newUserService()

		user, err := service.CreateUser(ctx, CreateUserInput{Name: "A", Email: "Mixed@Example.COM", Role: "User"})
		if err != nil {
			t.Fatalf("CreateUser retornou erro: %v", err)
		}
		if user.Email.String() != "mixed@example.com" {
			t.Errorf("email = %q, esperava normalizado", user.Email.String())
		}
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("id malformado retorna erro de id inválido", func(t *testing.T) {
		service, _ := newUserService()

		_, err := service.GetUser(ctx, "not-an-object-id")
		if !errors.Is(err, domainerrors.ErrInvalidUserID) {
			t.Errorf("err = %v, esperava ErrInvalidUserID", err)
		}
	})

	t.Run("id inexistente retorna não encontrado", func(t *testing.T) {
		service, _ := newUserService()

		_, err := service.GetUser(ctx, "64f000000000000000000000")
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("err = %v, esperava ErrUserNotFound", err)
		}
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("paginação retorna total_pages e tamanho corretos", func(t *testing.T) {
		service, _ := newUserService()

		for i := 0; i < 15; i++ {
			_, err := service.CreateUser(ctx, CreateUserInput{
				Name:  fmt.Sprintf("User %d", i),
				Email: fmt.Sprintf("user%d@example.com", i),
				Role:  "User",
			})
			if err != nil {
				t.Fatalf("CreateUser retornou erro: %v", err)
			}
			time.Sleep(time.Millisecond)
		}

		page, err := service.ListUsers(ctx, 1, 10)
		if err != nil {
			t.Fatalf("ListUsers retornou erro: %v", err)
		}
		if page.Total != 15 {
			t.Errorf("total = %d, esperava 15", page.Total)
		}
		if len(page.Users) != 10 {
			t.Errorf("len(users) = %d, esperava 10", len(page.Users))
		}
		if page.TotalPages != 2 {
			t.Errorf("total_pages = %d, esperava 2", page.TotalPages)
		}

		second, err := service.ListUsers(ctx, 2, 10)
		if err != nil {
			t.Fatalf("ListUsers retornou erro: %v", err)
		}
		if len(second.Users) != 5 {
			t.Errorf("len(users) página 2 = %d, esperava 5", len(second.Users))
		}
	})

	t.Run("ordena por created_at decrescente", func(t *testing.T) {
		service, _ := newUserService()

		for i := 0; i < 3; i++ {
			_, err := service.CreateUser(ctx, CreateUserInput{
				Name:  fmt.Sprintf("User %d", i),
				Email: fmt.Sprintf("u%d@example.com", i),
				Role:  "User",
			})
			if err != nil {
				t.Fatalf("CreateUser retornou erro: %v", err)
			}
			time.Sleep(time.Millisecond)
		}

		page, err := service.ListUsers(ctx, 1, 10)
		if err != nil {
			t.Fatalf("ListUsers retornou erro: %v", err)
		}
		if page.Users[0].Name != "User 2" {
			t.Errorf("primeiro usuário = %q, esperava o mais recente", page.Users[0].Name)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("patch vazio retorna erro", func(t *testing.T) {
		service, _ := newUserService()

		user, _ := service.CreateUser(ctx, CreateUserInput{Name: "A", Email: "a@example.com", Role: "User"})

		_, err := service.UpdateUser(ctx, user.ID, UpdateUserInput{})
		if !errors.Is(err, domainerrors.ErrEmptyUpdate) {
			t.Errorf("err = %v, esperava ErrEmptyUpdate", err)
		}
	})

	t.Run("atualização parcial preserva email e created_at", func(t *testing.T) {
		service, _ := newUserService()

		user, _ := service.CreateUser(ctx, CreateUserInput{Name: "Old Name", Email: "keep@example.com", Role: "User"})

		updated, err := service.UpdateUser(ctx, user.ID, UpdateUserInput{
			Name: strPtr("New Name"),
			Role: strPtr("Admin"),
		})
		if err != nil {
			t.Fatalf("UpdateUser retornou erro: %v", err)
		}
		if updated.Name != "New Name" || updated.Role != "Admin" {
			t.Errorf("campos não atualizados: name=%q role=%q", updated.Name, updated.Role)
		}
		if updated.Email.String() != "keep@example.com" {
			t.Errorf("email mudou para %q", updated.Email.String())
		}
		if !updated.CreatedAt.Equal(user.CreatedAt) {
			t.Errorf("created_at mudou de %v para %v", user.CreatedAt, updated.CreatedAt)
		}
	})

	t.Run("email de outro usuário retorna conflito", func(t *testing.T) {
		service, _ := newUserService()

		_, _ = service.CreateUser(ctx, CreateUserInput{Name: "A", Email: "taken@example.com", Role: "User"})
		user, _ := service.CreateUser(ctx, CreateUserInput{Name: "B", Email: "b@example.com", Role: "User"})

		_, err := service.UpdateUser(ctx, user.ID, UpdateUserInput{Email: strPtr("taken@example.com")})
		if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			t.Errorf("err = %v, esperava ErrEmailAlreadyExists", err)
		}
	})

	t.Run("atualizar para o próprio email não conflita", func(t *testing.T) {
		service, _ := newUserService()

		user, _ := service.CreateUser(ctx, CreateUserInput{Name: "A", Email: "self@example.com", Role: "User"})

		_, err := service.UpdateUser(ctx, user.ID, UpdateUserInput{Email: strPtr("self@example.com")})
		if err != nil {
			t.Errorf("UpdateUser retornou erro: %v", err)
		}
	})

	t.Run("usuário inexistente retorna não encontrado", func(t *testing.T) {
		service, _ := newUserService()

		_, err := service.UpdateUser(ctx, "64f000000000000000000000", UpdateUserInput{Name: strPtr("X")})
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("err = %v, esperava ErrUserNotFound", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("remove e busca subsequente falha", func(t *testing.T) {
		service, _ := newUserService()

		user, _ := service.CreateUser(ctx, CreateUserInput{Name: "A", Email: "del@example.com", Role: "User"})

		if err := service.DeleteUser(ctx, user.ID); err != nil {
			t.Fatalf("DeleteUser retornou erro: %v", err)
		}

		_, err := service.GetUser(ctx, user.ID)
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("err = %v, esperava ErrUserNotFound", err)
		}
	})

	t.Run("usuário inexistente retorna não encontrado", func(t *testing.T) {
		service, _ := newUserService()

		err := service.DeleteUser(ctx, "64f000000000000000000000")
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("err = %v, esperava ErrUserNotFound", err)
		}
	})
}
