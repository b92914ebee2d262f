package entities

import (
	"errors"
	"time"

	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

// User representa um registro do diretório de usuários.
// Distinto de Operator: usuários são gerenciados via API, não autenticam.
type User struct {
	ID        string
	Name      string
	Email     valueobjects.Email
	Role      string
	CreatedAt time.Time
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) > 100 {
		return errors.New("name must be at most 100 characters")
	}

	if u.Role == "" {
		return errors.New("role is required")
	}

	if len(u.Role) > 50 {
		return errors.New("role must be at most 50 characters")
	}

	return nil
}
