package repositories

import (
	"context"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
)

// OperatorRepository define a interface para persistência de operadores
// autenticados (credenciais OAuth por email)
type OperatorRepository interface {
	// Upsert substitui o registro do operador pelo email (idempotente).
	// CreatedAt é definido apenas na primeira inserção; UpdatedAt sempre.
	Upsert(ctx context.Context, operator *entities.Operator) error

	// FindByEmail retorna (nil, nil) se o operador não existir
	FindByEmail(ctx context.Context, email string) (*entities.Operator, error)
}
