package repositories

import (
	"context"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// Create insere um usuário e preenche o ID gerado; CreatedAt é
	// definido pelo repositório quando zerado.
	// Retorna errors.ErrEmailAlreadyExists se o email já estiver em uso.
	Create(ctx context.Context, user *entities.User) error

	// FindByID retorna errors.ErrInvalidUserID se o id for malformado
	// e (nil, nil) se o usuário não existir.
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByEmail retorna (nil, nil) se o usuário não existir
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// Update aplica apenas os campos presentes no patch; CreatedAt nunca muda.
	Update(ctx context.Context, id string, patch UserPatch) error

	// Delete retorna errors.ErrUserNotFound se o usuário não existir
	Delete(ctx context.Context, id string) error

	// List retorna a página solicitada (ordenada por created_at desc)
	// e o total de usuários na coleção.
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)

	// FindAll retorna todos os usuários ordenados por created_at desc
	// (snapshot completo usado pela exportação).
	FindAll(ctx context.Context) ([]*entities.User, error)
}

// UserPatch contém os campos de uma atualização parcial.
// Campos nil não são alterados.
type UserPatch struct {
	Name  *string
	Email *string
	Role  *string
}

// IsEmpty verifica se o patch não altera nenhum campo
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 10, max: 100)
}
