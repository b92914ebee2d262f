package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
)

// OperatorRepository é uma implementação em memória de
// repositories.OperatorRepository
type OperatorRepository struct {
	mu        sync.Mutex
	operators map[string]*entities.Operator
}

func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{operators: make(map[string]*entities.Operator)}
}

func (r *OperatorRepository) Upsert(ctx context.Context, operator *entities.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	stored := *operator
	stored.UpdatedAt = now
	stored.CreatedAt = now
	if existing, ok := r.operators[operator.Email.String()]; ok {
		stored.CreatedAt = existing.CreatedAt
	}

	r.operators[operator.Email.String()] = &stored
	return nil
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*entities.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	operator, ok := r.operators[email]
	if !ok {
		return nil, nil
	}

	clone := *operator
	return &clone, nil
}
