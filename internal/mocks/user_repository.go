package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/repositories"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

// UserRepository é uma implementação em memória de repositories.UserRepository
// com a mesma semântica de erros da implementação MongoDB
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entities.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email.String() == user.Email.String() {
			return domainerrors.ErrEmailAlreadyExists
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.ID = primitive.NewObjectID().Hex()

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domainerrors.ErrInvalidUserID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	clone := *user
	return &clone, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email.String() == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch repositories.UserPatch) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domainerrors.ErrInvalidUserID
	}
	if patch.IsEmpty() {
		return domainerrors.ErrEmptyUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domainerrors.ErrUserNotFound
	}

	if patch.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email.String() == *patch.Email {
				return domainerrors.ErrEmailAlreadyExists
			}
		}
		email, err := valueobjects.NewEmail(*patch.Email)
		if err != nil {
			return err
		}
		user.Email = email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domainerrors.ErrInvalidUserID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}

	delete(r.users, id)
	return nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(all))

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	return all[start:end], total, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		all = append(all, &clone)
	}

	// created_at desc, como a implementação MongoDB
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}
