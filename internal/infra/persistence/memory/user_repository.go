// Package memory provides a process-local user store for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"partnerauth/internal/domain/entity"
	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository keeps users in maps guarded by a single RWMutex.
// Records are copied on the way in and out so callers never share state with the store.
type userRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewUserRepository returns an empty in-memory store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

// FindByEmail retrieves a user by normalized email.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.byID[id]), nil
}

// FindByID retrieves a user by id.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// Create stores a new user, assigning its id and timestamps.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byEmail[user.Email]; taken {
		return domainerrors.ErrEmailAlreadyInUse.WrapMessage("email already exists")
	}

	now := repo.now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	repo.byID[user.ID] = cloneUser(user)
	repo.byEmail[user.Email] = user.ID

	return nil
}

// Update applies the non-nil fields of update.
func (repo *userRepository) Update(_ context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	user.UpdatedAt = repo.now()

	return cloneUser(user), nil
}

// UpdateRefreshToken overwrites the stored refresh token.
func (repo *userRepository) UpdateRefreshToken(_ context.Context, id uuid.UUID, refreshToken string) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	token := refreshToken
	user.RefreshToken = &token
	user.UpdatedAt = repo.now()

	return cloneUser(user), nil
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	copied := *user
	if user.RefreshToken != nil {
		token := *user.RefreshToken
		copied.RefreshToken = &token
	}

	return &copied
}
