package users

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a map keyed by email. Lookups and the
// conditional insert run under one mutex, so two concurrent registrations of
// the same email cannot both succeed.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	now   func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User), now: time.Now}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	if !user.HasCredentials() {
		return nil, common.ErrorIncompleteRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := &models.User{
		ID:         uuid.NewString(),
		Email:      user.Email,
		DerivedKey: slices.Clone(user.DerivedKey),
		Salt:       slices.Clone(user.Salt),
		CreatedAt:  r.now().UTC(),
	}
	r.users[stored.Email] = stored

	return clone(stored), nil
}

func (r *InMemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

// clone keeps callers from mutating stored records through returned slices.
func clone(u *models.User) *models.User {
	c := *u
	c.DerivedKey = slices.Clone(u.DerivedKey)
	c.Salt = slices.Clone(u.Salt)
	return &c
}
