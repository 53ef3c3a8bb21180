package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
type MockUserStore struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64

	// Err, when set, is returned by every method. Lets tests exercise
	// store-failure paths.
	Err error
}

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.Create.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.ID = m.nextID
	m.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

// CreateIfEmpty implements store.UserStore.CreateIfEmpty.
func (m *MockUserStore) CreateIfEmpty(ctx context.Context, user *domain.User) (bool, error) {
	m.mu.Lock()
	notEmpty := len(m.users) > 0
	err := m.Err
	m.mu.Unlock()

	if err != nil {
		return false, err
	}
	if notEmpty {
		return false, nil
	}
	return true, m.Create(ctx, user)
}

// GetByID implements store.UserStore.GetByID.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements store.UserStore.List.
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	users := make([]*domain.User, 0, len(m.users))
	// Ascending ID order stands in for created_at ASC.
	for id := int64(1); id < m.nextID; id++ {
		if user, ok := m.users[id]; ok {
			cp := *user
			users = append(users, &cp)
		}
	}
	return users, nil
}

// Count implements store.UserStore.Count.
func (m *MockUserStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.users)), nil
}

// UpdatePassword implements store.UserStore.UpdatePassword.
func (m *MockUserStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	user, ok := m.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	user.HashedPassword = hashedPassword
	return nil
}

// Delete implements store.UserStore.Delete.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}
