package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// MockTaskStore is an in-memory implementation of store.TaskStore.
type MockTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64

	// Err, when set, is returned by every method.
	Err error
}

// NewMockTaskStore creates an empty in-memory task store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore.Create.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	task.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = task.CreatedAt
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

// List implements store.TaskStore.List.
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return m.filter(func(*domain.Task) bool { return true })
}

// ListByStatus implements store.TaskStore.ListByStatus.
func (m *MockTaskStore) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	return m.filter(func(t *domain.Task) bool { return t.Status == status })
}

// ListByAssignee implements store.TaskStore.ListByAssignee.
func (m *MockTaskStore) ListByAssignee(ctx context.Context, assigneeID int64) ([]*domain.Task, error) {
	return m.filter(func(t *domain.Task) bool {
		return t.AssigneeID != nil && *t.AssigneeID == assigneeID
	})
}

// Update implements store.TaskStore.Update.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	current, ok := m.tasks[task.ID]
	if !ok {
		return store.ErrTaskNotFound
	}

	task.PredictedHours = current.PredictedHours // write-once, like the SQL store
	task.UpdatedAt = time.Now().UTC()
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

// Delete implements store.TaskStore.Delete.
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// filter returns matching tasks in descending ID order, standing in for
// the SQL stores' created_at DESC ordering.
func (m *MockTaskStore) filter(keep func(*domain.Task) bool) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	tasks := []*domain.Task{}
	for id := m.nextID - 1; id >= 1; id-- {
		if task, ok := m.tasks[id]; ok && keep(task) {
			cp := *task
			tasks = append(tasks, &cp)
		}
	}
	return tasks, nil
}
