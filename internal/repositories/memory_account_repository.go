package repositories

import (
	"context"
	"sync"

	"nomadtrip/internal/models/db_models"
)

// memoryAccountRepository is the process-lifetime identity stand-in. Nothing
// survives a restart; a real credential store plugs in via AccountRepository.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	byEmail  map[string]*db_models.Account
	byIdText map[string]*db_models.Account
}

func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		byEmail:  make(map[string]*db_models.Account),
		byIdText: make(map[string]*db_models.Account),
	}
}

func (m *memoryAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	if err := account.BeforeCreate(nil); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *account
	m.byEmail[account.Email] = &copied
	m.byIdText[account.ID.String()] = &copied
	return nil
}

func (m *memoryAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.byEmail[email]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (m *memoryAccountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.byIdText[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}
