package account

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
)

// MockRepository implements repository.Farm for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAccountByPlatformID(ctx context.Context, platform, platformID string) (*domain.Account, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) CreateAccount(ctx context.Context, account *domain.Account, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, account, entries)
	return args.Error(0)
}

func (m *MockRepository) GetLedgerEntries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.FarmTx), args.Error(1)
}
