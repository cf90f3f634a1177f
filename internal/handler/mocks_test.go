package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// MockFarmService implements farm.Service for testing
type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) Plant(ctx context.Context, platform, platformID, username, cropType string, plotIndex int) (*domain.PlantResponse, error) {
	args := m.Called(ctx, platform, platformID, username, cropType, plotIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlantResponse), args.Error(1)
}

func (m *MockFarmService) Harvest(ctx context.Context, platform, platformID, username string, plotIndex int) (*domain.HarvestResponse, error) {
	args := m.Called(ctx, platform, platformID, username, plotIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestResponse), args.Error(1)
}

func (m *MockFarmService) Status(ctx context.Context, platform, platformID, username string) (*domain.FarmStatusResponse, error) {
	args := m.Called(ctx, platform, platformID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmStatusResponse), args.Error(1)
}

func (m *MockFarmService) LedgerHistory(ctx context.Context, platform, platformID, username string, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, platform, platformID, username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockFarmService) Grant(ctx context.Context, platform, platformID, username, resourceType string, amount int64) (*domain.FarmStatusResponse, error) {
	args := m.Called(ctx, platform, platformID, username, resourceType, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmStatusResponse), args.Error(1)
}

func (m *MockFarmService) Dispatch(ctx context.Context, action domain.UserAction) domain.ActionResult {
	args := m.Called(ctx, action)
	return args.Get(0).(domain.ActionResult)
}
