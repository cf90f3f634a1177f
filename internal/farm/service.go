package farm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tillerlane/CroftBot_Go/internal/account"
	"github.com/tillerlane/CroftBot_Go/internal/clock"
	"github.com/tillerlane/CroftBot_Go/internal/concurrency"
	"github.com/tillerlane/CroftBot_Go/internal/crop"
	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/event"
	"github.com/tillerlane/CroftBot_Go/internal/ledger"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
)

// Service defines the farm engine business logic. Every state-mutating
// operation for an account runs inside that account's exclusive section:
// concurrent chat messages for one account serialize, accounts proceed in
// parallel, and there is no global lock.
type Service interface {
	// Plant sows a crop on one of the account's plots, debiting its cost.
	Plant(ctx context.Context, platform, platformID, username, cropType string, plotIndex int) (*domain.PlantResponse, error)

	// Harvest collects a ready plot, crediting its yield.
	Harvest(ctx context.Context, platform, platformID, username string, plotIndex int) (*domain.HarvestResponse, error)

	// Status reports the account's plots and balances, applying the lazy
	// growth correction within the same transaction as the read.
	Status(ctx context.Context, platform, platformID, username string) (*domain.FarmStatusResponse, error)

	// LedgerHistory returns the account's most recent ledger entries.
	LedgerHistory(ctx context.Context, platform, platformID, username string, limit int) ([]domain.LedgerEntry, error)

	// Grant credits a resource to an account out of band, recorded in the
	// ledger with the admin cause.
	Grant(ctx context.Context, platform, platformID, username, resourceType string, amount int64) (*domain.FarmStatusResponse, error)

	// Dispatch routes a normalized transport action to the matching
	// operation and folds the outcome into an ActionResult.
	Dispatch(ctx context.Context, action domain.UserAction) domain.ActionResult
}

type service struct {
	repo     repository.Farm
	accounts account.Service
	catalog  *crop.Catalog
	ledger   *ledger.Ledger
	clock    clock.Clock
	locks    *concurrency.LockManager
	bus      event.Bus
}

// NewService creates the farm engine service.
func NewService(
	repo repository.Farm,
	accounts account.Service,
	catalog *crop.Catalog,
	ldg *ledger.Ledger,
	clk clock.Clock,
	bus event.Bus,
) Service {
	return &service{
		repo:     repo,
		accounts: accounts,
		catalog:  catalog,
		ledger:   ldg,
		clock:    clk,
		locks:    concurrency.NewLockManager(),
		bus:      bus,
	}
}

// mutation is what an operation closure hands back to the transaction
// runner: ledger entries to append and whether the aggregate was mutated.
type mutation struct {
	entries []domain.LedgerEntry
	dirty   bool
}

// operation runs against a freshly loaded, growth-corrected aggregate.
type operation func(acct *domain.Account, now time.Time) (*mutation, error)

// withAccountLock acquires the per-account exclusive section and runs op
// with conflict retries. The lock is held for the whole load-evaluate-save
// cycle and released on every exit path.
func (s *service) withAccountLock(ctx context.Context, accountID string, op operation) error {
	return s.locks.WithLock(accountID, func() error {
		var lastErr error
		for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
			err := s.runOnce(ctx, accountID, op)
			if err == nil {
				return nil
			}
			if !errors.Is(err, domain.ErrConflict) {
				return err
			}
			lastErr = err
			logger.FromContext(ctx).Warn("Optimistic save conflict, retrying",
				"accountID", accountID, "attempt", attempt)
		}
		return lastErr
	})
}

// runOnce performs one load-evaluate-mutate-save cycle in a single
// transaction. The state transition, the growth correction and the ledger
// effect commit together or roll back together; no partial transition is
// ever persisted.
func (s *service) runOnce(ctx context.Context, accountID string, op operation) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	now := s.clock.Now()

	// Correct-on-read: readiness is recomputed from the stored timestamps
	// before the operation sees any plot state.
	corrected := applyGrowthAll(acct, now)

	m, err := op(acct, now)
	if err != nil {
		return err
	}

	if corrected || m.dirty {
		if err := tx.SaveAccount(ctx, acct); err != nil {
			return err
		}
	}
	if len(m.entries) > 0 {
		if err := tx.InsertLedgerEntries(ctx, m.entries); err != nil {
			return fmt.Errorf("failed to record ledger entries: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Plant sows a crop on one of the account's plots.
func (s *service) Plant(ctx context.Context, platform, platformID, username, cropType string, plotIndex int) (*domain.PlantResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Plant called", "platform", platform, "platformID", platformID, "crop", cropType, "plot", plotIndex)

	def, err := s.catalog.Get(cropType)
	if err != nil {
		return nil, err
	}

	accountID, err := s.accounts.EnsureAccountID(ctx, platform, platformID, username)
	if err != nil {
		return nil, err
	}

	var resp *domain.PlantResponse
	err = s.withAccountLock(ctx, accountID, func(acct *domain.Account, now time.Time) (*mutation, error) {
		plot, err := acct.Plot(plotIndex)
		if err != nil {
			return nil, err
		}

		if err := plantPlot(plot, def, now); err != nil {
			return nil, err
		}

		entry, err := s.ledger.Debit(acct, domain.ResourceMoney, def.PlantingCost, domain.LedgerCausePlantCost, &plot.Index, def.InternalName)
		if err != nil {
			return nil, err
		}

		resp = &domain.PlantResponse{
			PlotIndex: plot.Index,
			CropType:  def.InternalName,
			PlantedAt: plot.Crop.PlantedAt,
			ReadyAt:   plot.Crop.ReadyAt,
			Balance:   acct.Balances.Amount(domain.ResourceMoney),
			Message:   MsgPlantSuccess,
		}
		return &mutation{entries: []domain.LedgerEntry{entry}, dirty: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.CropPlanted, domain.CropPlantedPayloadV1{
		AccountID: accountID,
		CropType:  def.InternalName,
		PlotIndex: plotIndex,
		Cost:      def.PlantingCost,
	})

	log.Info("Plant successful", "accountID", accountID, "crop", def.InternalName, "readyAt", resp.ReadyAt)
	return resp, nil
}

// Harvest collects a ready plot and credits its yield.
func (s *service) Harvest(ctx context.Context, platform, platformID, username string, plotIndex int) (*domain.HarvestResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("Harvest called", "platform", platform, "platformID", platformID, "plot", plotIndex)

	accountID, err := s.accounts.EnsureAccountID(ctx, platform, platformID, username)
	if err != nil {
		return nil, err
	}

	var resp *domain.HarvestResponse
	var harvested domain.CropDefinition
	err = s.withAccountLock(ctx, accountID, func(acct *domain.Account, now time.Time) (*mutation, error) {
		plot, err := acct.Plot(plotIndex)
		if err != nil {
			return nil, err
		}

		cropInstance, err := harvestPlot(plot, now)
		if err != nil {
			return nil, err
		}

		def, err := s.catalog.Get(cropInstance.CropType)
		if err != nil {
			// A planted crop type missing from the catalog means the config
			// shrank underneath stored state; surface as infrastructure.
			return nil, fmt.Errorf("planted crop missing from catalog: %w", err)
		}
		harvested = def

		entry, err := s.ledger.Credit(acct, def.YieldResource, def.YieldAmount, domain.LedgerCauseHarvestYield, &plot.Index, def.InternalName)
		if err != nil {
			return nil, err
		}

		resp = &domain.HarvestResponse{
			PlotIndex:       plot.Index,
			CropType:        def.InternalName,
			ResourcesGained: map[string]int64{def.YieldResource: def.YieldAmount},
			Balances:        acct.Balances.Clone(),
			Message:         MsgHarvestSuccess,
		}
		return &mutation{entries: []domain.LedgerEntry{entry}, dirty: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.CropHarvested, domain.CropHarvestedPayloadV1{
		AccountID: accountID,
		CropType:  harvested.InternalName,
		PlotIndex: plotIndex,
		Resource:  harvested.YieldResource,
		Yield:     harvested.YieldAmount,
	})

	log.Info("Harvest successful", "accountID", accountID, "crop", harvested.InternalName, "yield", harvested.YieldAmount)
	return resp, nil
}

// Status reports plots and balances with the growth correction applied and
// persisted in the same transaction as the read.
func (s *service) Status(ctx context.Context, platform, platformID, username string) (*domain.FarmStatusResponse, error) {
	accountID, err := s.accounts.EnsureAccountID(ctx, platform, platformID, username)
	if err != nil {
		return nil, err
	}

	var resp *domain.FarmStatusResponse
	err = s.withAccountLock(ctx, accountID, func(acct *domain.Account, now time.Time) (*mutation, error) {
		resp = statusFromAccount(acct, now)
		return &mutation{}, nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// LedgerHistory returns the account's most recent ledger entries.
func (s *service) LedgerHistory(ctx context.Context, platform, platformID, username string, limit int) ([]domain.LedgerEntry, error) {
	accountID, err := s.accounts.EnsureAccountID(ctx, platform, platformID, username)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultLedgerLimit
	}
	entries, err := s.repo.GetLedgerEntries(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

// Grant credits a resource out of band, recorded with the admin cause.
func (s *service) Grant(ctx context.Context, platform, platformID, username, resourceType string, amount int64) (*domain.FarmStatusResponse, error) {
	accountID, err := s.accounts.EnsureAccountID(ctx, platform, platformID, username)
	if err != nil {
		return nil, err
	}

	var resp *domain.FarmStatusResponse
	err = s.withAccountLock(ctx, accountID, func(acct *domain.Account, now time.Time) (*mutation, error) {
		entry, err := s.ledger.Credit(acct, resourceType, amount, domain.LedgerCauseAdminGrant, nil, "")
		if err != nil {
			return nil, err
		}
		resp = statusFromAccount(acct, now)
		return &mutation{entries: []domain.LedgerEntry{entry}, dirty: true}, nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Dispatch routes a normalized transport action to the matching operation.
func (s *service) Dispatch(ctx context.Context, action domain.UserAction) domain.ActionResult {
	var (
		data interface{}
		msg  string
		err  error
	)

	switch action.Kind {
	case domain.ActionPlant:
		var resp *domain.PlantResponse
		resp, err = s.Plant(ctx, action.Platform, action.PlatformID, action.Username, action.CropType, action.PlotIndex)
		if err == nil {
			data, msg = resp, resp.Message
		}
	case domain.ActionHarvest:
		var resp *domain.HarvestResponse
		resp, err = s.Harvest(ctx, action.Platform, action.PlatformID, action.Username, action.PlotIndex)
		if err == nil {
			data, msg = resp, resp.Message
		}
	case domain.ActionQuery:
		var resp *domain.FarmStatusResponse
		resp, err = s.Status(ctx, action.Platform, action.PlatformID, action.Username)
		if err == nil {
			data = resp
		}
	default:
		err = fmt.Errorf("%w: unknown action kind %q", domain.ErrInvalidInput, action.Kind)
	}

	if err != nil {
		return domain.ActionResult{Kind: domain.ResultFailure, Message: failureMessage(err)}
	}
	return domain.ActionResult{Kind: domain.ResultSuccess, Message: msg, Data: data}
}

// failureMessage folds an operation error into the user-visible message:
// domain errors explain themselves, everything else gets the generic retry
// message with no internals leaked.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrUnknownCropType),
		errors.Is(err, domain.ErrPlotOccupied),
		errors.Is(err, domain.ErrPlotNotReady),
		errors.Is(err, domain.ErrInvalidPlotIndex),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPlatform),
		errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	default:
		return MsgTryAgain
	}
}

// statusFromAccount builds the status view, including remaining-time hints.
func statusFromAccount(acct *domain.Account, now time.Time) *domain.FarmStatusResponse {
	plots := make([]domain.PlotStatus, 0, len(acct.Plots))
	for i := range acct.Plots {
		plot := &acct.Plots[i]
		status := domain.PlotStatus{
			Index: plot.Index,
			State: plot.State,
		}
		if plot.Crop != nil {
			plantedAt := plot.Crop.PlantedAt
			readyAt := plot.Crop.ReadyAt
			status.CropType = plot.Crop.CropType
			status.PlantedAt = &plantedAt
			status.ReadyAt = &readyAt
			if remaining := readyAt.Sub(now); remaining > 0 {
				status.RemainingSeconds = int64(remaining.Seconds())
			}
		}
		plots = append(plots, status)
	}

	return &domain.FarmStatusResponse{
		AccountID: acct.ID,
		Username:  acct.Username,
		Balances:  acct.Balances.Clone(),
		Plots:     plots,
	}
}

func (s *service) publish(ctx context.Context, eventType event.Type, payload interface{}) {
	if s.bus == nil {
		return
	}
	e := event.Event{Version: domain.EventSchemaVersion, Type: eventType, Payload: payload}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "type", eventType, "error", err)
	}
}
