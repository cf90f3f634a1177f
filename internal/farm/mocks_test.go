package farm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
)

// MockAccounts implements account.Service for testing
type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) EnsureAccountID(ctx context.Context, platform, platformID, username string) (string, error) {
	args := m.Called(ctx, platform, platformID, username)
	return args.String(0), args.Error(1)
}

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

// memRepo is an in-memory repository.Farm with real optimistic-concurrency
// semantics, for exercising the full load-evaluate-save cycle without a
// database. saveHook, when set, runs before every SaveAccount and can force
// conflicts.
type memRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	links    map[string]string
	entries  []domain.LedgerEntry
	saveHook func(account *domain.Account) error
}

func newMemRepo() *memRepo {
	return &memRepo{
		accounts: make(map[string]*domain.Account),
		links:    make(map[string]string),
	}
}

func (r *memRepo) GetAccountByPlatformID(ctx context.Context, platform, platformID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.links[platform+":"+platformID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(r.accounts[id]), nil
}

func (r *memRepo) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acct, ok := r.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(acct), nil
}

func (r *memRepo) CreateAccount(ctx context.Context, account *domain.Account, entries []domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for platform, platformID := range map[string]string{
		domain.PlatformDiscord: account.DiscordID,
		domain.PlatformTwitch:  account.TwitchID,
		domain.PlatformYoutube: account.YoutubeID,
	} {
		if platformID == "" {
			continue
		}
		key := platform + ":" + platformID
		if _, exists := r.links[key]; exists {
			return domain.ErrConflict
		}
		r.links[key] = account.ID
	}
	r.accounts[account.ID] = copyAccount(account)
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *memRepo) GetLedgerEntries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LedgerEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].AccountID == accountID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *memRepo) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	return &memTx{repo: r}, nil
}

// entriesFor returns all stored ledger entries for an account, oldest first.
func (r *memRepo) entriesFor(accountID string) []domain.LedgerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range r.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out
}

type memTx struct {
	repo    *memRepo
	closed  bool
	pending *domain.Account
	entries []domain.LedgerEntry
}

func (t *memTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	acct, ok := t.repo.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(acct), nil
}

func (t *memTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.saveHook != nil {
		if err := t.repo.saveHook(account); err != nil {
			return err
		}
	}
	stored, ok := t.repo.accounts[account.ID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if stored.Version != account.Version {
		return fmt.Errorf("%w: version %d is stale", domain.ErrConflict, account.Version)
	}
	account.Version++
	t.pending = copyAccount(account)
	return nil
}

func (t *memTx) InsertLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	t.entries = append(t.entries, entries...)
	return nil
}

func (t *memTx) Commit(ctx context.Context) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	if t.pending != nil {
		t.repo.accounts[t.pending.ID] = t.pending
	}
	t.repo.entries = append(t.repo.entries, t.entries...)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func copyAccount(acct *domain.Account) *domain.Account {
	out := *acct
	out.Plots = make([]domain.Plot, len(acct.Plots))
	for i, plot := range acct.Plots {
		out.Plots[i] = plot
		if plot.Crop != nil {
			crop := *plot.Crop
			out.Plots[i].Crop = &crop
		}
	}
	out.Balances = acct.Balances.Clone()
	return &out
}
