package repository

import (
	"context"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// Farm handles persistence of the account aggregate (account, plots,
// balances) and the ledger.
type Farm interface {
	// GetAccountByPlatformID finds an account by its platform-specific ID.
	// Returns domain.ErrAccountNotFound when no link exists.
	GetAccountByPlatformID(ctx context.Context, platform, platformID string) (*domain.Account, error)

	// GetAccountByID loads an account aggregate by internal ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// CreateAccount persists a new account with its initial plots,
	// balances and the ledger entries recording any starting grant, in one
	// transaction. The internal ID is assigned on the passed aggregate.
	CreateAccount(ctx context.Context, account *domain.Account, entries []domain.LedgerEntry) error

	// GetLedgerEntries returns the most recent ledger entries for an
	// account, newest first.
	GetLedgerEntries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error)

	// Transaction support
	BeginTx(ctx context.Context) (FarmTx, error)
}

// FarmTx defines the interface for farm transactions. A state-machine
// transition and its ledger effect are persisted through a single FarmTx so
// they commit or roll back together.
type FarmTx interface {
	Tx

	// GetAccountForUpdate loads the account aggregate with a row lock
	// (FOR UPDATE) so repository-level read-then-write races cannot occur
	// within one process instance.
	GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// SaveAccount persists the aggregate. It fails with domain.ErrConflict
	// when the stored version no longer matches account.Version (optimistic
	// concurrency across process instances); on success the version is
	// incremented on the passed aggregate.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// InsertLedgerEntries appends ledger records within the transaction.
	InsertLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error
}

// Crop handles persistence of the crop catalog.
type Crop interface {
	// UpsertCropDefinition inserts or updates a catalog entry.
	// Returns true when a new row was inserted.
	UpsertCropDefinition(ctx context.Context, def domain.CropDefinition) (bool, error)

	// GetCropDefinitions returns all catalog entries.
	GetCropDefinitions(ctx context.Context) ([]domain.CropDefinition, error)
}
