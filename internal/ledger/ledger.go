package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tillerlane/CroftBot_Go/internal/clock"
	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// Ledger applies balance mutations to an account aggregate and produces the
// append-only entry recording each mutation's cause. Entries are persisted
// by the caller inside the same transaction as the state change that
// triggered them, so a transition and its ledger effect commit together.
//
// Reads never mutate balances; only Debit and Credit do.
type Ledger struct {
	clock clock.Clock
}

// New creates a Ledger using the given clock for entry timestamps.
func New(clk clock.Clock) *Ledger {
	return &Ledger{clock: clk}
}

// Debit removes amount of resourceType from the account. Fails with
// domain.ErrInvalidAmount for negative amounts and domain.ErrInsufficientFunds
// when the resulting balance would go negative; the balance is checked
// before any mutation.
func (l *Ledger) Debit(account *domain.Account, resourceType string, amount int64, cause string, plotIndex *int, cropType string) (domain.LedgerEntry, error) {
	if amount < 0 {
		return domain.LedgerEntry{}, fmt.Errorf("%w: debit of %d", domain.ErrInvalidAmount, amount)
	}

	current := account.Balances.Amount(resourceType)
	if current < amount {
		return domain.LedgerEntry{}, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, current, amount)
	}

	return l.apply(account, resourceType, -amount, cause, plotIndex, cropType), nil
}

// Credit adds amount of resourceType to the account. Fails with
// domain.ErrInvalidAmount for negative amounts.
func (l *Ledger) Credit(account *domain.Account, resourceType string, amount int64, cause string, plotIndex *int, cropType string) (domain.LedgerEntry, error) {
	if amount < 0 {
		return domain.LedgerEntry{}, fmt.Errorf("%w: credit of %d", domain.ErrInvalidAmount, amount)
	}

	return l.apply(account, resourceType, amount, cause, plotIndex, cropType), nil
}

func (l *Ledger) apply(account *domain.Account, resourceType string, delta int64, cause string, plotIndex *int, cropType string) domain.LedgerEntry {
	if account.Balances == nil {
		account.Balances = make(domain.ResourceBalance)
	}
	account.Balances[resourceType] += delta

	return domain.LedgerEntry{
		ID:           uuid.NewString(),
		AccountID:    account.ID,
		ResourceType: resourceType,
		Delta:        delta,
		Cause:        cause,
		BalanceAfter: account.Balances[resourceType],
		PlotIndex:    plotIndex,
		CropType:     cropType,
		RecordedAt:   l.clock.Now(),
	}
}
