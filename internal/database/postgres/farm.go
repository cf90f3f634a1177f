package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
)

// FarmRepository implements the farm repository for PostgreSQL
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new FarmRepository
func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{db: db}
}

// GetAccountByPlatformID finds an account by its platform-specific ID
func (r *FarmRepository) GetAccountByPlatformID(ctx context.Context, platform, platformID string) (*domain.Account, error) {
	query := `
		SELECT account_id
		FROM account_platform_links
		WHERE platform = $1 AND external_id = $2
	`
	var accountID string
	err := r.db.QueryRow(ctx, query, platform, platformID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}

	return loadAccount(ctx, r.db, accountID, false)
}

// GetAccountByID loads an account aggregate by internal ID
func (r *FarmRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return loadAccount(ctx, r.db, accountID, false)
}

// CreateAccount persists a new account aggregate with its platform links,
// plots, balances and starting-grant ledger entries in one transaction.
// A racing registration for the same platform identity hits the unique
// link constraint and surfaces as domain.ErrConflict.
func (r *FarmRepository) CreateAccount(ctx context.Context, account *domain.Account, entries []domain.LedgerEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer safeRollback(ctx, tx)

	accountQuery := `
		INSERT INTO accounts (account_id, username, active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`
	_, err = tx.Exec(ctx, accountQuery, account.ID, account.Username, account.Active, account.Version, account.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}

	links := map[string]string{
		domain.PlatformDiscord: account.DiscordID,
		domain.PlatformTwitch:  account.TwitchID,
		domain.PlatformYoutube: account.YoutubeID,
	}
	linkQuery := `
		INSERT INTO account_platform_links (account_id, platform, external_id)
		VALUES ($1, $2, $3)
	`
	for platform, externalID := range links {
		if externalID == "" {
			continue
		}
		if _, err := tx.Exec(ctx, linkQuery, account.ID, platform, externalID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s identity already linked", domain.ErrConflict, platform)
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLink, err)
		}
	}

	for i := range account.Plots {
		if err := upsertPlot(ctx, tx, account.ID, &account.Plots[i]); err != nil {
			return err
		}
	}
	if err := upsertBalances(ctx, tx, account); err != nil {
		return err
	}
	if err := insertLedgerEntries(ctx, tx, entries); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetLedgerEntries returns the most recent ledger entries, newest first
func (r *FarmRepository) GetLedgerEntries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, account_id, resource_type, delta, cause, balance_after, plot_index, crop_type, recorded_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY recorded_at DESC, entry_id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEntries, err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var cropType *string
		if err := rows.Scan(&e.ID, &e.AccountID, &e.ResourceType, &e.Delta, &e.Cause, &e.BalanceAfter, &e.PlotIndex, &cropType, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		if cropType != nil {
			e.CropType = *cropType
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// BeginTx starts a new transaction
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &FarmTx{tx: tx}, nil
}

// FarmTx implements repository.FarmTx
type FarmTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *FarmTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return err
	}
	return nil
}

// Rollback rolls back the transaction
func (t *FarmTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return err
	}
	return nil
}

// GetAccountForUpdate loads the account aggregate with a row lock
func (t *FarmTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	return loadAccount(ctx, t.tx, accountID, true)
}

// SaveAccount persists the aggregate with an optimistic version check. The
// UPDATE only matches when the stored version equals the loaded one; zero
// rows affected means another writer got there first.
func (t *FarmTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET username = $1, active = $2, version = version + 1, updated_at = NOW()
		WHERE account_id = $3 AND version = $4
	`
	tag, err := t.tx.Exec(ctx, query, account.Username, account.Active, account.ID, account.Version)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAccount, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: version %d is stale", domain.ErrConflict, account.Version)
	}

	for i := range account.Plots {
		if err := upsertPlot(ctx, t.tx, account.ID, &account.Plots[i]); err != nil {
			return err
		}
	}
	if err := upsertBalances(ctx, t.tx, account); err != nil {
		return err
	}

	account.Version++
	return nil
}

// InsertLedgerEntries appends ledger records within the transaction
func (t *FarmTx) InsertLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	return insertLedgerEntries(ctx, t.tx, entries)
}

// loadAccount assembles the full aggregate: account row, platform links,
// plots in index order and balances.
func loadAccount(ctx context.Context, q querier, accountID string, forUpdate bool) (*domain.Account, error) {
	accountQuery := `
		SELECT account_id, username, active, version, created_at
		FROM accounts
		WHERE account_id = $1
	`
	if forUpdate {
		accountQuery += " FOR UPDATE"
	}

	var acct domain.Account
	err := q.QueryRow(ctx, accountQuery, accountID).
		Scan(&acct.ID, &acct.Username, &acct.Active, &acct.Version, &acct.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}

	if err := loadLinks(ctx, q, &acct); err != nil {
		return nil, err
	}
	if err := loadPlots(ctx, q, &acct); err != nil {
		return nil, err
	}
	if err := loadBalances(ctx, q, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func loadLinks(ctx context.Context, q querier, acct *domain.Account) error {
	query := `
		SELECT platform, external_id
		FROM account_platform_links
		WHERE account_id = $1
	`
	rows, err := q.Query(ctx, query, acct.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetLinks, err)
	}
	defer rows.Close()

	for rows.Next() {
		var platform, externalID string
		if err := rows.Scan(&platform, &externalID); err != nil {
			return fmt.Errorf("failed to scan platform link: %w", err)
		}
		switch platform {
		case domain.PlatformDiscord:
			acct.DiscordID = externalID
		case domain.PlatformTwitch:
			acct.TwitchID = externalID
		case domain.PlatformYoutube:
			acct.YoutubeID = externalID
		}
	}
	return rows.Err()
}

func loadPlots(ctx context.Context, q querier, acct *domain.Account) error {
	query := `
		SELECT plot_index, state, crop_type, planted_at, ready_at, last_evaluated_at
		FROM plots
		WHERE account_id = $1
		ORDER BY plot_index
	`
	rows, err := q.Query(ctx, query, acct.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetPlots, err)
	}
	defer rows.Close()

	for rows.Next() {
		var plot domain.Plot
		var state string
		var cropType *string
		var plantedAt, readyAt *time.Time
		if err := rows.Scan(&plot.Index, &state, &cropType, &plantedAt, &readyAt, &plot.LastEvaluatedAt); err != nil {
			return fmt.Errorf("failed to scan plot: %w", err)
		}
		plot.State = domain.PlotState(state)
		if cropType != nil && plantedAt != nil && readyAt != nil {
			plot.Crop = &domain.CropInstance{
				CropType:  *cropType,
				PlantedAt: *plantedAt,
				ReadyAt:   *readyAt,
			}
		}
		acct.Plots = append(acct.Plots, plot)
	}
	return rows.Err()
}

func loadBalances(ctx context.Context, q querier, acct *domain.Account) error {
	query := `
		SELECT resource_type, amount
		FROM balances
		WHERE account_id = $1
	`
	rows, err := q.Query(ctx, query, acct.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetBalances, err)
	}
	defer rows.Close()

	acct.Balances = make(domain.ResourceBalance)
	for rows.Next() {
		var resourceType string
		var amount int64
		if err := rows.Scan(&resourceType, &amount); err != nil {
			return fmt.Errorf("failed to scan balance: %w", err)
		}
		acct.Balances[resourceType] = amount
	}
	return rows.Err()
}

func upsertPlot(ctx context.Context, q querier, accountID string, plot *domain.Plot) error {
	query := `
		INSERT INTO plots (account_id, plot_index, state, crop_type, planted_at, ready_at, last_evaluated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id, plot_index) DO UPDATE
		SET state = EXCLUDED.state,
		    crop_type = EXCLUDED.crop_type,
		    planted_at = EXCLUDED.planted_at,
		    ready_at = EXCLUDED.ready_at,
		    last_evaluated_at = EXCLUDED.last_evaluated_at
	`
	var cropType *string
	var plantedAt, readyAt *time.Time
	if plot.Crop != nil {
		cropType = &plot.Crop.CropType
		plantedAt = &plot.Crop.PlantedAt
		readyAt = &plot.Crop.ReadyAt
	}
	_, err := q.Exec(ctx, query, accountID, plot.Index, string(plot.State), cropType, plantedAt, readyAt, plot.LastEvaluatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlot, err)
	}
	return nil
}

func upsertBalances(ctx context.Context, q querier, acct *domain.Account) error {
	query := `
		INSERT INTO balances (account_id, resource_type, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, resource_type) DO UPDATE
		SET amount = EXCLUDED.amount
	`
	for resourceType, amount := range acct.Balances {
		if _, err := q.Exec(ctx, query, acct.ID, resourceType, amount); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertBalance, err)
		}
	}
	return nil
}

func insertLedgerEntries(ctx context.Context, q querier, entries []domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (entry_id, account_id, resource_type, delta, cause, balance_after, plot_index, crop_type, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, e := range entries {
		var cropType *string
		if e.CropType != "" {
			cropType = &e.CropType
		}
		if _, err := q.Exec(ctx, query, e.ID, e.AccountID, e.ResourceType, e.Delta, e.Cause, e.BalanceAfter, e.PlotIndex, cropType, e.RecordedAt); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEntry, err)
		}
	}
	return nil
}
