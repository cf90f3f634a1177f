package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tillerlane/CroftBot_Go/internal/clock"
	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/ledger"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
	"github.com/tillerlane/CroftBot_Go/internal/repository"
)

// Cache sizing for the identity lookup cache
const (
	cacheSize = 1024
	cacheTTL  = 5 * time.Minute
)

// Service resolves platform identities to accounts, creating the account on
// first interaction. Accounts are never deleted, only deactivated.
type Service interface {
	// EnsureAccountID returns the internal account ID for a platform
	// identity, registering a new account (with its configured plots and
	// starting grant) when none exists.
	EnsureAccountID(ctx context.Context, platform, platformID, username string) (string, error)
}

type service struct {
	repo   repository.Farm
	ledger *ledger.Ledger
	clock  clock.Clock
	cache  *accountCache

	plotCapacity    int
	startingBalance int64
}

// NewService creates an account service.
func NewService(repo repository.Farm, ldg *ledger.Ledger, clk clock.Clock, plotCapacity int, startingBalance int64) Service {
	return &service{
		repo:            repo,
		ledger:          ldg,
		clock:           clk,
		cache:           newAccountCache(cacheSize, cacheTTL),
		plotCapacity:    plotCapacity,
		startingBalance: startingBalance,
	}
}

// EnsureAccountID resolves or registers the account for a platform identity.
func (s *service) EnsureAccountID(ctx context.Context, platform, platformID, username string) (string, error) {
	if !validPlatform(platform) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, platform)
	}

	if id, ok := s.cache.Get(platform, platformID); ok {
		return id, nil
	}

	acct, err := s.repo.GetAccountByPlatformID(ctx, platform, platformID)
	if err == nil {
		s.cache.Set(platform, platformID, acct.ID)
		return acct.ID, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	id, err := s.register(ctx, platform, platformID, username)
	if err != nil {
		return "", err
	}
	s.cache.Set(platform, platformID, id)
	return id, nil
}

// register creates the account aggregate with its plots and starting grant.
func (s *service) register(ctx context.Context, platform, platformID, username string) (string, error) {
	log := logger.FromContext(ctx)

	now := s.clock.Now()
	acct := &domain.Account{
		ID:        uuid.NewString(),
		Username:  username,
		Active:    true,
		CreatedAt: now,
		Plots:     domain.NewPlots(s.plotCapacity, now),
		Balances:  make(domain.ResourceBalance),
	}

	switch platform {
	case domain.PlatformDiscord:
		acct.DiscordID = platformID
	case domain.PlatformTwitch:
		acct.TwitchID = platformID
	case domain.PlatformYoutube:
		acct.YoutubeID = platformID
	}

	var entries []domain.LedgerEntry
	if s.startingBalance > 0 {
		entry, err := s.ledger.Credit(acct, domain.ResourceMoney, s.startingBalance, domain.LedgerCauseStartingGrant, nil, "")
		if err != nil {
			return "", fmt.Errorf("failed to apply starting grant: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := s.repo.CreateAccount(ctx, acct, entries); err != nil {
		// A concurrent first interaction may have registered the same
		// platform identity; fall back to the stored account.
		if errors.Is(err, domain.ErrConflict) {
			existing, lookupErr := s.repo.GetAccountByPlatformID(ctx, platform, platformID)
			if lookupErr != nil {
				return "", fmt.Errorf("failed to resolve concurrently registered account: %w", lookupErr)
			}
			return existing.ID, nil
		}
		return "", fmt.Errorf("failed to register account: %w", err)
	}

	log.Info("Account registered", "accountID", acct.ID, "platform", platform, "plots", s.plotCapacity)
	return acct.ID, nil
}

func validPlatform(platform string) bool {
	switch platform {
	case domain.PlatformDiscord, domain.PlatformTwitch, domain.PlatformYoutube:
		return true
	}
	return false
}
