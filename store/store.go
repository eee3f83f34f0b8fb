// Package store defines the read-only storage boundary the analytics core
// pulls its inputs through, with an in-memory implementation for tests and
// local development and a Firestore implementation for production.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/hearthledger/hearthledger/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store answers the three queries the analytics core needs. Implementations
// must return records for exactly one user; the core never writes.
type Store interface {
	// ListTransactions returns all transactions for the user dated within
	// [start, end], ordered by date ascending.
	ListTransactions(ctx context.Context, userID string, start, end time.Time) ([]model.Transaction, error)

	// ListAccounts returns all accounts for the user.
	ListAccounts(ctx context.Context, userID string) ([]model.Account, error)

	// ListBudgets returns the user's budget rows for one month ("2006-01").
	ListBudgets(ctx context.Context, userID, month string) ([]model.Budget, error)
}
