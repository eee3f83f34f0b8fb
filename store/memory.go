package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hearthledger/hearthledger/model"
)

// MemoryStore implements Store with in-memory maps. It is used by tests and
// local development; writes happen only through the seeding helpers.
type MemoryStore struct {
	mu sync.RWMutex

	transactions map[string]model.Transaction
	accounts     map[string]model.Account
	budgets      []model.Budget
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]model.Transaction),
		accounts:     make(map[string]model.Account),
	}
}

// AddTransaction seeds a transaction, minting an ID when missing.
func (s *MemoryStore) AddTransaction(tx model.Transaction) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	s.transactions[tx.ID] = tx
	return tx
}

// AddAccount seeds an account, minting an ID when missing.
func (s *MemoryStore) AddAccount(a model.Account) model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	s.accounts[a.ID] = a
	return a
}

// AddBudget seeds a budget row.
func (s *MemoryStore) AddBudget(b model.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append(s.budgets, b)
}

// ListTransactions returns the user's transactions within [start, end],
// ordered by date ascending with ID as tiebreaker so output is deterministic.
func (s *MemoryStore) ListTransactions(_ context.Context, userID string, start, end time.Time) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Transaction
	for _, tx := range s.transactions {
		if tx.UserID != userID {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListAccounts returns the user's accounts ordered by ID.
func (s *MemoryStore) ListAccounts(_ context.Context, userID string) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Account
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListBudgets returns the user's budget rows for the month, ordered by category.
func (s *MemoryStore) ListBudgets(_ context.Context, userID, month string) ([]model.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Budget
	for _, b := range s.budgets {
		if b.UserID == userID && b.Month == month {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}
