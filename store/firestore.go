package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hearthledger/hearthledger/model"
)

// Firestore collection names.
const (
	transactionsCollection = "transactions"
	accountsCollection     = "accounts"
	budgetsCollection      = "budgets"
)

// FirestoreStore implements Store against Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// ListTransactions lists the user's transactions within [start, end].
// NOTE: field names must match Go struct field names (PascalCase), which is
// how Firestore serializes the model structs.
func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string, start, end time.Time) ([]model.Transaction, error) {
	query := s.client.Collection(transactionsCollection).
		Where("UserID", "==", userID).
		Where("Date", ">=", start).
		Where("Date", "<=", end).
		OrderBy("Date", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var tx model.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, fmt.Errorf("failed to parse transaction %s: %w", doc.Ref.ID, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// ListAccounts lists all of the user's accounts.
func (s *FirestoreStore) ListAccounts(ctx context.Context, userID string) ([]model.Account, error) {
	query := s.client.Collection(accountsCollection).
		Where("UserID", "==", userID).
		OrderBy(firestore.DocumentID, firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]model.Account, 0, len(docs))
	for _, doc := range docs {
		var a model.Account
		if err := doc.DataTo(&a); err != nil {
			return nil, fmt.Errorf("failed to parse account %s: %w", doc.Ref.ID, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// ListBudgets lists the user's budget rows for one month.
func (s *FirestoreStore) ListBudgets(ctx context.Context, userID, month string) ([]model.Budget, error) {
	query := s.client.Collection(budgetsCollection).
		Where("UserID", "==", userID).
		Where("Month", "==", month).
		OrderBy(firestore.DocumentID, firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	budgets := make([]model.Budget, 0, len(docs))
	for _, doc := range docs {
		var b model.Budget
		if err := doc.DataTo(&b); err != nil {
			return nil, fmt.Errorf("failed to parse budget %s: %w", doc.Ref.ID, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}
