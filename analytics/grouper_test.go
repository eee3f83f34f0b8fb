package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hearthledger/hearthledger/model"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "NETFLIX.COM", "netflix.com"},
		{"strips year suffix", "Spotify Premium 2024", "spotify premium"},
		{"strips dd/mm fragment", "GYM MEMBERSHIP 03/01", "gym membership"},
		{"strips dd/mm/yyyy fragment", "Rent payment 01/02/2024", "rent payment"},
		{"collapses whitespace", "  Acme   Corp  Salary ", "acme corp salary"},
		{"same merchant different dates", "Netflix 05/01", "netflix"},
		{"keeps short numbers", "Store 42", "store 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDescription(tt.in))
		})
	}
}

func TestNormalizeDescriptionDateSuffixesMatch(t *testing.T) {
	a := NormalizeDescription("Netflix 01/06")
	b := NormalizeDescription("NETFLIX 01/07/2024")
	assert.Equal(t, a, b)
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 20.0, RoundAmount(15.99))
	assert.Equal(t, 10.0, RoundAmount(14.99))
	assert.Equal(t, 1000.0, RoundAmount(1004.0))
	assert.Equal(t, 0.0, RoundAmount(4.0))
	assert.Equal(t, 1000.0, RoundAmount(996.0))
}

func TestGroupTransactionsPrefilter(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var txns []model.Transaction
	// Three occurrences of one merchant, two of another.
	for i := 0; i < 3; i++ {
		txns = append(txns, model.Transaction{
			ID: "a" + string(rune('0'+i)), Date: base.AddDate(0, i, 0),
			Description: "Netflix", Amount: 15.99, Type: model.TransactionExpense,
		})
	}
	for i := 0; i < 2; i++ {
		txns = append(txns, model.Transaction{
			ID: "b" + string(rune('0'+i)), Date: base.AddDate(0, i, 0),
			Description: "One-off store", Amount: 80, Type: model.TransactionExpense,
		})
	}

	groups := GroupTransactions(txns, 3)
	assert.Len(t, groups, 1)
	for key, members := range groups {
		assert.Equal(t, "netflix", key.Description)
		assert.Len(t, members, 3)
	}
}

func TestGroupTransactionsSplitsByTypeAndCategory(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var txns []model.Transaction
	for i := 0; i < 3; i++ {
		txns = append(txns,
			model.Transaction{Date: base.AddDate(0, i, 0), Description: "Acme", Amount: 100, Type: model.TransactionExpense, CategoryID: "cat-1"},
			model.Transaction{Date: base.AddDate(0, i, 0), Description: "Acme", Amount: 100, Type: model.TransactionExpense, CategoryID: "cat-2"},
			model.Transaction{Date: base.AddDate(0, i, 0), Description: "Acme", Amount: 100, Type: model.TransactionIncome, CategoryID: "cat-1"},
		)
	}
	groups := GroupTransactions(txns, 0)
	assert.Len(t, groups, 3)
}
