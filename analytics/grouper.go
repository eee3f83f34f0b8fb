// Package analytics turns raw transaction, account and budget records into
// recurring-transaction patterns and derived financial-health metrics. Every
// computation is a pure, deterministic transform of its inputs; reference
// dates are passed explicitly and nothing reads the wall clock.
package analytics

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hearthledger/hearthledger/model"
)

// MinGroupSize is the prefilter: groups with fewer members are discarded
// before analysis. This is not a confidence signal.
const MinGroupSize = 3

// amountBucket is the rounding granularity for the grouping key. Rounding to
// the nearest 10 absorbs small fee drift between occurrences of the same
// subscription.
const amountBucket = 10.0

var (
	lowerCaser  = cases.Lower(language.Und)
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	datePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,4}(/\d{2,4})?\b`)
)

// GroupKey identifies a candidate recurring-pattern group. Two transactions
// from the same merchant with different trailing date suffixes map to the
// same key.
type GroupKey struct {
	Type        model.TransactionType
	Description string
	Amount      float64
	CategoryID  string
}

// NormalizeDescription lower-cases the description, strips dd/mm-style date
// fragments and embedded 4-digit years, and collapses whitespace. Date
// fragments go first so a dd/yyyy suffix is removed whole rather than
// leaving a dangling day component behind.
func NormalizeDescription(desc string) string {
	s := lowerCaser.String(desc)
	s = datePattern.ReplaceAllString(s, " ")
	s = yearPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// RoundAmount rounds an amount to the nearest multiple of 10.
func RoundAmount(amount float64) float64 {
	return math.Round(amount/amountBucket) * amountBucket
}

// keyFor builds the grouping key for a transaction.
func keyFor(tx model.Transaction) GroupKey {
	return GroupKey{
		Type:        tx.Type,
		Description: NormalizeDescription(tx.Description),
		Amount:      RoundAmount(tx.Amount),
		CategoryID:  tx.CategoryID,
	}
}

// GroupTransactions buckets transactions into candidate recurring-pattern
// groups and drops groups smaller than minSize (MinGroupSize when minSize
// is 0 or negative).
func GroupTransactions(transactions []model.Transaction, minSize int) map[GroupKey][]model.Transaction {
	if minSize <= 0 {
		minSize = MinGroupSize
	}

	groups := make(map[GroupKey][]model.Transaction)
	for _, tx := range transactions {
		key := keyFor(tx)
		groups[key] = append(groups[key], tx)
	}

	for key, members := range groups {
		if len(members) < minSize {
			delete(groups, key)
		}
	}
	return groups
}
