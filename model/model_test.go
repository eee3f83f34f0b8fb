package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountTypeClassification(t *testing.T) {
	assets := []AccountType{AccountChecking, AccountSavings, AccountInvestment, AccountCrypto}
	for _, at := range assets {
		assert.True(t, at.IsAsset(), "%s should be an asset", at)
		assert.False(t, at.IsLiability(), "%s should not be a liability", at)
	}

	liabilities := []AccountType{AccountCreditCard, AccountLoan, AccountMortgage}
	for _, at := range liabilities {
		assert.True(t, at.IsLiability(), "%s should be a liability", at)
		assert.False(t, at.IsAsset(), "%s should not be an asset", at)
	}

	assert.True(t, AccountChecking.IsLiquid())
	assert.True(t, AccountSavings.IsLiquid())
	assert.False(t, AccountInvestment.IsLiquid())
}

func TestFrequencyNextAfter(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, d.AddDate(0, 0, 7), FrequencyWeekly.NextAfter(d))
	assert.Equal(t, d.AddDate(0, 0, 30), FrequencyMonthly.NextAfter(d))
	assert.Equal(t, d.AddDate(0, 0, 365), FrequencyYearly.NextAfter(d))

	assert.True(t, FrequencyBiWeekly.Valid())
	assert.False(t, Frequency("fortnightly").Valid())
}
