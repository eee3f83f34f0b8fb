// Package model defines the financial records consumed and produced by the
// analytics core. Input records (Transaction, Account, Budget) are owned by the
// storage layer and treated as read-only here; derived records are recomputed
// on demand and carry no lifecycle of their own.
package model

import "time"

// TransactionType distinguishes money in from money out. Amounts are always
// non-negative; the sign lives here.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single dated ledger entry for one user.
type Transaction struct {
	ID          string
	UserID      string
	Date        time.Time
	Description string
	Amount      float64
	Type        TransactionType
	CategoryID  string
	AccountID   string
}

// AccountType classifies an account as an asset or a liability holder.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountCrypto     AccountType = "crypto"
	AccountCreditCard AccountType = "credit_card"
	AccountLoan       AccountType = "loan"
	AccountMortgage   AccountType = "mortgage"
)

// IsAsset reports whether balances of this type count toward total assets.
func (t AccountType) IsAsset() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountInvestment, AccountCrypto:
		return true
	}
	return false
}

// IsLiability reports whether balances of this type count toward total
// liabilities. Liability balances are stored negative.
func (t AccountType) IsLiability() bool {
	switch t {
	case AccountCreditCard, AccountLoan, AccountMortgage:
		return true
	}
	return false
}

// IsLiquid reports whether the account counts toward the emergency fund.
func (t AccountType) IsLiquid() bool {
	return t == AccountChecking || t == AccountSavings
}

// Account is a balance snapshot. Balance is signed: negative for liabilities.
type Account struct {
	ID      string
	UserID  string
	Name    string
	Type    AccountType
	Balance float64
}

// Budget is a per-category spending target for one calendar month.
// Month uses the "2006-01" layout.
type Budget struct {
	UserID     string
	CategoryID string
	Month      string
	Amount     float64
}
