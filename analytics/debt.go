package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/hearthledger/hearthledger/model"
)

// Minimum-payment rules per debt type.
const (
	CreditCardMinPaymentRate  = 0.03
	CreditCardMinPaymentFloor = 25.0
	OtherDebtMinPaymentRate   = 0.01
)

// estimatedAPR orders debts for the avalanche simulation. The exact figures
// only matter relatively: credit cards are assumed to carry the highest rate.
var estimatedAPR = map[model.AccountType]float64{
	model.AccountCreditCard: 0.22,
	model.AccountLoan:       0.08,
	model.AccountMortgage:   0.055,
}

// MinimumPayment estimates the monthly minimum for one debt account:
// credit cards pay max(3% of balance, a fixed floor), other debt types 1%.
func MinimumPayment(a model.Account) float64 {
	balance := math.Abs(a.Balance)
	if balance == 0 {
		return 0
	}
	if a.Type == model.AccountCreditCard {
		return math.Max(balance*CreditCardMinPaymentRate, CreditCardMinPaymentFloor)
	}
	return balance * OtherDebtMinPaymentRate
}

// DebtTracking summarizes outstanding debt and estimates a debt-freedom date
// with a single-pass avalanche: debts are ordered by descending estimated
// rate and the full extra payment capacity (income minus expenses, when
// positive) goes to the first debt's minimum payment. Freed-up payments are
// NOT rolled over to later debts once the first is retired; downstream
// consumers depend on this simplified estimate, so it must not be replaced
// with a full month-by-month amortization.
func DebtTracking(accounts []model.Account, monthlyIncome, monthlyExpenses float64, today time.Time) model.DebtTrackingResult {
	var debts []model.Account
	var totalDebt float64
	for _, a := range accounts {
		if a.Type.IsLiability() && a.Balance < 0 {
			debts = append(debts, a)
			totalDebt += math.Abs(a.Balance)
		}
	}

	var dti float64
	if monthlyIncome > 0 {
		dti = totalDebt / (monthlyIncome * 12) * 100
	}

	var minPayments float64
	for _, d := range debts {
		minPayments += MinimumPayment(d)
	}

	result := model.DebtTrackingResult{
		TotalDebt:                totalDebt,
		DebtToIncomeRatioPercent: dti,
		MonthlyMinPayments:       minPayments,
	}
	if totalDebt == 0 {
		return result
	}

	// Highest estimated rate first; ties broken by balance then ID so the
	// schedule is deterministic.
	sort.Slice(debts, func(i, j int) bool {
		ri, rj := estimatedAPR[debts[i].Type], estimatedAPR[debts[j].Type]
		if ri != rj {
			return ri > rj
		}
		bi, bj := math.Abs(debts[i].Balance), math.Abs(debts[j].Balance)
		if bi != bj {
			return bi > bj
		}
		return debts[i].ID < debts[j].ID
	})

	extra := monthlyIncome - monthlyExpenses
	if extra < 0 {
		extra = 0
	}

	totalMonths := 0
	for i, d := range debts {
		payment := MinimumPayment(d)
		if i == 0 {
			payment += extra
		}
		if payment <= 0 {
			return result
		}
		totalMonths += int(math.Ceil(math.Abs(d.Balance) / payment))
	}

	freedom := today.AddDate(0, totalMonths, 0)
	result.DebtFreedomDate = &freedom
	return result
}
