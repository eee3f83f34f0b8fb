package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/hearthledger/hearthledger/model"
	"github.com/hearthledger/hearthledger/stats"
)

// monthLayout is the calendar-month key format used throughout the core.
const monthLayout = "2006-01"

// TargetSavingsRatePercent is the savings rate that earns a full savings
// score in the health calculation.
const TargetSavingsRatePercent = 20.0

// parseMonth validates and parses a "2006-01" month string.
func parseMonth(month string) (time.Time, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must use YYYY-MM, got %q", ErrInvalidArgument, month)
	}
	return t, nil
}

// MonthSummary sums income and expenses within the calendar month boundaries.
// A month with zero income reports a savings rate of 0, never a division
// fault.
func MonthSummary(transactions []model.Transaction, month string) (model.MonthSummary, error) {
	start, err := parseMonth(month)
	if err != nil {
		return model.MonthSummary{}, err
	}
	end := start.AddDate(0, 1, 0)

	summary := model.MonthSummary{Month: month}
	for _, tx := range transactions {
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		summary.TransactionCount++
		switch tx.Type {
		case model.TransactionIncome:
			summary.TotalIncome += tx.Amount
		case model.TransactionExpense:
			summary.TotalExpenses += tx.Amount
		}
	}

	summary.NetIncome = summary.TotalIncome - summary.TotalExpenses
	if summary.TotalIncome > 0 {
		summary.SavingsRatePercent = summary.NetIncome / summary.TotalIncome * 100
	}
	return summary, nil
}

// ExpensesByCategory totals the month's expense transactions per category.
func ExpensesByCategory(transactions []model.Transaction, month string) (map[string]float64, error) {
	start, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 1, 0)

	actuals := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type != model.TransactionExpense {
			continue
		}
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		actuals[tx.CategoryID] += tx.Amount
	}
	return actuals, nil
}

// BudgetAnalysis compares each budget row against actual spend for the month.
// Rows keep the input budget order. A zero budget reports 0 percent used.
func BudgetAnalysis(budgets []model.Budget, actualsByCategory map[string]float64, month string) []model.BudgetAnalysis {
	analyses := make([]model.BudgetAnalysis, 0, len(budgets))
	for _, b := range budgets {
		actual := actualsByCategory[b.CategoryID]
		var percentage float64
		if b.Amount > 0 {
			percentage = actual / b.Amount * 100
		}
		analyses = append(analyses, model.BudgetAnalysis{
			CategoryID:   b.CategoryID,
			Month:        month,
			Budgeted:     b.Amount,
			Actual:       actual,
			Percentage:   percentage,
			IsOverBudget: actual > b.Amount,
		})
	}
	return analyses
}

// NetWorth rolls all account balances up into assets, liabilities and net
// worth. Liability balances are stored negative; their absolute value counts
// toward total liabilities.
func NetWorth(accounts []model.Account) model.NetWorth {
	var nw model.NetWorth
	for _, a := range accounts {
		switch {
		case a.Type.IsAsset():
			nw.TotalAssets += a.Balance
		case a.Type.IsLiability():
			nw.TotalLiabilities += math.Abs(a.Balance)
		}
	}
	nw.NetWorth = nw.TotalAssets - nw.TotalLiabilities
	return nw
}

// HealthScore composes a 0-100 rating from the month's savings rate, the
// debt ratio and the sign of net worth. Weights: 40% savings, 40% debt,
// 20% net worth.
func HealthScore(summary model.MonthSummary, netWorth model.NetWorth) model.HealthScore {
	var debtRatio float64
	if netWorth.TotalAssets > 0 {
		debtRatio = netWorth.TotalLiabilities / netWorth.TotalAssets * 100
	}

	savingsScore := math.Min(summary.SavingsRatePercent/TargetSavingsRatePercent*100, 100)
	if savingsScore < 0 {
		savingsScore = 0
	}
	debtScore := math.Max(100-debtRatio, 0)
	netWorthScore := 50.0
	if netWorth.NetWorth > 0 {
		netWorthScore = 100
	}

	return model.HealthScore{
		OverallScore:     0.4*savingsScore + 0.4*debtScore + 0.2*netWorthScore,
		SavingsScore:     savingsScore,
		DebtScore:        debtScore,
		NetWorthScore:    netWorthScore,
		DebtRatioPercent: debtRatio,
	}
}

// ExpenseStability returns the coefficient of variation of a trailing series
// of monthly expense totals, as a percentage. Lower is more stable.
func ExpenseStability(monthlyExpenses []float64) float64 {
	return stats.CoefficientOfVariation(monthlyExpenses)
}

// ExpenseTrend fits a least-squares line through a monthly expense series.
func ExpenseTrend(monthlyExpenses []float64) model.SpendingTrend {
	slope, rSquared := stats.LinearRegression(monthlyExpenses)
	return model.SpendingTrend{Slope: slope, RSquared: rSquared}
}
