package model

import "time"

// RecurringPattern is a detected subscription, salary or loan payment.
type RecurringPattern struct {
	Description         string
	AverageAmount       float64
	Frequency           Frequency
	CategoryID          string
	AccountID           string
	Type                TransactionType
	OccurrenceCount     int
	FirstDate           time.Time
	LastDate            time.Time
	AverageIntervalDays float64
	Confidence          float64
	NextExpectedDate    time.Time
}

// MonthSummary totals one calendar month of activity.
type MonthSummary struct {
	Month              string
	TotalIncome        float64
	TotalExpenses      float64
	NetIncome          float64
	SavingsRatePercent float64
	TransactionCount   int
}

// BudgetAnalysis compares one budget row against actual spend.
type BudgetAnalysis struct {
	CategoryID   string
	Month        string
	Budgeted     float64
	Actual       float64
	Percentage   float64
	IsOverBudget bool
}

// NetWorth is the asset/liability rollup across all accounts.
type NetWorth struct {
	TotalAssets      float64
	TotalLiabilities float64
	NetWorth         float64
}

// HealthScore is a composite 0-100 financial health rating.
type HealthScore struct {
	OverallScore     float64
	SavingsScore     float64
	DebtScore        float64
	NetWorthScore    float64
	DebtRatioPercent float64
}

// RunwayStatus buckets emergency-fund coverage.
type RunwayStatus string

const (
	RunwayExcellent RunwayStatus = "excellent"
	RunwayGood      RunwayStatus = "good"
	RunwayCaution   RunwayStatus = "caution"
	RunwayCritical  RunwayStatus = "critical"
)

// RunwayResult reports emergency-fund coverage in months of expenses.
type RunwayResult struct {
	EmergencyFundCurrent float64
	EmergencyFundTarget  float64
	RunwayMonths         float64
	RunwayStatus         RunwayStatus
}

// DebtTrackingResult summarizes liabilities and the estimated payoff horizon.
// DebtFreedomDate is nil when there is no debt or no payment capacity.
type DebtTrackingResult struct {
	TotalDebt                float64
	DebtToIncomeRatioPercent float64
	MonthlyMinPayments       float64
	DebtFreedomDate          *time.Time
}

// ForecastMonth is one projected month of cash flow.
type ForecastMonth struct {
	Month             string
	ProjectedIncome   float64
	ProjectedExpenses float64
	ProjectedNet      float64
	CumulativeNet     float64
	ConfidencePercent float64
}

// SpendingTrend is a least-squares trend over a monthly expense series.
type SpendingTrend struct {
	Slope    float64
	RSquared float64
}
