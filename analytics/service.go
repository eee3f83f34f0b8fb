package analytics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hearthledger/hearthledger/model"
	"github.com/hearthledger/hearthledger/store"
)

// DefaultLookbackDays is the pattern-detection window when the caller passes 0.
const DefaultLookbackDays = 365

// MonthlyReport bundles the month's derived metrics for downstream
// consumers (alerting, insight panels, LLM context builders).
type MonthlyReport struct {
	Summary  model.MonthSummary
	Budgets  []model.BudgetAnalysis
	NetWorth model.NetWorth
	Health   model.HealthScore
}

// Service pulls read-only records from the storage collaborator and runs the
// pure analytics over them. It holds no mutable state; every method is safe
// for concurrent use and deterministic given the store contents and the
// explicit reference dates.
type Service struct {
	store store.Store
	log   *logrus.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(st store.Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Service{store: st, log: log}
}

// DetectRecurring detects recurring patterns in the user's transactions over
// the lookback window ending at asOf. A lookbackDays of 0 means
// DefaultLookbackDays; a negative value is a contract violation.
func (s *Service) DetectRecurring(ctx context.Context, userID string, asOf time.Time, lookbackDays int, cfg DetectorConfig) ([]model.RecurringPattern, error) {
	if lookbackDays < 0 {
		return nil, fmt.Errorf("%w: lookback days must not be negative, got %d", ErrInvalidArgument, lookbackDays)
	}
	if lookbackDays == 0 {
		lookbackDays = DefaultLookbackDays
	}

	start := asOf.AddDate(0, 0, -lookbackDays)
	transactions, err := s.store.ListTransactions(ctx, userID, start, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	patterns := DetectRecurring(transactions, cfg)
	s.log.WithFields(logrus.Fields{
		"user_id":      userID,
		"transactions": len(transactions),
		"patterns":     len(patterns),
	}).Debug("recurring pattern detection completed")
	return patterns, nil
}

// MonthlyReport computes the month summary, budget analysis, net worth and
// health score for one calendar month.
func (s *Service) MonthlyReport(ctx context.Context, userID, month string) (*MonthlyReport, error) {
	start, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := s.store.ListTransactions(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	budgets, err := s.store.ListBudgets(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summary, err := MonthSummary(transactions, month)
	if err != nil {
		return nil, err
	}
	actuals, err := ExpensesByCategory(transactions, month)
	if err != nil {
		return nil, err
	}
	netWorth := NetWorth(accounts)

	return &MonthlyReport{
		Summary:  summary,
		Budgets:  BudgetAnalysis(budgets, actuals, month),
		NetWorth: netWorth,
		Health:   HealthScore(summary, netWorth),
	}, nil
}

// Runway computes emergency-fund coverage using the expenses of asOf's
// calendar month.
func (s *Service) Runway(ctx context.Context, userID string, asOf time.Time) (model.RunwayResult, error) {
	summary, accounts, err := s.currentMonthInputs(ctx, userID, asOf)
	if err != nil {
		return model.RunwayResult{}, err
	}
	return Runway(accounts, summary.TotalExpenses), nil
}

// DebtTracking summarizes the user's debt position as of the given date.
func (s *Service) DebtTracking(ctx context.Context, userID string, asOf time.Time) (model.DebtTrackingResult, error) {
	summary, accounts, err := s.currentMonthInputs(ctx, userID, asOf)
	if err != nil {
		return model.DebtTrackingResult{}, err
	}
	return DebtTracking(accounts, summary.TotalIncome, summary.TotalExpenses, asOf), nil
}

// Forecast projects future months of cash flow from the trailing history
// ending with asOf's month.
func (s *Service) Forecast(ctx context.Context, userID string, asOf time.Time, cfg ForecastConfig) ([]model.ForecastMonth, error) {
	if cfg.Months < 1 {
		return nil, fmt.Errorf("%w: forecast horizon must be at least 1 month, got %d", ErrInvalidArgument, cfg.Months)
	}
	if cfg.HistoryMonths < 1 {
		return nil, fmt.Errorf("%w: history window must be at least 1 month, got %d", ErrInvalidArgument, cfg.HistoryMonths)
	}

	history, err := s.monthHistory(ctx, userID, asOf, cfg.HistoryMonths)
	if err != nil {
		return nil, err
	}
	return Forecast(history, asOf, cfg)
}

// Trend fits a least-squares trend over the trailing months of expense
// totals ending with asOf's month.
func (s *Service) Trend(ctx context.Context, userID string, asOf time.Time, months int) (model.SpendingTrend, error) {
	if months < 2 {
		return model.SpendingTrend{}, fmt.Errorf("%w: trend window must be at least 2 months, got %d", ErrInvalidArgument, months)
	}

	history, err := s.monthHistory(ctx, userID, asOf, months)
	if err != nil {
		return model.SpendingTrend{}, err
	}
	expenses := make([]float64, len(history))
	for i, m := range history {
		expenses[i] = m.TotalExpenses
	}
	return ExpenseTrend(expenses), nil
}

// currentMonthInputs fetches the accounts and the month summary for asOf's
// calendar month.
func (s *Service) currentMonthInputs(ctx context.Context, userID string, asOf time.Time) (model.MonthSummary, []model.Account, error) {
	month := asOf.Format(monthLayout)
	start, _ := parseMonth(month)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := s.store.ListTransactions(ctx, userID, start, end)
	if err != nil {
		return model.MonthSummary{}, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return model.MonthSummary{}, nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summary, err := MonthSummary(transactions, month)
	if err != nil {
		return model.MonthSummary{}, nil, err
	}
	return summary, accounts, nil
}

// monthHistory builds per-month summaries for the window of months ending
// with asOf's month, oldest first. One store query covers the whole window.
func (s *Service) monthHistory(ctx context.Context, userID string, asOf time.Time, months int) ([]model.MonthSummary, error) {
	firstOfCurrent := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	windowStart := firstOfCurrent.AddDate(0, -(months - 1), 0)
	windowEnd := firstOfCurrent.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := s.store.ListTransactions(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	history := make([]model.MonthSummary, 0, months)
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0).Format(monthLayout)
		summary, err := MonthSummary(transactions, month)
		if err != nil {
			return nil, err
		}
		history = append(history, summary)
	}
	return history, nil
}
