package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/hearthledger/hearthledger/model"
	"github.com/hearthledger/hearthledger/stats"
)

// ForecastConfig controls the cash-flow projection. The growth assumptions
// are explicit and overridable rather than baked in.
type ForecastConfig struct {
	// Months is the forecast horizon.
	Months int
	// HistoryMonths is the trailing window of month summaries to average.
	HistoryMonths int
	// IncomeGrowthRate is the assumed month-over-month income growth.
	IncomeGrowthRate float64
	// ExpenseInflationRate is the assumed month-over-month expense inflation.
	ExpenseInflationRate float64
}

// DefaultForecastConfig returns a 3-month horizon over a 6-month history
// with 2% monthly income growth and 1% expense inflation.
func DefaultForecastConfig() ForecastConfig {
	return ForecastConfig{
		Months:               3,
		HistoryMonths:        6,
		IncomeGrowthRate:     0.02,
		ExpenseInflationRate: 0.01,
	}
}

// Forecast projects cfg.Months of income, expenses and net cash flow from
// the historical month summaries. Forecast months start the month after
// refDate's month. Confidence decays 10 points per month from 90 and is
// floored at 50, so it is non-increasing across the horizon. An empty
// history is valid and projects zeros.
func Forecast(history []model.MonthSummary, refDate time.Time, cfg ForecastConfig) ([]model.ForecastMonth, error) {
	if cfg.Months < 1 {
		return nil, fmt.Errorf("%w: forecast horizon must be at least 1 month, got %d", ErrInvalidArgument, cfg.Months)
	}

	incomes := make([]float64, len(history))
	expenses := make([]float64, len(history))
	for i, m := range history {
		incomes[i] = m.TotalIncome
		expenses[i] = m.TotalExpenses
	}
	avgIncome := stats.Mean(incomes)
	avgExpenses := stats.Mean(expenses)

	firstOfMonth := time.Date(refDate.Year(), refDate.Month(), 1, 0, 0, 0, 0, refDate.Location())

	forecast := make([]model.ForecastMonth, 0, cfg.Months)
	var cumulative float64
	for i := 0; i < cfg.Months; i++ {
		income := avgIncome * (1 + cfg.IncomeGrowthRate*float64(i))
		expense := avgExpenses * (1 + cfg.ExpenseInflationRate*float64(i))
		net := income - expense
		cumulative += net

		forecast = append(forecast, model.ForecastMonth{
			Month:             firstOfMonth.AddDate(0, i+1, 0).Format(monthLayout),
			ProjectedIncome:   income,
			ProjectedExpenses: expense,
			ProjectedNet:      net,
			CumulativeNet:     cumulative,
			ConfidencePercent: math.Max(50, 90-10*float64(i)),
		})
	}
	return forecast, nil
}
