package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hearthledger/hearthledger/model"
	"github.com/hearthledger/hearthledger/store"
)

func TestServiceDetectRecurring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)

	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	txns := monthlyExpenses("Netflix", []float64{16, 16, 16, 16, 16, 16})

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", asOf.AddDate(0, 0, -DefaultLookbackDays), asOf).
		Return(txns, nil)

	patterns, err := svc.DetectRecurring(context.Background(), "user-1", asOf, 0, DefaultDetectorConfig())
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, model.FrequencyMonthly, patterns[0].Frequency)
}

func TestServiceDetectRecurringNegativeLookback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)

	_, err := svc.DetectRecurring(context.Background(), "user-1", time.Now().UTC(), -30, DefaultDetectorConfig())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestServiceMonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)

	txns := []model.Transaction{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Amount: 4000, Type: model.TransactionIncome, CategoryID: "salary"},
		{Date: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), Amount: 600, Type: model.TransactionExpense, CategoryID: "food"},
	}
	budgets := []model.Budget{{CategoryID: "food", Month: "2025-05", Amount: 500}}
	accounts := []model.Account{
		{Type: model.AccountChecking, Balance: 8000},
		{Type: model.AccountCreditCard, Balance: -2000},
	}

	mockStore.EXPECT().ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return(txns, nil)
	mockStore.EXPECT().ListBudgets(gomock.Any(), "user-1", "2025-05").Return(budgets, nil)
	mockStore.EXPECT().ListAccounts(gomock.Any(), "user-1").Return(accounts, nil)

	report, err := svc.MonthlyReport(context.Background(), "user-1", "2025-05")
	require.NoError(t, err)

	assert.Equal(t, 4000.0, report.Summary.TotalIncome)
	assert.Equal(t, 600.0, report.Summary.TotalExpenses)
	require.Len(t, report.Budgets, 1)
	assert.True(t, report.Budgets[0].IsOverBudget)
	assert.Equal(t, 6000.0, report.NetWorth.NetWorth)
	assert.GreaterOrEqual(t, report.Health.OverallScore, 0.0)
	assert.LessOrEqual(t, report.Health.OverallScore, 100.0)
}

func TestServiceMonthlyReportInvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(store.NewMockStore(ctrl), nil)
	_, err := svc.MonthlyReport(context.Background(), "user-1", "2025/05")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestServiceRunway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)

	asOf := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		{Date: time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), Amount: 5000, Type: model.TransactionExpense},
	}
	accounts := []model.Account{
		{Type: model.AccountChecking, Balance: 5000},
		{Type: model.AccountSavings, Balance: 10000},
		{Type: model.AccountCreditCard, Balance: -3000},
	}

	mockStore.EXPECT().ListTransactions(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return(txns, nil)
	mockStore.EXPECT().ListAccounts(gomock.Any(), "user-1").Return(accounts, nil)

	result, err := svc.Runway(context.Background(), "user-1", asOf)
	require.NoError(t, err)
	assert.Equal(t, 12000.0, result.EmergencyFundCurrent)
	assert.InDelta(t, 2.4, result.RunwayMonths, 1e-9)
}

func TestServiceForecastUsesTrailingWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)

	asOf := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	windowStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// One salary and one rent payment per month across the window.
	var txns []model.Transaction
	for i := 0; i < 6; i++ {
		txns = append(txns,
			model.Transaction{Date: windowStart.AddDate(0, i, 2), Amount: 4000, Type: model.TransactionIncome},
			model.Transaction{Date: windowStart.AddDate(0, i, 3), Amount: 2500, Type: model.TransactionExpense},
		)
	}

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", windowStart, gomock.Any()).
		Return(txns, nil)

	forecast, err := svc.Forecast(context.Background(), "user-1", asOf, DefaultForecastConfig())
	require.NoError(t, err)
	require.Len(t, forecast, 3)
	assert.Equal(t, "2025-07", forecast[0].Month)
	assert.InDelta(t, 4000, forecast[0].ProjectedIncome, 1e-9)
	assert.InDelta(t, 2500, forecast[0].ProjectedExpenses, 1e-9)
}

func TestServiceForecastInvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(store.NewMockStore(ctrl), nil)

	cfg := DefaultForecastConfig()
	cfg.HistoryMonths = 0
	_, err := svc.Forecast(context.Background(), "user-1", time.Now().UTC(), cfg)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestServiceTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStore(ctrl)
	svc := NewService(mockStore, nil)

	asOf := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	windowStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Expenses rising 100 per month.
	var txns []model.Transaction
	for i := 0; i < 4; i++ {
		txns = append(txns, model.Transaction{
			Date: windowStart.AddDate(0, i, 5), Amount: 1000 + 100*float64(i), Type: model.TransactionExpense,
		})
	}

	mockStore.EXPECT().
		ListTransactions(gomock.Any(), "user-1", windowStart, gomock.Any()).
		Return(txns, nil)

	trend, err := svc.Trend(context.Background(), "user-1", asOf, 4)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, trend.Slope, 1e-9)
	assert.InDelta(t, 1.0, trend.RSquared, 1e-9)
}
