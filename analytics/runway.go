package analytics

import (
	"math"

	"github.com/hearthledger/hearthledger/model"
)

// EmergencyFundTargetMonths is how many months of expenses the emergency
// fund should cover.
const EmergencyFundTargetMonths = 6

// Runway status thresholds, in months of expenses covered.
const (
	runwayExcellentMonths = 6
	runwayGoodMonths      = 3
	runwayCautionMonths   = 1
)

// Runway reports how long liquid savings would cover current monthly
// expenses. Liquid assets are checking and savings balances; outstanding
// liabilities reduce the fund, floored at zero.
func Runway(accounts []model.Account, monthlyExpenses float64) model.RunwayResult {
	var liquid, liabilities float64
	for _, a := range accounts {
		switch {
		case a.Type.IsLiquid():
			liquid += a.Balance
		case a.Type.IsLiability():
			liabilities += math.Abs(a.Balance)
		}
	}

	fund := math.Max(0, liquid-liabilities)
	var months float64
	if monthlyExpenses > 0 {
		months = fund / monthlyExpenses
	}

	return model.RunwayResult{
		EmergencyFundCurrent: fund,
		EmergencyFundTarget:  EmergencyFundTargetMonths * monthlyExpenses,
		RunwayMonths:         months,
		RunwayStatus:         runwayStatus(months),
	}
}

func runwayStatus(months float64) model.RunwayStatus {
	switch {
	case months >= runwayExcellentMonths:
		return model.RunwayExcellent
	case months >= runwayGoodMonths:
		return model.RunwayGood
	case months >= runwayCautionMonths:
		return model.RunwayCaution
	default:
		return model.RunwayCritical
	}
}
