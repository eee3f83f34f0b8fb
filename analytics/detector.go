package analytics

import (
	"math"
	"sort"

	"github.com/hearthledger/hearthledger/model"
	"github.com/hearthledger/hearthledger/stats"
)

// DetectorConfig carries the pattern-detection thresholds. The defaults are
// empirically tuned; they are exposed as configuration rather than re-derived
// so that detection results stay stable across releases.
type DetectorConfig struct {
	// MinOccurrences is the minimum group size that can form a pattern.
	MinOccurrences int
	// MaxAmountCVPercent rejects groups whose amount coefficient of
	// variation exceeds this percentage.
	MaxAmountCVPercent float64
	// MaxIntervalStdDevDays rejects groups whose intervals do not cluster
	// within this many days of standard deviation.
	MaxIntervalStdDevDays float64
	// MaxFrequencyDriftDays rejects groups whose mean interval is further
	// than this from the nearest known frequency. The cutoff avoids false
	// positives for irregular spending that happens to average near a
	// calendar boundary.
	MaxFrequencyDriftDays float64
}

// DefaultDetectorConfig returns the production thresholds.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MinOccurrences:        3,
		MaxAmountCVPercent:    15,
		MaxIntervalStdDevDays: 3,
		MaxFrequencyDriftDays: 5,
	}
}

// frequencyOrder fixes the comparison order for nearest-frequency matching so
// detection is deterministic.
var frequencyOrder = []model.Frequency{
	model.FrequencyDaily,
	model.FrequencyWeekly,
	model.FrequencyBiWeekly,
	model.FrequencyMonthly,
	model.FrequencyQuarterly,
	model.FrequencyYearly,
}

// DetectRecurring groups the transactions and analyzes each candidate group
// for a recurring pattern. Results are sorted by confidence descending;
// equal-confidence patterns keep a stable order derived from their group
// keys, so identical input always yields identical output.
func DetectRecurring(transactions []model.Transaction, cfg DetectorConfig) []model.RecurringPattern {
	groups := GroupTransactions(transactions, cfg.MinOccurrences)

	keys := make([]GroupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		if a.Amount != b.Amount {
			return a.Amount < b.Amount
		}
		return a.CategoryID < b.CategoryID
	})

	var patterns []model.RecurringPattern
	for _, key := range keys {
		if p := analyzeGroup(groups[key], cfg); p != nil {
			patterns = append(patterns, *p)
		}
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Confidence > patterns[j].Confidence
	})
	return patterns
}

// analyzeGroup decides whether one candidate group is a genuine recurring
// pattern. Each gate rejects by returning nil; absence of a pattern is a
// normal negative result, not an error.
func analyzeGroup(members []model.Transaction, cfg DetectorConfig) *model.RecurringPattern {
	if len(members) < cfg.MinOccurrences {
		return nil
	}

	sorted := make([]model.Transaction, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	intervals := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		days := sorted[i].Date.Sub(sorted[i-1].Date).Hours() / 24
		intervals = append(intervals, days)
	}

	amounts := make([]float64, len(sorted))
	for i, tx := range sorted {
		amounts[i] = tx.Amount
	}
	amountCV := stats.CoefficientOfVariation(amounts)
	if amountCV > cfg.MaxAmountCVPercent {
		return nil
	}

	meanInterval := stats.Mean(intervals)
	intervalStdDev := stats.PopulationStdDev(intervals, meanInterval)
	if intervalStdDev > cfg.MaxIntervalStdDevDays {
		return nil
	}

	frequency, drift := nearestFrequency(meanInterval)
	if drift > cfg.MaxFrequencyDriftDays {
		return nil
	}

	confidence := patternConfidence(len(sorted), intervalStdDev, amountCV)

	first := sorted[0]
	last := sorted[len(sorted)-1]
	return &model.RecurringPattern{
		Description:         first.Description,
		AverageAmount:       math.Round(stats.Mean(amounts)*100) / 100,
		Frequency:           frequency,
		CategoryID:          first.CategoryID,
		AccountID:           first.AccountID,
		Type:                first.Type,
		OccurrenceCount:     len(sorted),
		FirstDate:           first.Date,
		LastDate:            last.Date,
		AverageIntervalDays: meanInterval,
		Confidence:          confidence,
		NextExpectedDate:    frequency.NextAfter(last.Date),
	}
}

// nearestFrequency returns the frequency whose nominal interval is closest to
// the mean interval, and the absolute drift in days.
func nearestFrequency(meanInterval float64) (model.Frequency, float64) {
	best := frequencyOrder[0]
	bestDrift := math.Abs(meanInterval - best.Days())
	for _, f := range frequencyOrder[1:] {
		drift := math.Abs(meanInterval - f.Days())
		if drift < bestDrift {
			best = f
			bestDrift = drift
		}
	}
	return best, bestDrift
}

// patternConfidence scores a pattern in [0,1]. The weighting favors interval
// and amount stability (0.4 each) over raw occurrence count (0.2, saturating
// at 12 occurrences).
func patternConfidence(occurrences int, intervalStdDev, amountCVPercent float64) float64 {
	occurrenceScore := math.Min(float64(occurrences)/12, 1)
	intervalScore := 1 - math.Min(intervalStdDev/10, 1)
	amountScore := 1 - amountCVPercent/100

	confidence := 0.2*occurrenceScore + 0.4*intervalScore + 0.4*amountScore
	return math.Max(0, math.Min(1, confidence))
}
