// Package analytics aggregates funnel snapshots into summaries, trend
// classifications and qualitative insights.
package analytics

import (
	"fmt"
	"math"
	"time"

	"offerforge/models"

	"github.com/montanaflynn/stats"
)

// Trend thresholds: recent two-entry mean vs the prior two-entry mean.
const (
	improvingRatio  = 1.1
	decliningRatio  = 0.9
	minTrendEntries = 3
	maxInsights     = 5
)

// SnapshotInput is the raw funnel record before derivation
type SnapshotInput struct {
	Inquiries   int
	Proposals   int
	Conversions int
	AvgDealSize float64
	TimeToClose int
	DateRange   models.DateRange
}

// NewSnapshot derives rates and revenue from the raw funnel figures.
// Zero denominators yield zero rates rather than NaN.
func NewSnapshot(in SnapshotInput, now time.Time) models.PerformanceSnapshot {
	snap := models.PerformanceSnapshot{
		Inquiries:   in.Inquiries,
		Proposals:   in.Proposals,
		Conversions: in.Conversions,
		AvgDealSize: in.AvgDealSize,
		TimeToClose: in.TimeToClose,
		DateRange:   in.DateRange,
		Revenue:     float64(in.Conversions) * in.AvgDealSize,
		RecordedAt:  now.UTC(),
	}
	if in.Inquiries > 0 {
		snap.ProposalRate = round2(float64(in.Proposals) / float64(in.Inquiries) * 100)
	}
	if in.Proposals > 0 {
		snap.ConversionRate = round2(float64(in.Conversions) / float64(in.Proposals) * 100)
	}
	return snap
}

// Append adds a snapshot and trims the history to the retention bound,
// evicting oldest entries first.
func Append(history []models.PerformanceSnapshot, snap models.PerformanceSnapshot) []models.PerformanceSnapshot {
	history = append(history, snap)
	if len(history) > models.MaxSnapshotHistory {
		history = history[len(history)-models.MaxSnapshotHistory:]
	}
	return history
}

// Summarize totals the raw metrics, averages the rates and classifies
// the trend. It is a pure function of the history: re-running it over an
// unchanged history yields an identical summary.
func Summarize(history []models.PerformanceSnapshot) models.PerformanceSummary {
	summary := models.PerformanceSummary{
		SnapshotCount: len(history),
		Trend:         classifyTrend(history),
	}
	if len(history) == 0 {
		return summary
	}

	proposalRates := make([]float64, 0, len(history))
	conversionRates := make([]float64, 0, len(history))
	dealSizes := make([]float64, 0, len(history))
	closeTimes := make([]float64, 0, len(history))

	for _, s := range history {
		summary.TotalInquiries += s.Inquiries
		summary.TotalProposals += s.Proposals
		summary.TotalConversions += s.Conversions
		summary.TotalRevenue += s.Revenue
		proposalRates = append(proposalRates, s.ProposalRate)
		conversionRates = append(conversionRates, s.ConversionRate)
		dealSizes = append(dealSizes, s.AvgDealSize)
		closeTimes = append(closeTimes, float64(s.TimeToClose))
	}

	summary.AvgProposalRate = round2(mean(proposalRates))
	summary.AvgConversionRate = round2(mean(conversionRates))
	summary.AvgDealSize = round2(mean(dealSizes))
	summary.AvgTimeToClose = round2(mean(closeTimes))
	return summary
}

// classifyTrend compares the mean conversion rate of the most recent two
// entries against the prior two.
func classifyTrend(history []models.PerformanceSnapshot) models.Trend {
	if len(history) < minTrendEntries {
		return models.TrendNoData
	}

	rates := make([]float64, 0, len(history))
	for _, s := range history {
		rates = append(rates, s.ConversionRate)
	}

	recent := mean(rates[len(rates)-2:])
	olderStart := len(rates) - 4
	if olderStart < 0 {
		olderStart = 0
	}
	older := mean(rates[olderStart : len(rates)-2])

	switch {
	case older == 0:
		if recent > 0 {
			return models.TrendImproving
		}
		return models.TrendStable
	case recent > older*improvingRatio:
		return models.TrendImproving
	case recent < older*decliningRatio:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

// Insights derives up to five qualitative recommendations from the
// latest snapshot and the trend.
func Insights(history []models.PerformanceSnapshot, latest models.PerformanceSnapshot) []string {
	var out []string

	// A zero rate with proposals outstanding is a real signal; a zero
	// deal size or close time just means the metric went unreported.
	if latest.ConversionRate > 25 {
		out = append(out, "Conversion rate is strong; there is room to raise prices.")
	} else if latest.Proposals > 0 && latest.ConversionRate < 10 {
		out = append(out, "Conversion rate is weak; review positioning and offer framing.")
	}

	if latest.AvgDealSize > 50000 {
		out = append(out, "Large average deal size; shift focus toward retention and expansion.")
	} else if latest.Conversions > 0 && latest.AvgDealSize < 10000 {
		out = append(out, "Small average deal size; consider steering buyers toward the premium tier.")
	}

	if latest.TimeToClose > 90 {
		out = append(out, "Sales cycle is long; add urgency drivers or a smaller entry offer.")
	} else if latest.Conversions > 0 && latest.TimeToClose < 30 {
		out = append(out, "Fast close times signal excellent offer-market fit.")
	}

	switch classifyTrend(history) {
	case models.TrendImproving:
		out = append(out, "Conversion trend is improving; double down on what changed recently.")
	case models.TrendDeclining:
		out = append(out, "Conversion trend is declining; audit recent messaging and pricing changes.")
	case models.TrendStable:
		out = append(out, "Conversion trend is stable; test one variable at a time to find lift.")
	default:
		out = append(out, fmt.Sprintf("Record at least %d periods to unlock trend analysis.", minTrendEntries))
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
