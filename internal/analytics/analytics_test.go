package analytics

import (
	"testing"
	"time"

	"offerforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapWithRate(rate float64) models.PerformanceSnapshot {
	return models.PerformanceSnapshot{ConversionRate: rate}
}

func historyWithRates(rates ...float64) []models.PerformanceSnapshot {
	out := make([]models.PerformanceSnapshot, 0, len(rates))
	for _, r := range rates {
		out = append(out, snapWithRate(r))
	}
	return out
}

func TestNewSnapshotDerivations(t *testing.T) {
	snap := NewSnapshot(SnapshotInput{
		Inquiries:   100,
		Proposals:   30,
		Conversions: 9,
		AvgDealSize: 20000,
		TimeToClose: 45,
	}, time.Now())

	assert.Equal(t, 30.0, snap.ProposalRate)
	assert.Equal(t, 30.0, snap.ConversionRate)
	assert.Equal(t, 180000.0, snap.Revenue)
}

func TestNewSnapshotZeroDenominators(t *testing.T) {
	snap := NewSnapshot(SnapshotInput{Inquiries: 0, Proposals: 0, Conversions: 0}, time.Now())
	assert.Zero(t, snap.ProposalRate)
	assert.Zero(t, snap.ConversionRate)
}

func TestTrendImproving(t *testing.T) {
	h := historyWithRates(10, 10, 20, 20)
	assert.Equal(t, models.TrendImproving, Summarize(h).Trend)
}

func TestTrendDeclining(t *testing.T) {
	h := historyWithRates(20, 20, 10, 10)
	assert.Equal(t, models.TrendDeclining, Summarize(h).Trend)
}

func TestTrendStable(t *testing.T) {
	h := historyWithRates(20, 20, 21, 20)
	assert.Equal(t, models.TrendStable, Summarize(h).Trend)
}

func TestTrendNoDataUnderThreeEntries(t *testing.T) {
	assert.Equal(t, models.TrendNoData, Summarize(historyWithRates(10, 20)).Trend)
	assert.Equal(t, models.TrendNoData, Summarize(nil).Trend)
}

func TestAppendTrimsToRetentionBound(t *testing.T) {
	var h []models.PerformanceSnapshot
	for i := 0; i < 20; i++ {
		h = Append(h, snapWithRate(float64(i)))
	}

	require.Len(t, h, models.MaxSnapshotHistory)
	// Oldest evicted first: the head should be entry 8
	assert.Equal(t, 8.0, h[0].ConversionRate)
	assert.Equal(t, 19.0, h[len(h)-1].ConversionRate)
}

func TestSummarizeTotalsAndAverages(t *testing.T) {
	now := time.Now()
	h := []models.PerformanceSnapshot{
		NewSnapshot(SnapshotInput{Inquiries: 100, Proposals: 30, Conversions: 9, AvgDealSize: 20000, TimeToClose: 40}, now),
		NewSnapshot(SnapshotInput{Inquiries: 50, Proposals: 20, Conversions: 10, AvgDealSize: 10000, TimeToClose: 60}, now),
	}

	s := Summarize(h)
	assert.Equal(t, 150, s.TotalInquiries)
	assert.Equal(t, 50, s.TotalProposals)
	assert.Equal(t, 19, s.TotalConversions)
	assert.Equal(t, 280000.0, s.TotalRevenue)
	assert.Equal(t, 35.0, s.AvgProposalRate)
	assert.Equal(t, 40.0, s.AvgConversionRate)
	assert.Equal(t, 50.0, s.AvgTimeToClose)
	assert.Equal(t, 2, s.SnapshotCount)
}

func TestSummarizeIdempotent(t *testing.T) {
	h := historyWithRates(10, 15, 20, 25)
	first := Summarize(h)
	second := Summarize(h)
	assert.Equal(t, first, second)
}

func TestInsightsRules(t *testing.T) {
	h := historyWithRates(10, 10, 20, 20)
	latest := models.PerformanceSnapshot{ConversionRate: 30, AvgDealSize: 60000, TimeToClose: 100}

	insights := Insights(h, latest)
	require.NotEmpty(t, insights)
	assert.LessOrEqual(t, len(insights), 5)

	joined := ""
	for _, i := range insights {
		joined += i + "\n"
	}
	assert.Contains(t, joined, "raise prices")
	assert.Contains(t, joined, "retention")
	assert.Contains(t, joined, "urgency")
	assert.Contains(t, joined, "improving")
}

func TestInsightsZeroConversionRateIsWeak(t *testing.T) {
	latest := models.PerformanceSnapshot{Inquiries: 20, Proposals: 10, Conversions: 0}

	joined := ""
	for _, i := range Insights(nil, latest) {
		joined += i + "\n"
	}
	assert.Contains(t, joined, "review positioning")
	// Unreported deal size and close time stay quiet
	assert.NotContains(t, joined, "premium tier")
	assert.NotContains(t, joined, "excellent offer-market fit")
}

func TestInsightsCappedAtFive(t *testing.T) {
	h := historyWithRates(10, 10, 20, 20)
	latest := models.PerformanceSnapshot{ConversionRate: 30, AvgDealSize: 60000, TimeToClose: 100}
	assert.LessOrEqual(t, len(Insights(h, latest)), 5)
}

func TestInsightsNoDataMessage(t *testing.T) {
	insights := Insights(nil, models.PerformanceSnapshot{ConversionRate: 15, AvgDealSize: 20000, TimeToClose: 45})
	require.NotEmpty(t, insights)
	assert.Contains(t, insights[len(insights)-1], "trend analysis")
}