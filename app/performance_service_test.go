package app

import (
	"context"
	"testing"
	"time"

	"offerforge/adapters/memstore"
	"offerforge/internal/errors"
	"offerforge/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(n int) models.DateRange {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*n)
	return models.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
}

func TestRecordDerivesRatesAndRevenue(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	svc := NewPerformanceService(repo)
	report, err := svc.Record(context.Background(), RecordRequest{
		OwnerID:     owner,
		OfferID:     offerID,
		Inquiries:   20,
		Proposals:   10,
		Conversions: 4,
		AvgDealSize: 5000,
		TimeToClose: 21,
		DateRange:   week(0),
	})
	require.NoError(t, err)

	require.Len(t, report.History, 1)
	snap := report.History[0]
	assert.Equal(t, 50.0, snap.ProposalRate)
	assert.Equal(t, 40.0, snap.ConversionRate)
	assert.Equal(t, 20000.0, snap.Revenue)
	assert.Equal(t, models.TrendNoData, report.Summary.Trend)
	assert.NotEmpty(t, report.Insights)
}

func TestRecordCapsHistoryAtRetentionBound(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	svc := NewPerformanceService(repo)
	var last PerformanceReport
	for i := 0; i < models.MaxSnapshotHistory+3; i++ {
		report, err := svc.Record(context.Background(), RecordRequest{
			OwnerID:     owner,
			OfferID:     offerID,
			Inquiries:   10 + i,
			Proposals:   5,
			Conversions: 2,
			AvgDealSize: 4000,
			TimeToClose: 14,
			DateRange:   week(i),
		})
		require.NoError(t, err)
		last = *report
	}

	require.Len(t, last.History, models.MaxSnapshotHistory)
	// Oldest evicted first: the first retained snapshot is submission #4
	assert.Equal(t, 13, last.History[0].Inquiries)
	assert.Equal(t, models.MaxSnapshotHistory, last.Summary.SnapshotCount)
}

func TestRecordRejectsInconsistentFunnel(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	svc := NewPerformanceService(repo)
	_, err := svc.Record(context.Background(), RecordRequest{
		OwnerID:     owner,
		OfferID:     offerID,
		Inquiries:   5,
		Proposals:   10,
		Conversions: 12,
		DateRange:   week(0),
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidation))

	fields := errors.FieldErrors(err)
	assert.Contains(t, fields, "proposals")
	assert.Contains(t, fields, "conversions")
}

func TestRecordRequiresOwnedOffer(t *testing.T) {
	repo := memstore.NewOfferRepository()
	offerID := seedOffer(t, repo, uuid.New())

	svc := NewPerformanceService(repo)
	_, err := svc.Record(context.Background(), RecordRequest{
		OwnerID:     uuid.New(),
		OfferID:     offerID,
		Inquiries:   10,
		Proposals:   5,
		Conversions: 2,
		AvgDealSize: 3000,
		DateRange:   week(0),
	})
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestReportClassifiesImprovingTrend(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	svc := NewPerformanceService(repo)
	conversions := []int{2, 2, 5, 5}
	for i, c := range conversions {
		_, err := svc.Record(context.Background(), RecordRequest{
			OwnerID:     owner,
			OfferID:     offerID,
			Inquiries:   20,
			Proposals:   10,
			Conversions: c,
			AvgDealSize: 4000,
			TimeToClose: 14,
			DateRange:   week(i),
		})
		require.NoError(t, err)
	}

	report, err := svc.Report(context.Background(), owner, offerID)
	require.NoError(t, err)
	assert.Equal(t, models.TrendImproving, report.Summary.Trend)
	assert.Equal(t, 80, report.Summary.TotalInquiries)
	assert.Equal(t, 4, report.Summary.SnapshotCount)
}

func TestReportOnEmptyHistory(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	svc := NewPerformanceService(repo)
	report, err := svc.Report(context.Background(), owner, offerID)
	require.NoError(t, err)

	assert.Equal(t, models.TrendNoData, report.Summary.Trend)
	assert.Zero(t, report.Summary.SnapshotCount)
	assert.Empty(t, report.Insights)
}
