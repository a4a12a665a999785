package app

import (
	"context"
	"time"

	"offerforge/internal/analytics"
	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/google/uuid"
)

// PerformanceService records funnel snapshots against an offer and
// reports aggregate performance.
type PerformanceService struct {
	repo ports.OfferRepository
	now  func() time.Time
}

// RecordRequest carries one funnel snapshot submission
type RecordRequest struct {
	OwnerID     uuid.UUID
	OfferID     uuid.UUID
	Inquiries   int
	Proposals   int
	Conversions int
	AvgDealSize float64
	TimeToClose int
	DateRange   models.DateRange
}

// PerformanceReport is the response for both record and read calls
type PerformanceReport struct {
	Summary  models.PerformanceSummary    `json:"summary"`
	History  []models.PerformanceSnapshot `json:"history"`
	Insights []string                     `json:"insights,omitempty"`
}

// NewPerformanceService creates the performance tracker
func NewPerformanceService(repo ports.OfferRepository) *PerformanceService {
	return &PerformanceService{repo: repo, now: time.Now}
}

// Record validates and appends a snapshot, then returns the refreshed
// report. History is capped; the oldest snapshots are evicted first.
func (s *PerformanceService) Record(ctx context.Context, req RecordRequest) (*PerformanceReport, error) {
	if fields := validateSnapshot(req); len(fields) > 0 {
		return nil, errors.Validation(fields)
	}

	if _, err := s.repo.FindByID(ctx, req.OwnerID, req.OfferID); err != nil {
		return nil, err
	}

	snap := analytics.NewSnapshot(analytics.SnapshotInput{
		Inquiries:   req.Inquiries,
		Proposals:   req.Proposals,
		Conversions: req.Conversions,
		AvgDealSize: req.AvgDealSize,
		TimeToClose: req.TimeToClose,
		DateRange:   req.DateRange,
	}, s.now())

	// Read-modify-write without a lock: two concurrent submissions
	// for the same offer may drop one snapshot. Accepted for now.
	history, err := s.repo.History(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}
	history = analytics.Append(history, snap)
	if err := s.repo.SaveHistory(ctx, req.OfferID, history); err != nil {
		return nil, err
	}

	return &PerformanceReport{
		Summary:  analytics.Summarize(history),
		History:  history,
		Insights: analytics.Insights(history, snap),
	}, nil
}

// Report summarizes the stored history without modifying it
func (s *PerformanceService) Report(ctx context.Context, ownerID, offerID uuid.UUID) (*PerformanceReport, error) {
	if _, err := s.repo.FindByID(ctx, ownerID, offerID); err != nil {
		return nil, err
	}
	history, err := s.repo.History(ctx, offerID)
	if err != nil {
		return nil, err
	}

	report := &PerformanceReport{
		Summary: analytics.Summarize(history),
		History: history,
	}
	if len(history) > 0 {
		report.Insights = analytics.Insights(history, history[len(history)-1])
	}
	return report, nil
}

func validateSnapshot(req RecordRequest) map[string]string {
	fields := map[string]string{}

	if req.Inquiries < 0 {
		fields["inquiries"] = "must be zero or positive"
	}
	if req.Proposals < 0 {
		fields["proposals"] = "must be zero or positive"
	}
	if req.Conversions < 0 {
		fields["conversions"] = "must be zero or positive"
	}
	if req.Proposals > req.Inquiries {
		fields["proposals"] = "cannot exceed inquiries"
	}
	if req.Conversions > req.Proposals {
		fields["conversions"] = "cannot exceed proposals"
	}
	if req.AvgDealSize < 0 {
		fields["avg_deal_size"] = "must be zero or positive"
	}
	if req.TimeToClose < 0 {
		fields["time_to_close_days"] = "must be zero or positive"
	}
	if req.DateRange.Start.IsZero() || req.DateRange.End.IsZero() {
		fields["date_range"] = "start and end are required"
	} else if req.DateRange.End.Before(req.DateRange.Start) {
		fields["date_range"] = "end cannot precede start"
	}
	return fields
}
