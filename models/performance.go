package models

import "time"

// MaxSnapshotHistory bounds the retained funnel history per offer.
// Oldest snapshots are evicted first.
const MaxSnapshotHistory = 12

// DateRange is the reporting window a snapshot covers
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PerformanceSnapshot is one immutable funnel record for an offer.
// ProposalRate, ConversionRate and Revenue are derived at record time.
type PerformanceSnapshot struct {
	Inquiries      int       `json:"inquiries"`
	Proposals      int       `json:"proposals"`
	Conversions    int       `json:"conversions"`
	AvgDealSize    float64   `json:"avg_deal_size"`
	TimeToClose    int       `json:"time_to_close_days"`
	DateRange      DateRange `json:"date_range"`
	ProposalRate   float64   `json:"proposal_rate"`
	ConversionRate float64   `json:"conversion_rate"`
	Revenue        float64   `json:"revenue"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// Trend classifies the recent direction of conversion performance
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendNoData    Trend = "no-data"
)

// PerformanceSummary aggregates the retained snapshot history
type PerformanceSummary struct {
	TotalInquiries    int     `json:"total_inquiries"`
	TotalProposals    int     `json:"total_proposals"`
	TotalConversions  int     `json:"total_conversions"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgProposalRate   float64 `json:"avg_proposal_rate"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
	AvgDealSize       float64 `json:"avg_deal_size"`
	AvgTimeToClose    float64 `json:"avg_time_to_close"`
	SnapshotCount     int     `json:"snapshot_count"`
	Trend             Trend   `json:"trend"`
}
