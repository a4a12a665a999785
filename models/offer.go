package models

import "time"

// TierName identifies one of the three packages in an offer
type TierName string

const (
	TierStarter TierName = "starter"
	TierCore    TierName = "core"
	TierPremium TierName = "premium"
)

// Tier is one priced service package within an OfferPackage
type Tier struct {
	Name               TierName      `json:"name"`
	DisplayName        string        `json:"display_name"`
	TargetAudience     string        `json:"target_audience"`
	Promise            string        `json:"promise"`
	Scope              []string      `json:"scope"`
	Proof              []string      `json:"proof"`
	Timeline           string        `json:"timeline"`
	Milestones         []string      `json:"milestones"`
	MonthlyPrice       int           `json:"monthly_price"`
	ContractTerm       ContractStyle `json:"contract_term"`
	Guarantee          string        `json:"guarantee"`
	ExpectedLift       string        `json:"expected_lift"`
	ClientRequirements []string      `json:"client_requirements"`
	MonthlyHours       int           `json:"monthly_hours"`
}

// ComparisonRow is one named feature row of the tier comparison matrix
type ComparisonRow struct {
	Feature string `json:"feature"`
	Starter string `json:"starter"`
	Core    string `json:"core"`
	Premium string `json:"premium"`
}

// PricingSummary restates the derived economics behind the three price points
type PricingSummary struct {
	HoursPerClient int    `json:"hours_per_client"`
	StarterPrice   int    `json:"starter_price"`
	CorePrice      int    `json:"core_price"`
	PremiumPrice   int    `json:"premium_price"`
	Narrative      string `json:"narrative"`
}

// FactorImpact classifies a scoring factor's direction
type FactorImpact string

const (
	ImpactPositive FactorImpact = "positive"
	ImpactNegative FactorImpact = "negative"
	ImpactNeutral  FactorImpact = "neutral"
)

// ScoreFactor is one explainable contribution to the conversion score
type ScoreFactor struct {
	Factor string       `json:"factor"`
	Impact FactorImpact `json:"impact"`
	Weight float64      `json:"weight"`
}

// ConversionAssessment predicts how well the package will convert.
// Score is always within [25, 95].
type ConversionAssessment struct {
	Score            int           `json:"score"`
	CredibilityScore int           `json:"credibility_score"`
	MarketFitScore   int           `json:"market_fit_score"`
	ScalabilityScore int           `json:"scalability_score"`
	Factors          []ScoreFactor `json:"factors"`
}

// PackageSource records which path produced the package
type PackageSource string

const (
	SourceGenerated PackageSource = "generated"
	SourceFallback  PackageSource = "fallback"
)

// Provenance records how and at what cost the package was produced
type Provenance struct {
	Source           PackageSource `json:"source"`
	Model            string        `json:"model,omitempty"`
	PromptTokens     int           `json:"prompt_tokens"`
	CompletionTokens int           `json:"completion_tokens"`
	TotalTokens      int           `json:"total_tokens"`
	LatencyMs        int64         `json:"latency_ms"`
	GeneratedAt      time.Time     `json:"generated_at"`
}

// OfferPackage is the complete three-tier commercial offer
type OfferPackage struct {
	Tiers      []Tier               `json:"tiers"`
	Comparison []ComparisonRow      `json:"comparison"`
	Pricing    PricingSummary       `json:"pricing"`
	Assessment ConversionAssessment `json:"assessment"`
	Provenance Provenance           `json:"provenance"`
}

// TierByName returns the named tier, or nil when absent
func (p *OfferPackage) TierByName(name TierName) *Tier {
	for i := range p.Tiers {
		if p.Tiers[i].Name == name {
			return &p.Tiers[i]
		}
	}
	return nil
}

// Dimension selects which slice of a package the advisor refines
type Dimension string

const (
	DimensionPricing     Dimension = "pricing"
	DimensionPositioning Dimension = "positioning"
	DimensionMessaging   Dimension = "messaging"
	DimensionDelivery    Dimension = "delivery"
	DimensionGuarantee   Dimension = "guarantee"
)

// ValidDimensions lists every accepted optimization dimension
var ValidDimensions = []Dimension{
	DimensionPricing, DimensionPositioning, DimensionMessaging, DimensionDelivery, DimensionGuarantee,
}

// OptimizedVersion is one alternative proposed by the advisor
type OptimizedVersion struct {
	Version        string `json:"version"`
	Rationale      string `json:"rationale"`
	ExpectedImpact string `json:"expected_impact"`
}

// OptimizationResult pairs the current element with up to three alternatives
type OptimizationResult struct {
	Dimension         Dimension          `json:"dimension"`
	OriginalElement   string             `json:"original_element"`
	OptimizedVersions []OptimizedVersion `json:"optimized_versions"`
}
