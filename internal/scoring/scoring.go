// Package scoring computes the conversion prediction for a validated
// profile. It is pure and runs over the profile alone, independent of
// whether generation succeeded or fell back.
package scoring

import (
	"math"
	"strings"

	"offerforge/models"
)

// Score bounds and aggregation constants.
const (
	BaseScore      = 65
	MinScore       = 25
	MaxScore       = 95
	positiveScale  = 100
	negativeScale  = 50
	sweetSpotLow   = 10
	sweetSpotHigh  = 50
	marketLenBonus = 20
	buyerLenBonus  = 10
)

// condition pairs a qualifying check with its positive and negative
// factor weights. A zero weight means the branch emits no factor.
type condition struct {
	name      string
	holds     func(*models.BusinessProfile) bool
	violated  func(*models.BusinessProfile) bool
	posWeight float64
	negWeight float64
}

// The factor table. Positive weights sum to 0.60 and negative weights to
// 1.00, so the clamp bounds are reachable at the extremes.
var conditions = []condition{
	{
		name:      "signature results depth",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Founder.SignatureResults) >= 3 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Founder.SignatureResults) < 2 },
		posWeight: 0.06, negWeight: 0.10,
	},
	{
		name:      "documented processes",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Founder.Processes) >= 2 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Founder.Processes) == 0 },
		posWeight: 0.05, negWeight: 0.10,
	},
	{
		name:      "industry focus",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Founder.Industries) <= 2 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Founder.Industries) >= 3 },
		posWeight: 0.05, negWeight: 0.08,
	},
	{
		name:      "proof assets",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Founder.ProofAssets) >= 2 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Founder.ProofAssets) == 0 },
		posWeight: 0.05, negWeight: 0.12,
	},
	{
		name:      "pain-point coverage",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Market.Pains) >= 3 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Market.Pains) <= 1 },
		posWeight: 0.07, negWeight: 0.12,
	},
	{
		name:      "outcome specificity",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Market.Outcomes) >= 3 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Market.Outcomes) <= 1 },
		posWeight: 0.05, negWeight: 0.08,
	},
	{
		name:      "target market clarity",
		holds:     func(p *models.BusinessProfile) bool { return len(p.Market.TargetMarket) > 20 },
		violated:  func(p *models.BusinessProfile) bool { return len(p.Market.TargetMarket) <= 20 },
		posWeight: 0.05, negWeight: 0.10,
	},
	{
		name:      "scalable delivery model",
		holds:     hasScalableDelivery,
		violated:  func(p *models.BusinessProfile) bool { return !hasScalableDelivery(p) },
		posWeight: 0.07, negWeight: 0.10,
	},
	{
		name:      "hours per client sweet spot",
		holds:     hoursInSweetSpot,
		violated:  func(p *models.BusinessProfile) bool { return !hoursInSweetSpot(p) },
		posWeight: 0.06, negWeight: 0.12,
	},
	{
		name: "pricing posture",
		holds: func(p *models.BusinessProfile) bool {
			return p.Pricing.PricePosture == models.PosturePremium || p.Pricing.PricePosture == models.PostureValue
		},
		violated:  func(p *models.BusinessProfile) bool { return false },
		posWeight: 0.05, negWeight: 0,
	},
	{
		name:      "contract commitment",
		holds:     func(p *models.BusinessProfile) bool { return p.Pricing.ContractStyle != models.ContractMonthToMonth },
		violated:  func(p *models.BusinessProfile) bool { return p.Pricing.ContractStyle == models.ContractMonthToMonth },
		posWeight: 0.04, negWeight: 0.08,
	},
}

// Assess computes the three sub-scores, the explainable factor list and
// the weighted overall conversion score, clamped to [25, 95].
func Assess(p *models.BusinessProfile) models.ConversionAssessment {
	credibility := credibilityScore(p)
	marketFit := marketFitScore(p)
	scalability := scalabilityScore(p)

	factors := []models.ScoreFactor{
		{Factor: "credibility sub-score", Impact: models.ImpactNeutral, Weight: float64(credibility) / 100},
		{Factor: "market-fit sub-score", Impact: models.ImpactNeutral, Weight: float64(marketFit) / 100},
		{Factor: "scalability sub-score", Impact: models.ImpactNeutral, Weight: float64(scalability) / 100},
	}

	raw := float64(BaseScore)
	for _, c := range conditions {
		switch {
		case c.holds(p) && c.posWeight > 0:
			factors = append(factors, models.ScoreFactor{Factor: c.name, Impact: models.ImpactPositive, Weight: c.posWeight})
			raw += c.posWeight * positiveScale
		case c.violated(p) && c.negWeight > 0:
			factors = append(factors, models.ScoreFactor{Factor: c.name, Impact: models.ImpactNegative, Weight: c.negWeight})
			raw -= c.negWeight * negativeScale
		}
	}

	score := int(math.Round(raw))
	if score > MaxScore {
		score = MaxScore
	}
	if score < MinScore {
		score = MinScore
	}

	return models.ConversionAssessment{
		Score:            score,
		CredibilityScore: credibility,
		MarketFitScore:   marketFit,
		ScalabilityScore: scalability,
		Factors:          factors,
	}
}

// credibilityScore weighs the founder section: results, strengths,
// processes, industry focus and proof, each capped.
func credibilityScore(p *models.BusinessProfile) int {
	score := capped(len(p.Founder.SignatureResults)*5, 25)
	score += capped(len(p.Founder.CoreStrengths)*5, 20)
	score += capped(len(p.Founder.Processes)*5, 20)
	if len(p.Founder.Industries) <= 2 {
		score += 15
	} else {
		score += 10
	}
	score += capped(len(p.Founder.ProofAssets)*5, 15)
	return score
}

func marketFitScore(p *models.BusinessProfile) int {
	score := capped(len(p.Market.Pains)*10, 30)
	score += capped(len(p.Market.Outcomes)*10, 25)
	if len(p.Market.TargetMarket) > 20 {
		score += marketLenBonus
	} else {
		score += marketLenBonus / 2
	}
	if len(p.Market.BuyerRole) > 10 {
		score += 15
	} else {
		score += 8
	}
	if industryMarketOverlap(p) {
		score += buyerLenBonus
	} else {
		score += buyerLenBonus / 2
	}
	return score
}

func scalabilityScore(p *models.BusinessProfile) int {
	score := 15
	if hasScalableDelivery(p) {
		score = 30
	}
	if hoursInSweetSpot(p) {
		score += 25
	} else {
		score += 15
	}
	switch p.Pricing.PricePosture {
	case models.PosturePremium:
		score += 20
	case models.PostureValue:
		score += 15
	default:
		score += 10
	}
	if p.Pricing.ContractStyle != models.ContractMonthToMonth {
		score += 15
	} else {
		score += 8
	}
	if len(p.Business.FulfillmentStack) >= 3 {
		score += 10
	} else {
		score += 5
	}
	return score
}

func hasScalableDelivery(p *models.BusinessProfile) bool {
	for _, dm := range p.Business.DeliveryModels {
		if dm.Scalable() {
			return true
		}
	}
	return false
}

func hoursInSweetSpot(p *models.BusinessProfile) bool {
	hpc := p.HoursPerClient()
	return hpc >= sweetSpotLow && hpc <= sweetSpotHigh
}

// industryMarketOverlap looks for a declared industry keyword inside the
// target market description.
func industryMarketOverlap(p *models.BusinessProfile) bool {
	market := strings.ToLower(p.Market.TargetMarket)
	for _, ind := range p.Founder.Industries {
		ind = strings.ToLower(strings.TrimSpace(ind))
		if ind != "" && strings.Contains(market, ind) {
			return true
		}
	}
	return false
}

func capped(value, limit int) int {
	if value > limit {
		return limit
	}
	return value
}
