package ai

import (
	"testing"

	"offerforge/internal/pricing"
	"offerforge/models"

	"github.com/stretchr/testify/assert"
)

func promptProfile() *models.BusinessProfile {
	return &models.BusinessProfile{
		Founder: models.FounderSection{
			SignatureResults: []string{"Grew ARR 3x"},
			CoreStrengths:    []string{"sales"},
			Industries:       []string{"saas"},
		},
		Market: models.MarketSection{
			TargetMarket: "Series A SaaS",
			BuyerRole:    "CEO",
			Pains:        []string{"flat pipeline"},
			Outcomes:     []string{"predictable revenue"},
		},
		Business: models.BusinessSection{
			Capacity: 5, MonthlyHours: 160, ContractValue: 300000, ValuePeriod: models.PeriodAnnual,
		},
		Pricing: models.PricingSection{
			PricePosture: models.PosturePremium, ContractStyle: models.ContractQuarterly, GuaranteeKind: models.GuaranteeResults,
		},
		Voice: models.VoiceSection{BrandTone: "direct"},
	}
}

func TestOfferPromptEmbedsPricingTargets(t *testing.T) {
	p := promptProfile()
	prompt := BuildOfferPrompt(p, pricing.FromProfile(p))

	assert.Contains(t, prompt, "$5000")
	assert.Contains(t, prompt, "$3250")
	assert.Contains(t, prompt, "$8750")
	assert.Contains(t, prompt, "Series A SaaS")
	assert.Contains(t, prompt, "pricing_narrative")
}

func TestOfferPromptCarriesStrengthPhrasing(t *testing.T) {
	p := promptProfile()
	prompt := BuildOfferPrompt(p, pricing.FromProfile(p))
	assert.Contains(t, prompt, "Revenue Acceleration")
}

func TestOptimizePromptReferencesElement(t *testing.T) {
	pkg := &models.OfferPackage{
		Tiers: []models.Tier{{
			Name:    models.TierCore,
			Promise: "A predictable pipeline",
			Scope:   []string{"process design"},
			Guarantee: "milestone-backed",
		}},
		Pricing: models.PricingSummary{StarterPrice: 3250, CorePrice: 5000, PremiumPrice: 8750, Narrative: "anchor"},
	}

	prompt := BuildOptimizePrompt(pkg, models.DimensionMessaging, "shorter promise")
	assert.Contains(t, prompt, "A predictable pipeline")
	assert.Contains(t, prompt, "FOCUS: shorter promise")

	pricingPrompt := BuildOptimizePrompt(pkg, models.DimensionPricing, "")
	assert.Contains(t, pricingPrompt, "$5000")
}
