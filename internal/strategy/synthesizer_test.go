package strategy

import (
	"strings"
	"testing"

	"offerforge/internal/pricing"
	"offerforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(strength string) *models.BusinessProfile {
	return &models.BusinessProfile{
		Founder: models.FounderSection{
			SignatureResults: []string{"Grew ARR 3x"},
			CoreStrengths:    []string{strength},
			Industries:       []string{"saas"},
			ProofAssets:      []string{"case study: Acme", "testimonial: Beta", "award: Gamma"},
		},
		Market: models.MarketSection{
			TargetMarket: "Series A SaaS",
			BuyerRole:    "CEO",
			Pains:        []string{"flat pipeline"},
			Outcomes:     []string{"predictable revenue"},
		},
		Business: models.BusinessSection{
			DeliveryModels: []models.DeliveryModel{models.DeliveryRetainer},
			Capacity:       5,
			MonthlyHours:   160,
			ContractValue:  300000,
			ValuePeriod:    models.PeriodAnnual,
		},
		Pricing: models.PricingSection{
			PricePosture:  models.PosturePremium,
			ContractStyle: models.ContractQuarterly,
			GuaranteeKind: models.GuaranteeResults,
		},
		Voice: models.VoiceSection{BrandTone: "direct"},
	}
}

func TestSynthesizeProducesThreeOrderedTiers(t *testing.T) {
	p := testProfile("sales")
	pkg := Synthesize(p, pricing.FromProfile(p))

	require.Len(t, pkg.Tiers, 3)
	assert.Equal(t, models.TierStarter, pkg.Tiers[0].Name)
	assert.Equal(t, models.TierCore, pkg.Tiers[1].Name)
	assert.Equal(t, models.TierPremium, pkg.Tiers[2].Name)
	assert.Less(t, pkg.Tiers[0].MonthlyPrice, pkg.Tiers[1].MonthlyPrice)
	assert.Less(t, pkg.Tiers[1].MonthlyPrice, pkg.Tiers[2].MonthlyPrice)
	assert.Equal(t, models.SourceFallback, pkg.Provenance.Source)
}

func TestSynthesizeSubstitutesProfileCopy(t *testing.T) {
	p := testProfile("marketing")
	pkg := Synthesize(p, pricing.FromProfile(p))

	core := pkg.TierByName(models.TierCore)
	require.NotNil(t, core)
	joined := core.Promise + " " + strings.Join(core.Scope, " ")
	assert.NotContains(t, joined, "{pain}")
	assert.NotContains(t, joined, "{outcome}")
	assert.Contains(t, pkg.Tiers[1].TargetAudience, "Series A SaaS")
}

func TestUnknownStrengthFallsBackToConsulting(t *testing.T) {
	tpl := Lookup("quantum basket weaving")
	assert.Equal(t, StrengthConsulting, tpl.Strength)
}

func TestLookupMatchesAliasesAndSubstrings(t *testing.T) {
	assert.Equal(t, StrengthSales, Lookup("Sales").Strength)
	assert.Equal(t, StrengthMarketing, Lookup("growth marketing").Strength)
	assert.Equal(t, StrengthOperations, Lookup("ops").Strength)
	assert.Equal(t, StrengthCoaching, Lookup("executive coaching").Strength)
}

func TestProofTruncatedToTwoAssets(t *testing.T) {
	p := testProfile("operations")
	pkg := Synthesize(p, pricing.FromProfile(p))
	assert.Len(t, pkg.Tiers[1].Proof, 2)
}

func TestComparisonMatrixAndSummaryPopulated(t *testing.T) {
	p := testProfile("coaching")
	d := pricing.FromProfile(p)
	pkg := Synthesize(p, d)

	require.NotEmpty(t, pkg.Comparison)
	assert.Equal(t, "Monthly investment", pkg.Comparison[0].Feature)
	assert.Equal(t, d.CorePrice, pkg.Pricing.CorePrice)
	assert.NotEmpty(t, pkg.Pricing.Narrative)
}

func TestHourAllocationWithinPremiumBound(t *testing.T) {
	p := testProfile("sales")
	d := pricing.FromProfile(p)
	pkg := Synthesize(p, d)

	for _, tier := range pkg.Tiers {
		assert.LessOrEqual(t, float64(tier.MonthlyHours), float64(d.HoursPerClient)*pricing.PremiumHoursMultiplier+0.5)
	}
}

func TestProjectContractPropagates(t *testing.T) {
	p := testProfile("consulting")
	p.Pricing.ContractStyle = models.ContractProject
	pkg := Synthesize(p, pricing.FromProfile(p))

	for _, tier := range pkg.Tiers {
		assert.Equal(t, models.ContractProject, tier.ContractTerm)
	}
}
