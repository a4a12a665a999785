package fingerprint

import (
	"testing"

	"offerforge/models"

	"github.com/stretchr/testify/assert"
)

func baseProfile() *models.BusinessProfile {
	return &models.BusinessProfile{
		Founder: models.FounderSection{
			Industries: []string{"saas", "fintech"},
		},
		Market: models.MarketSection{TargetMarket: "B2B SaaS founders"},
		Business: models.BusinessSection{
			DeliveryModels: []models.DeliveryModel{models.DeliveryRetainer, models.DeliveryGroupProgram},
		},
		Pricing: models.PricingSection{PricePosture: models.PosturePremium},
		Voice: models.VoiceSection{
			BrandTone:        "direct",
			PositioningAngle: "operator-led growth",
			Differentiators:  []string{"speed", "proof", "focus"},
		},
	}
}

func TestKeyStableAcrossCalls(t *testing.T) {
	p := baseProfile()
	assert.Equal(t, Key(p), Key(p))
}

func TestKeyInvariantUnderPermutation(t *testing.T) {
	a := baseProfile()

	b := baseProfile()
	b.Founder.Industries = []string{"fintech", "saas"}
	b.Business.DeliveryModels = []models.DeliveryModel{models.DeliveryGroupProgram, models.DeliveryRetainer}
	b.Voice.Differentiators = []string{"proof", "focus", "speed"}

	assert.Equal(t, Key(a), Key(b))
}

func TestKeyIgnoresCaseAndWhitespace(t *testing.T) {
	a := baseProfile()
	b := baseProfile()
	b.Market.TargetMarket = "  B2B SaaS Founders "

	assert.Equal(t, Key(a), Key(b))
}

func TestKeyChangesWithContent(t *testing.T) {
	a := baseProfile()
	b := baseProfile()
	b.Pricing.PricePosture = models.PostureValue

	assert.NotEqual(t, Key(a), Key(b))
}

func TestKeyUsesOnlyFirstThreeDifferentiators(t *testing.T) {
	a := baseProfile()
	a.Voice.Differentiators = []string{"a", "b", "c"}
	b := baseProfile()
	b.Voice.Differentiators = []string{"c", "b", "a", "z"}

	assert.Equal(t, Key(a), Key(b))
}
