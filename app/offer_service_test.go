package app

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"offerforge/adapters/cache"
	"offerforge/adapters/llm"
	"offerforge/adapters/memstore"
	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *models.BusinessProfile {
	return &models.BusinessProfile{
		Founder: models.FounderSection{
			SignatureResults: []string{"Grew ARR from $1M to $4M in 18 months", "Cut CAC by 40%"},
			CoreStrengths:    []string{"marketing", "consulting"},
			Processes:        []string{"Demand audit"},
			Industries:       []string{"saas"},
			ProofAssets:      []string{"case study: Acme"},
		},
		Market: models.MarketSection{
			TargetMarket: "B2B SaaS companies between $1M and $10M ARR",
			BuyerRole:    "founder",
			Pains:        []string{"inconsistent pipeline", "founder-led sales ceiling"},
			Outcomes:     []string{"predictable inbound pipeline", "repeatable sales motion"},
		},
		Business: models.BusinessSection{
			DeliveryModels: []models.DeliveryModel{models.DeliveryRetainer},
			Capacity:       5,
			MonthlyHours:   160,
			ContractValue:  300000,
			ValuePeriod:    models.PeriodAnnual,
		},
		Pricing: models.PricingSection{
			PricePosture:  models.PostureValue,
			ContractStyle: models.ContractQuarterly,
			GuaranteeKind: models.GuaranteeResults,
		},
		Voice: models.VoiceSection{
			BrandTone:        "direct",
			PositioningAngle: "operators, not advisors",
			Differentiators:  []string{"in-house playbooks", "weekly operating cadence"},
		},
	}
}

func generatedResponse(t *testing.T) string {
	t.Helper()
	resp := map[string]interface{}{
		"tiers": []map[string]interface{}{
			{"name": "starter", "display_name": "Foundation", "promise": "A focused start", "scope": []string{"Weekly session"}, "monthly_price": 3250, "contract_term": "month_to_month"},
			{"name": "core", "display_name": "Growth", "promise": "The full system", "scope": []string{"Weekly session", "Playbooks"}, "monthly_price": 5000, "contract_term": "quarterly"},
			{"name": "premium", "display_name": "Partner", "promise": "Hands-on partnership", "scope": []string{"On-call access"}, "monthly_price": 8750, "contract_term": "six_month"},
		},
		"comparison":        []map[string]string{{"feature": "Sessions", "starter": "Monthly", "core": "Weekly", "premium": "Weekly + on-call"}},
		"pricing_narrative": "Three ways to work together.",
	}
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(raw)
}

func newService(client ports.GenerationClient) (*OfferService, *memstore.OfferRepository) {
	repo := memstore.NewOfferRepository()
	return NewOfferService(client, cache.NewMemory(), repo, 4*time.Hour, 0.7, 4000), repo
}

func TestGenerateProducesGeneratedPackage(t *testing.T) {
	mock := &llm.MockClient{Response: generatedResponse(t)}
	svc, _ := newService(mock)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		OwnerID: uuid.New(),
		Profile: validProfile(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceGenerated, result.Package.Provenance.Source)
	assert.Len(t, result.Package.Tiers, 3)
	assert.Equal(t, 300, result.Package.Provenance.TotalTokens)
	assert.GreaterOrEqual(t, result.Package.Assessment.Score, 25)
	assert.LessOrEqual(t, result.Package.Assessment.Score, 95)
	assert.Equal(t, 5000, result.Package.Pricing.CorePrice)
	assert.False(t, result.CacheHit)
}

func TestGenerateSecondCallHitsCache(t *testing.T) {
	mock := &llm.MockClient{Response: generatedResponse(t)}
	svc, _ := newService(mock)
	owner := uuid.New()

	first, err := svc.Generate(context.Background(), GenerateRequest{OwnerID: owner, Profile: validProfile()})
	require.NoError(t, err)
	require.Equal(t, 1, mock.Calls())

	second, err := svc.Generate(context.Background(), GenerateRequest{OwnerID: owner, Profile: validProfile()})
	require.NoError(t, err)

	// Identical profile: no second generation call
	assert.Equal(t, 1, mock.Calls())
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Package.Tiers, second.Package.Tiers)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateFallsBackOnUnusableOutput(t *testing.T) {
	mock := &llm.MockClient{Response: "I'm sorry, I can't produce JSON today."}
	svc, _ := newService(mock)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		OwnerID: uuid.New(),
		Profile: validProfile(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceFallback, result.Package.Provenance.Source)
	require.Len(t, result.Package.Tiers, 3)
	for _, tier := range result.Package.Tiers {
		assert.NotEmpty(t, tier.Promise)
		assert.NotEmpty(t, tier.Scope)
		assert.Greater(t, tier.MonthlyPrice, 0)
	}
	assert.NotNil(t, result.Package.TierByName(models.TierStarter))
	assert.NotNil(t, result.Package.TierByName(models.TierCore))
	assert.NotNil(t, result.Package.TierByName(models.TierPremium))
}

func TestGenerateRejectsInvertedTierPrices(t *testing.T) {
	resp := map[string]interface{}{
		"tiers": []map[string]interface{}{
			{"name": "starter", "display_name": "Foundation", "promise": "A focused start", "scope": []string{"Weekly session"}, "monthly_price": 9000, "monthly_hours": 500, "contract_term": "month_to_month"},
			{"name": "core", "display_name": "Growth", "promise": "The full system", "scope": []string{"Playbooks"}, "monthly_price": 5000, "contract_term": "quarterly"},
			{"name": "premium", "display_name": "Partner", "promise": "Hands-on partnership", "scope": []string{"On-call"}, "monthly_price": 100, "contract_term": "six_month"},
		},
		"comparison":        []map[string]string{{"feature": "Sessions", "starter": "Monthly", "core": "Weekly", "premium": "Weekly"}},
		"pricing_narrative": "Inverted on purpose.",
	}
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	mock := &llm.MockClient{Response: string(raw)}
	svc, _ := newService(mock)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		OwnerID: uuid.New(),
		Profile: validProfile(),
	})
	require.NoError(t, err)

	// Mis-priced collaborator output never ships as generated
	assert.Equal(t, models.SourceFallback, result.Package.Provenance.Source)

	starter := result.Package.TierByName(models.TierStarter)
	core := result.Package.TierByName(models.TierCore)
	premium := result.Package.TierByName(models.TierPremium)
	require.NotNil(t, starter)
	require.NotNil(t, core)
	require.NotNil(t, premium)
	assert.Less(t, starter.MonthlyPrice, core.MonthlyPrice)
	assert.Less(t, core.MonthlyPrice, premium.MonthlyPrice)
	assert.LessOrEqual(t, starter.MonthlyHours, premium.MonthlyHours)
}

func TestGeneratePropagatesTransportError(t *testing.T) {
	mock := &llm.MockClient{Err: stderrors.New("connection refused")}
	svc, _ := newService(mock)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		OwnerID: uuid.New(),
		Profile: validProfile(),
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeGenerationTransport))
}

func TestGenerateRejectsInvalidProfile(t *testing.T) {
	mock := &llm.MockClient{Response: generatedResponse(t)}
	svc, _ := newService(mock)

	p := validProfile()
	p.Founder.SignatureResults = nil

	_, err := svc.Generate(context.Background(), GenerateRequest{OwnerID: uuid.New(), Profile: p})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidation))
	assert.Contains(t, errors.FieldErrors(err), "founder.signature_results")
	// No generation attempt for invalid input
	assert.Equal(t, 0, mock.Calls())
}

func TestGetAndDeleteAreOwnerScoped(t *testing.T) {
	mock := &llm.MockClient{Response: generatedResponse(t)}
	svc, _ := newService(mock)
	owner := uuid.New()

	result, err := svc.Generate(context.Background(), GenerateRequest{OwnerID: owner, Profile: validProfile()})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), result.ID)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))

	err = svc.Delete(context.Background(), uuid.New(), result.ID)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))

	require.NoError(t, svc.Delete(context.Background(), owner, result.ID))
	_, err = svc.Get(context.Background(), owner, result.ID)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}
