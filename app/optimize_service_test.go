package app

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"offerforge/adapters/cache"
	"offerforge/adapters/llm"
	"offerforge/adapters/memstore"
	"offerforge/internal/errors"
	"offerforge/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOffer(t *testing.T, repo *memstore.OfferRepository, owner uuid.UUID) uuid.UUID {
	t.Helper()

	gen := &llm.MockClient{Response: generatedResponse(t)}
	svc := NewOfferService(gen, cache.NewMemory(), repo, 4*time.Hour, 0.7, 4000)
	result, err := svc.Generate(context.Background(), GenerateRequest{OwnerID: owner, Profile: validProfile()})
	require.NoError(t, err)
	return result.ID
}

func TestOptimizeReturnsParsedVersions(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	mock := &llm.MockClient{Response: `{"optimized_versions":[
		{"version":"Lead with the premium tier","rationale":"anchoring","expected_impact":"higher core uptake"},
		{"version":"Quote quarterly totals","rationale":"reframes spend","expected_impact":"longer terms"}
	]}`}
	svc := NewOptimizeService(mock, repo, 0.7, 2000)

	result, err := svc.Optimize(context.Background(), OptimizeRequest{
		OwnerID:   owner,
		OfferID:   offerID,
		Dimension: models.DimensionPricing,
	})
	require.NoError(t, err)

	assert.Equal(t, models.DimensionPricing, result.Dimension)
	assert.NotEmpty(t, result.OriginalElement)
	require.Len(t, result.OptimizedVersions, 2)
	assert.Equal(t, "Lead with the premium tier", result.OptimizedVersions[0].Version)
}

func TestOptimizeFallsBackToStaticSuggestions(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	mock := &llm.MockClient{Response: "not json at all"}
	svc := NewOptimizeService(mock, repo, 0.7, 2000)

	for _, dim := range models.ValidDimensions {
		result, err := svc.Optimize(context.Background(), OptimizeRequest{
			OwnerID:   owner,
			OfferID:   offerID,
			Dimension: dim,
		})
		require.NoError(t, err)

		require.Len(t, result.OptimizedVersions, 3, "dimension %s", dim)
		for _, v := range result.OptimizedVersions {
			assert.NotEmpty(t, v.Version)
			assert.NotEmpty(t, v.Rationale)
			assert.NotEmpty(t, v.ExpectedImpact)
		}
	}
}

func TestOptimizeRejectsUnknownDimension(t *testing.T) {
	repo := memstore.NewOfferRepository()
	svc := NewOptimizeService(&llm.MockClient{}, repo, 0.7, 2000)

	_, err := svc.Optimize(context.Background(), OptimizeRequest{
		OwnerID:   uuid.New(),
		OfferID:   uuid.New(),
		Dimension: models.Dimension("branding"),
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidation))
}

func TestOptimizeRequiresOwnedOffer(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	svc := NewOptimizeService(&llm.MockClient{}, repo, 0.7, 2000)

	_, err := svc.Optimize(context.Background(), OptimizeRequest{
		OwnerID:   uuid.New(),
		OfferID:   offerID,
		Dimension: models.DimensionMessaging,
	})
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestOptimizePropagatesTransportError(t *testing.T) {
	repo := memstore.NewOfferRepository()
	owner := uuid.New()
	offerID := seedOffer(t, repo, owner)

	mock := &llm.MockClient{Err: stderrors.New("timeout")}
	svc := NewOptimizeService(mock, repo, 0.7, 2000)

	_, err := svc.Optimize(context.Background(), OptimizeRequest{
		OwnerID:   owner,
		OfferID:   offerID,
		Dimension: models.DimensionDelivery,
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeGenerationTransport))
}
