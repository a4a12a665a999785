// Package app orchestrates profile validation, generation, scoring and
// persistence behind the HTTP surface.
package app

import (
	"context"
	"log"
	"time"

	"offerforge/ai"
	"offerforge/internal/errors"
	"offerforge/internal/fingerprint"
	"offerforge/internal/pricing"
	"offerforge/internal/profile"
	"offerforge/internal/scoring"
	"offerforge/internal/strategy"
	"offerforge/models"
	"offerforge/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// OfferService turns validated business profiles into persisted
// three-tier offer packages.
type OfferService struct {
	client   ports.GenerationClient
	cache    ports.CacheStore
	repo     ports.OfferRepository
	cacheTTL time.Duration
	group    singleflight.Group

	temperature float64
	maxTokens   int
}

// GenerateRequest carries one generation call
type GenerateRequest struct {
	OwnerID uuid.UUID
	Profile *models.BusinessProfile
	Tags    []string
}

// GenerateResult pairs the stored offer with validation advisories
type GenerateResult struct {
	ID         uuid.UUID           `json:"id"`
	Package    models.OfferPackage `json:"package"`
	Advisories []string            `json:"advisories,omitempty"`
	CacheHit   bool                `json:"cache_hit"`
}

// NewOfferService creates the offer orchestration service
func NewOfferService(client ports.GenerationClient, cache ports.CacheStore, repo ports.OfferRepository, cacheTTL time.Duration, temperature float64, maxTokens int) *OfferService {
	return &OfferService{
		client:      client,
		cache:       cache,
		repo:        repo,
		cacheTTL:    cacheTTL,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate validates the profile, produces a package (cached, generated
// or synthesized) and persists it under the owner. Only transport and
// validation failures surface; parse failures degrade to the fallback
// synthesizer.
func (s *OfferService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	validated, err := profile.Validate(req.Profile)
	if err != nil {
		return nil, err
	}

	key := fingerprint.Key(validated.Profile)

	var cached models.OfferPackage
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		log.Printf("[OfferService] Cache hit for fingerprint=%s", key)
		id, err := s.store(ctx, req, cached)
		if err != nil {
			return nil, err
		}
		return &GenerateResult{ID: id, Package: cached, Advisories: validated.Advisories, CacheHit: true}, nil
	} else if err != ports.ErrCacheMiss {
		log.Printf("[OfferService] Cache read failed for fingerprint=%s: %v", key, err)
	}

	// Concurrent requests for the same fingerprint share one
	// generation call instead of racing the collaborator.
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		pkg, err := s.produce(ctx, validated.Profile)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, pkg, s.cacheTTL); err != nil {
			log.Printf("[OfferService] Cache write failed for fingerprint=%s: %v", key, err)
		}
		return pkg, nil
	})
	if err != nil {
		return nil, err
	}
	pkg := v.(models.OfferPackage)

	id, err := s.store(ctx, req, pkg)
	if err != nil {
		return nil, err
	}
	return &GenerateResult{ID: id, Package: pkg, Advisories: validated.Advisories}, nil
}

// produce runs the generation path and falls back to the deterministic
// synthesizer when the collaborator returns unusable content.
func (s *OfferService) produce(ctx context.Context, p *models.BusinessProfile) (models.OfferPackage, error) {
	derived := pricing.FromProfile(p)

	start := time.Now()
	resp, err := s.client.Complete(ctx, ai.SystemPrompt, ai.BuildOfferPrompt(p, derived), s.temperature, s.maxTokens)
	if err != nil {
		return models.OfferPackage{}, errors.GenerationTransport(err)
	}
	latency := time.Since(start).Milliseconds()

	parsed, parseErr := ai.ParsePackageResponse(resp.Content, derived)
	if parseErr != nil {
		log.Printf("[OfferService] Unusable generation output, synthesizing fallback: %v", parseErr)
		pkg := strategy.Synthesize(p, derived)
		pkg.Assessment = scoring.Assess(p)
		pkg.Provenance.LatencyMs = latency
		applyUsage(&pkg.Provenance, resp.Usage)
		return pkg, nil
	}

	pkg := models.OfferPackage{
		Tiers:      parsed.Tiers,
		Comparison: parsed.Comparison,
		Pricing: models.PricingSummary{
			HoursPerClient: derived.HoursPerClient,
			StarterPrice:   derived.StarterPrice,
			CorePrice:      derived.CorePrice,
			PremiumPrice:   derived.PremiumPrice,
			Narrative:      parsed.PricingNarrative,
		},
		Assessment: scoring.Assess(p),
		Provenance: models.Provenance{
			Source:      models.SourceGenerated,
			LatencyMs:   latency,
			GeneratedAt: time.Now().UTC(),
		},
	}
	applyUsage(&pkg.Provenance, resp.Usage)
	return pkg, nil
}

func (s *OfferService) store(ctx context.Context, req GenerateRequest, pkg models.OfferPackage) (uuid.UUID, error) {
	metadata := map[string]interface{}{
		"source": string(pkg.Provenance.Source),
	}
	return s.repo.Create(ctx, req.OwnerID, pkg, req.Tags, metadata)
}

// Get loads one offer scoped to its owner
func (s *OfferService) Get(ctx context.Context, ownerID, id uuid.UUID) (*ports.OfferRecord, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

// List returns the owner's offers, newest first
func (s *OfferService) List(ctx context.Context, ownerID uuid.UUID, filters ports.OfferFilters) ([]ports.OfferRecord, error) {
	return s.repo.ListByOwner(ctx, ownerID, filters)
}

// Delete removes an offer; a missing or foreign id reports not found
func (s *OfferService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.NotFound("offer")
	}
	return nil
}

func applyUsage(p *models.Provenance, usage *ports.UsageData) {
	if usage == nil {
		return
	}
	p.Model = usage.Model
	p.PromptTokens = usage.PromptTokens
	p.CompletionTokens = usage.CompletionTokens
	p.TotalTokens = usage.TotalTokens
}
