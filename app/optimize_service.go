package app

import (
	"context"
	"fmt"
	"log"

	"offerforge/ai"
	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/google/uuid"
)

// OptimizeService proposes alternatives for one dimension of a stored
// offer. Parse failures degrade to deterministic suggestions so the
// endpoint always returns something actionable.
type OptimizeService struct {
	client ports.GenerationClient
	repo   ports.OfferRepository

	temperature float64
	maxTokens   int
}

// OptimizeRequest carries one optimization call
type OptimizeRequest struct {
	OwnerID   uuid.UUID
	OfferID   uuid.UUID
	Dimension models.Dimension
	Focus     string
}

// NewOptimizeService creates the optimization advisor
func NewOptimizeService(client ports.GenerationClient, repo ports.OfferRepository, temperature float64, maxTokens int) *OptimizeService {
	return &OptimizeService{client: client, repo: repo, temperature: temperature, maxTokens: maxTokens}
}

// Optimize loads the owner's offer and returns up to three refined
// versions of the requested dimension.
func (s *OptimizeService) Optimize(ctx context.Context, req OptimizeRequest) (*models.OptimizationResult, error) {
	if !validDimension(req.Dimension) {
		return nil, errors.Validation(map[string]string{
			"dimension": fmt.Sprintf("must be one of %v", models.ValidDimensions),
		})
	}

	record, err := s.repo.FindByID(ctx, req.OwnerID, req.OfferID)
	if err != nil {
		return nil, err
	}

	element := ai.ElementForDimension(&record.Package, req.Dimension)
	result := &models.OptimizationResult{
		Dimension:       req.Dimension,
		OriginalElement: element,
	}

	resp, err := s.client.Complete(ctx, ai.OptimizeSystemPrompt,
		ai.BuildOptimizePrompt(&record.Package, req.Dimension, req.Focus), s.temperature, s.maxTokens)
	if err != nil {
		return nil, errors.GenerationTransport(err)
	}

	parsed, parseErr := ai.ParseOptimizeResponse(resp.Content)
	if parseErr != nil {
		log.Printf("[OptimizeService] Unusable optimization output, using static suggestions: %v", parseErr)
		result.OptimizedVersions = staticSuggestions(req.Dimension, &record.Package)
		return result, nil
	}

	result.OptimizedVersions = parsed.OptimizedVersions
	return result, nil
}

func validDimension(d models.Dimension) bool {
	for _, v := range models.ValidDimensions {
		if v == d {
			return true
		}
	}
	return false
}

// staticSuggestions are the deterministic per-dimension fallbacks
func staticSuggestions(d models.Dimension, pkg *models.OfferPackage) []models.OptimizedVersion {
	core := pkg.TierByName(models.TierCore)

	switch d {
	case models.DimensionPricing:
		discount := models.OptimizedVersion{
			Version:        "Attach a visible annual-commitment discount to the core tier.",
			Rationale:      "A commitment discount rewards longer terms without lowering the anchor.",
			ExpectedImpact: "Longer average contract length.",
		}
		if core != nil {
			discount.Version = fmt.Sprintf("Test the core tier at $%d with an annual-commitment discount to $%d.", core.MonthlyPrice, core.MonthlyPrice*11/12)
		}
		return []models.OptimizedVersion{
			{
				Version:        "Anchor the premium tier first in every proposal so the core tier reads as the sensible middle.",
				Rationale:      "Price anchoring shifts the reference point buyers compare against.",
				ExpectedImpact: "More core-tier selections at the current price.",
			},
			{
				Version:        "Replace monthly framing with a per-outcome figure where the economics support it.",
				Rationale:      "Value framing detaches the fee from hours worked.",
				ExpectedImpact: "Less price resistance in late-stage conversations.",
			},
			discount,
		}
	case models.DimensionPositioning:
		return []models.OptimizedVersion{
			{
				Version:        "Narrow the stated audience to the single segment with the strongest signature results.",
				Rationale:      "A tighter claim is easier to believe than a broad one.",
				ExpectedImpact: "Higher reply rates from the named segment.",
			},
			{
				Version:        "Lead with the client's situation before any mention of the service.",
				Rationale:      "Buyers self-select when they recognize their own problem first.",
				ExpectedImpact: "Better-qualified inquiries.",
			},
			{
				Version:        "Name the alternative the buyer is really comparing against, and position against that.",
				Rationale:      "Most deals are lost to in-house effort or inaction, not competitors.",
				ExpectedImpact: "Sharper differentiation in evaluation conversations.",
			},
		}
	case models.DimensionMessaging:
		return []models.OptimizedVersion{
			{
				Version:        "Rewrite each tier promise as a concrete before/after statement with a timeframe.",
				Rationale:      "Specific promises are more credible than adjective-driven copy.",
				ExpectedImpact: "Higher proposal acceptance.",
			},
			{
				Version:        "Move the strongest proof point into the first sentence of the offer.",
				Rationale:      "Evidence placed early carries the rest of the pitch.",
				ExpectedImpact: "Fewer credibility objections.",
			},
			{
				Version:        "Cut every scope line that does not map to a named pain or outcome.",
				Rationale:      "Shorter offers with only relevant scope read as focused, not thin.",
				ExpectedImpact: "Faster buyer comprehension and fewer stalls.",
			},
		}
	case models.DimensionDelivery:
		return []models.OptimizedVersion{
			{
				Version:        "Publish a week-by-week onboarding plan for the first 30 days of each tier.",
				Rationale:      "A visible plan reduces perceived switching cost.",
				ExpectedImpact: "Faster close on deals stalled at 'how would this work'.",
			},
			{
				Version:        "Split delivery into a fixed diagnostic phase followed by the ongoing engagement.",
				Rationale:      "A smaller first commitment lowers the entry barrier.",
				ExpectedImpact: "More starter-tier entries that later upgrade.",
			},
			{
				Version:        "Set a named weekly checkpoint with a standing agenda for every tier.",
				Rationale:      "A predictable cadence is the cheapest visible signal of a managed engagement.",
				ExpectedImpact: "Higher perceived delivery quality and fewer mid-term cancellations.",
			},
		}
	default:
		return []models.OptimizedVersion{
			{
				Version:        "Scope the guarantee to one measurable outcome with a defined review point.",
				Rationale:      "A bounded guarantee is stronger than a vague promise and safer than an open one.",
				ExpectedImpact: "Reduced buyer risk perception without unbounded exposure.",
			},
			{
				Version:        "Offer a first-month satisfaction exit instead of a results guarantee.",
				Rationale:      "Early exits are cheap to honor and address the real hesitation point.",
				ExpectedImpact: "Easier first commitment.",
			},
			{
				Version:        "State what happens when the milestone is missed: you keep working at no charge until it lands.",
				Rationale:      "A consequence the buyer can picture is more persuasive than a percentage refund.",
				ExpectedImpact: "Stronger close rate on risk-sensitive buyers.",
			},
		}
	}
}
