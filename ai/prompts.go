// Package ai builds generation instructions and parses the structured
// output of the external generation collaborator. Phrasing examples come
// from the strategy registry, so the generated path and the deterministic
// fallback share one source of truth.
package ai

import (
	"fmt"
	"strings"

	"offerforge/internal/pricing"
	"offerforge/internal/strategy"
	"offerforge/models"
)

// SystemPrompt frames every offer-generation call
const SystemPrompt = "You are a senior offer strategist. You design three-tier " +
	"commercial service packages for founder-led businesses. Respond with valid JSON only."

// OptimizeSystemPrompt frames every optimization call
const OptimizeSystemPrompt = "You are a conversion optimization specialist for " +
	"high-ticket service offers. Respond with valid JSON only."

// BuildOfferPrompt assembles the generation instruction embedding the
// profile, the derived per-tier pricing targets and strength-specific
// example phrasing from the registry.
func BuildOfferPrompt(p *models.BusinessProfile, d pricing.Derived) string {
	tpl := strategy.Lookup(p.PrimaryStrength())

	var b strings.Builder
	b.WriteString("Design a three-tier offer package (starter, core, premium) for this business.\n\n")

	b.WriteString("FOUNDER\n")
	fmt.Fprintf(&b, "- Signature results: %s\n", strings.Join(p.Founder.SignatureResults, "; "))
	fmt.Fprintf(&b, "- Core strengths: %s\n", strings.Join(p.Founder.CoreStrengths, ", "))
	fmt.Fprintf(&b, "- Processes: %s\n", strings.Join(p.Founder.Processes, "; "))
	fmt.Fprintf(&b, "- Industries: %s\n", strings.Join(p.Founder.Industries, ", "))
	fmt.Fprintf(&b, "- Proof assets: %s\n\n", strings.Join(p.Founder.ProofAssets, "; "))

	b.WriteString("MARKET\n")
	fmt.Fprintf(&b, "- Target market: %s\n", p.Market.TargetMarket)
	fmt.Fprintf(&b, "- Buyer: %s\n", p.Market.BuyerRole)
	fmt.Fprintf(&b, "- Pains: %s\n", strings.Join(p.Market.Pains, "; "))
	fmt.Fprintf(&b, "- Desired outcomes: %s\n\n", strings.Join(p.Market.Outcomes, "; "))

	b.WriteString("PRICING TARGETS (use these exact monthly prices)\n")
	fmt.Fprintf(&b, "- starter: $%d (%d hours/month)\n", d.StarterPrice, d.StarterHours)
	fmt.Fprintf(&b, "- core: $%d (%d hours/month)\n", d.CorePrice, d.CoreHours)
	fmt.Fprintf(&b, "- premium: $%d (%d hours/month)\n\n", d.PremiumPrice, d.PremiumHours)

	b.WriteString("VOICE\n")
	fmt.Fprintf(&b, "- Brand tone: %s\n", p.Voice.BrandTone)
	fmt.Fprintf(&b, "- Positioning angle: %s\n", p.Voice.PositioningAngle)
	fmt.Fprintf(&b, "- Differentiators: %s\n", strings.Join(p.Voice.Differentiators, "; "))
	fmt.Fprintf(&b, "- Guarantee kind: %s, contract style: %s\n\n",
		p.Pricing.GuaranteeKind, p.Pricing.ContractStyle)

	fmt.Fprintf(&b, "STYLE EXAMPLES for a %s-led offer:\n", tpl.Label)
	for _, phrase := range tpl.ExamplePhrases {
		fmt.Fprintf(&b, "- %q\n", phrase)
	}

	b.WriteString("\nRespond with a single JSON object shaped exactly like this:\n")
	b.WriteString(packageSchema)
	return b.String()
}

// packageSchema is the response contract the parser enforces
const packageSchema = `{
  "tiers": [
    {
      "name": "starter|core|premium",
      "display_name": "...",
      "target_audience": "...",
      "promise": "...",
      "scope": ["..."],
      "proof": ["..."],
      "timeline": "...",
      "milestones": ["..."],
      "monthly_price": 0,
      "contract_term": "...",
      "guarantee": "...",
      "expected_lift": "...",
      "client_requirements": ["..."],
      "monthly_hours": 0
    }
  ],
  "comparison": [
    {"feature": "...", "starter": "...", "core": "...", "premium": "..."}
  ],
  "pricing_narrative": "..."
}`

// BuildOptimizePrompt assembles a dimension-specific refinement
// instruction referencing the relevant slice of the package.
func BuildOptimizePrompt(pkg *models.OfferPackage, dimension models.Dimension, focus string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Improve the %s of this three-tier offer.\n\n", dimension)
	b.WriteString("CURRENT ELEMENT\n")
	b.WriteString(ElementForDimension(pkg, dimension))
	b.WriteString("\n\n")

	if focus != "" {
		fmt.Fprintf(&b, "FOCUS: %s\n\n", focus)
	}

	b.WriteString("Propose exactly 3 alternatives. Respond with a single JSON object:\n")
	b.WriteString(`{
  "optimized_versions": [
    {"version": "...", "rationale": "...", "expected_impact": "..."}
  ]
}`)
	return b.String()
}

// ElementForDimension extracts the package slice the advisor refines
func ElementForDimension(pkg *models.OfferPackage, dimension models.Dimension) string {
	core := pkg.TierByName(models.TierCore)
	switch dimension {
	case models.DimensionPricing:
		return fmt.Sprintf("starter $%d / core $%d / premium $%d per month. %s",
			pkg.Pricing.StarterPrice, pkg.Pricing.CorePrice, pkg.Pricing.PremiumPrice, pkg.Pricing.Narrative)
	case models.DimensionPositioning:
		if core != nil {
			return fmt.Sprintf("%s — aimed at %s", core.Promise, core.TargetAudience)
		}
	case models.DimensionMessaging:
		if core != nil {
			return core.Promise
		}
	case models.DimensionDelivery:
		if core != nil {
			return strings.Join(core.Scope, "; ")
		}
	case models.DimensionGuarantee:
		if core != nil {
			return core.Guarantee
		}
	}
	return pkg.Pricing.Narrative
}
