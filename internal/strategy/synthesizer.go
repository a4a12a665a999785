package strategy

import (
	"fmt"
	"strings"
	"time"

	"offerforge/internal/pricing"
	"offerforge/models"
)

// Synthesize builds a complete three-tier package from the registry and
// the derived pricing, with no external calls. Given a validated profile
// it always succeeds, which is what makes it a safe generation fallback.
func Synthesize(p *models.BusinessProfile, d pricing.Derived) models.OfferPackage {
	tpl := Lookup(p.PrimaryStrength())
	sub := newSubstituter(p)

	tiers := []models.Tier{
		buildTier(models.TierStarter, 0, tpl, p, sub, d.StarterPrice, d.StarterHours),
		buildTier(models.TierCore, 1, tpl, p, sub, d.CorePrice, d.CoreHours),
		buildTier(models.TierPremium, 2, tpl, p, sub, d.PremiumPrice, d.PremiumHours),
	}

	return models.OfferPackage{
		Tiers:      tiers,
		Comparison: buildComparison(tpl, d, p.Pricing.GuaranteeKind),
		Pricing: models.PricingSummary{
			HoursPerClient: d.HoursPerClient,
			StarterPrice:   d.StarterPrice,
			CorePrice:      d.CorePrice,
			PremiumPrice:   d.PremiumPrice,
			Narrative: fmt.Sprintf(
				"Pricing anchors on $%d/month per client (%d hours), with an accessible entry at $%d and a high-touch ceiling at $%d.",
				d.CorePrice, d.HoursPerClient, d.StarterPrice, d.PremiumPrice),
		},
		Provenance: models.Provenance{
			Source:      models.SourceFallback,
			GeneratedAt: time.Now().UTC(),
		},
	}
}

func buildTier(name models.TierName, idx int, tpl Template, p *models.BusinessProfile,
	sub *substituter, price, hours int) models.Tier {

	var scope []string
	switch name {
	case models.TierStarter:
		scope = sub.applyAll(tpl.StarterScope)
	case models.TierCore:
		scope = sub.applyAll(tpl.CoreScope)
	default:
		scope = sub.applyAll(tpl.PremiumScope)
	}

	proof := p.Founder.ProofAssets
	if len(proof) > 2 {
		proof = proof[:2]
	}

	return models.Tier{
		Name:               name,
		DisplayName:        tpl.TierNames[idx],
		TargetAudience:     audienceFor(name, p),
		Promise:            sub.apply(tpl.Promises[idx]),
		Scope:              scope,
		Proof:              append([]string{}, proof...),
		Timeline:           timelineFor(name),
		Milestones:         sub.applyAll(tpl.Milestones),
		MonthlyPrice:       price,
		ContractTerm:       contractFor(name, p.Pricing.ContractStyle),
		Guarantee:          guaranteeText(p.Pricing.GuaranteeKind, name),
		ExpectedLift:       tpl.ExpectedLifts[idx],
		ClientRequirements: append([]string{}, tpl.Requirements...),
		MonthlyHours:       hours,
	}
}

func audienceFor(name models.TierName, p *models.BusinessProfile) string {
	market := p.Market.TargetMarket
	switch name {
	case models.TierStarter:
		return fmt.Sprintf("%s teams testing outside help for the first time", market)
	case models.TierCore:
		return fmt.Sprintf("%s teams ready to commit to a full program", market)
	default:
		return fmt.Sprintf("%s leadership that wants an embedded partner", market)
	}
}

func timelineFor(name models.TierName) string {
	switch name {
	case models.TierStarter:
		return "90 days to a working baseline"
	case models.TierCore:
		return "6 months to a compounding system"
	default:
		return "12 months of embedded partnership"
	}
}

// contractFor keeps the profile's contract style on the core tier, eases
// entry on starter and extends commitment on premium.
func contractFor(name models.TierName, declared models.ContractStyle) models.ContractStyle {
	if declared == models.ContractProject {
		return models.ContractProject
	}
	switch name {
	case models.TierStarter:
		return models.ContractMonthToMonth
	case models.TierPremium:
		if declared == models.ContractAnnual {
			return models.ContractAnnual
		}
		return models.ContractSixMonth
	default:
		return declared
	}
}

func guaranteeText(kind models.GuaranteeKind, name models.TierName) string {
	switch kind {
	case models.GuaranteeResults:
		if name == models.TierPremium {
			return "If the agreed 90-day milestone is missed, we work free until it lands."
		}
		return "If the agreed 90-day milestone is missed, the next month is on us."
	case models.GuaranteeRefund:
		return "Full refund inside the first 30 days, no questions asked."
	case models.GuaranteePerformance:
		return "Fees scale down any month the agreed scorecard targets are missed."
	default:
		return "No formal guarantee; the track record carries the risk."
	}
}

func buildComparison(tpl Template, d pricing.Derived, kind models.GuaranteeKind) []models.ComparisonRow {
	return []models.ComparisonRow{
		{
			Feature: "Monthly investment",
			Starter: fmt.Sprintf("$%d", d.StarterPrice),
			Core:    fmt.Sprintf("$%d", d.CorePrice),
			Premium: fmt.Sprintf("$%d", d.PremiumPrice),
		},
		{
			Feature: "Dedicated hours / month",
			Starter: fmt.Sprintf("%d", d.StarterHours),
			Core:    fmt.Sprintf("%d", d.CoreHours),
			Premium: fmt.Sprintf("%d", d.PremiumHours),
		},
		{
			Feature: "Working cadence",
			Starter: "Bi-weekly sessions",
			Core:    "Weekly sessions",
			Premium: "Weekly sessions + on-call",
		},
		{
			Feature: "Scope depth",
			Starter: fmt.Sprintf("%d workstreams", len(tpl.StarterScope)),
			Core:    fmt.Sprintf("%d workstreams", len(tpl.CoreScope)),
			Premium: fmt.Sprintf("%d workstreams", len(tpl.PremiumScope)),
		},
		{
			Feature: "Guarantee",
			Starter: shortGuarantee(kind),
			Core:    shortGuarantee(kind),
			Premium: shortGuarantee(kind) + " (extended)",
		},
	}
}

func shortGuarantee(kind models.GuaranteeKind) string {
	switch kind {
	case models.GuaranteeResults:
		return "Milestone-backed"
	case models.GuaranteeRefund:
		return "30-day refund"
	case models.GuaranteePerformance:
		return "Performance-linked fees"
	default:
		return "None"
	}
}

// substituter fills {pain}, {outcome}, {market} and {buyer} placeholders
// from the profile, with safe defaults when a list is empty.
type substituter struct {
	replacer *strings.Replacer
}

func newSubstituter(p *models.BusinessProfile) *substituter {
	pain := "the growth bottleneck"
	if len(p.Market.Pains) > 0 {
		pain = p.Market.Pains[0]
	}
	outcome := "the growth target"
	if len(p.Market.Outcomes) > 0 {
		outcome = p.Market.Outcomes[0]
	}
	market := p.Market.TargetMarket
	if market == "" {
		market = "growth-stage"
	}
	buyer := p.Market.BuyerRole
	if buyer == "" {
		buyer = "decision-maker"
	}

	return &substituter{replacer: strings.NewReplacer(
		"{pain}", pain,
		"{outcome}", outcome,
		"{market}", market,
		"{buyer}", buyer,
	)}
}

func (s *substituter) apply(in string) string {
	return s.replacer.Replace(in)
}

func (s *substituter) applyAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		out = append(out, s.apply(item))
	}
	return out
}
