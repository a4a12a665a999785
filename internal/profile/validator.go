// Package profile validates incoming business profiles: strict on shape,
// advisory on judgment calls. Every cross-field failure attaches to the
// single most relevant field path so callers can render inline errors.
package profile

import (
	"fmt"
	"strings"

	"offerforge/internal/errors"
	"offerforge/models"
)

// Hours-per-client bounds a plausible engagement must fall inside.
const (
	MinHoursPerClient = 5
	MaxHoursPerClient = 80
)

// MinPremiumMonthlyPerClient is the per-client monthly value floor a
// premium posture is expected to clear.
const MinPremiumMonthlyPerClient = 2000

// Result is a validated profile plus non-blocking advisories
type Result struct {
	Profile    *models.BusinessProfile
	Advisories []string
}

// Validate checks the candidate profile and returns either a Result or a
// field-scoped validation error. The profile is never mutated.
func Validate(p *models.BusinessProfile) (*Result, error) {
	fields := map[string]string{}

	validateFounder(p, fields)
	validateMarket(p, fields)
	validateBusiness(p, fields)
	validatePricing(p, fields)
	crossFieldChecks(p, fields)

	if len(fields) > 0 {
		return nil, errors.Validation(fields)
	}

	return &Result{
		Profile:    p,
		Advisories: advisories(p),
	}, nil
}

func validateFounder(p *models.BusinessProfile, fields map[string]string) {
	if n := len(p.Founder.SignatureResults); n < 1 || n > 5 {
		fields["founder.signature_results"] = "between 1 and 5 signature results are required"
	}
	if n := len(p.Founder.CoreStrengths); n < 1 || n > 5 {
		fields["founder.core_strengths"] = "between 1 and 5 core strengths are required"
	}
	if n := len(p.Founder.Industries); n < 1 || n > 3 {
		fields["founder.industries"] = "between 1 and 3 industries are required"
	}
	if len(p.Founder.Processes) > 10 {
		fields["founder.processes"] = "at most 10 processes are allowed"
	}
	if len(p.Founder.ProofAssets) > 10 {
		fields["founder.proof_assets"] = "at most 10 proof assets are allowed"
	}
	for i, s := range p.Founder.SignatureResults {
		if strings.TrimSpace(s) == "" {
			fields[fmt.Sprintf("founder.signature_results[%d]", i)] = "signature result must not be empty"
		}
	}
}

func validateMarket(p *models.BusinessProfile, fields map[string]string) {
	if strings.TrimSpace(p.Market.TargetMarket) == "" {
		fields["market.target_market"] = "target market is required"
	}
	if strings.TrimSpace(p.Market.BuyerRole) == "" {
		fields["market.buyer_role"] = "buyer role is required"
	}
	if n := len(p.Market.Pains); n < 1 || n > 8 {
		fields["market.pains"] = "between 1 and 8 pain points are required"
	}
	if n := len(p.Market.Outcomes); n < 1 || n > 8 {
		fields["market.outcomes"] = "between 1 and 8 outcomes are required"
	}
}

func validateBusiness(p *models.BusinessProfile, fields map[string]string) {
	if p.Business.Capacity < 1 {
		fields["business.capacity"] = "client capacity must be a positive number"
	}
	if p.Business.MonthlyHours < 1 {
		fields["business.monthly_hours"] = "monthly hours must be a positive number"
	}
	if p.Business.ContractValue < 1 {
		fields["business.contract_value"] = "contract value must be a positive number"
	}
	switch p.Business.ValuePeriod {
	case models.PeriodAnnual, models.PeriodMonthly:
	default:
		fields["business.value_period"] = "value period must be annual or monthly"
	}
	if n := len(p.Business.DeliveryModels); n < 1 || n > 3 {
		fields["business.delivery_models"] = "between 1 and 3 delivery models are required"
	}
	for i, dm := range p.Business.DeliveryModels {
		if !containsDelivery(dm) {
			fields[fmt.Sprintf("business.delivery_models[%d]", i)] = fmt.Sprintf("unknown delivery model %q", dm)
		}
	}
}

func validatePricing(p *models.BusinessProfile, fields map[string]string) {
	if !containsPosture(p.Pricing.PricePosture) {
		fields["pricing.price_posture"] = fmt.Sprintf("unknown price posture %q", p.Pricing.PricePosture)
	}
	if !containsContract(p.Pricing.ContractStyle) {
		fields["pricing.contract_style"] = fmt.Sprintf("unknown contract style %q", p.Pricing.ContractStyle)
	}
	if !containsGuarantee(p.Pricing.GuaranteeKind) {
		fields["pricing.guarantee_kind"] = fmt.Sprintf("unknown guarantee kind %q", p.Pricing.GuaranteeKind)
	}
}

func crossFieldChecks(p *models.BusinessProfile, fields map[string]string) {
	// Only meaningful once the shape checks pass for the inputs involved.
	if p.Business.Capacity >= 1 && p.Business.MonthlyHours >= 1 {
		hpc := p.HoursPerClient()
		if hpc < MinHoursPerClient || hpc > MaxHoursPerClient {
			fields["business.monthly_hours"] = fmt.Sprintf(
				"hours per client works out to %.1f; a deliverable engagement needs between %d and %d",
				hpc, MinHoursPerClient, MaxHoursPerClient)
		}
	}

	if p.Pricing.PricePosture == models.PosturePremium &&
		p.Business.Capacity >= 1 && p.Business.ContractValue >= 1 {
		monthly := float64(p.Business.ContractValue)
		if p.Business.ValuePeriod == models.PeriodAnnual {
			monthly /= 12
		}
		if monthly/float64(p.Business.Capacity) < MinPremiumMonthlyPerClient {
			fields["pricing.price_posture"] = fmt.Sprintf(
				"premium posture expects at least $%d per client per month", MinPremiumMonthlyPerClient)
		}
	}

	if hasDelivery(p, models.DeliveryProject) && p.Pricing.ContractStyle != models.ContractProject &&
		containsContract(p.Pricing.ContractStyle) {
		fields["pricing.contract_style"] = "a one-time project delivery model pairs with a project contract term"
	}
}

// advisories collects non-blocking judgment-call observations
func advisories(p *models.BusinessProfile) []string {
	var out []string

	tone := strings.ToLower(p.Voice.BrandTone)
	for _, ind := range p.Founder.Industries {
		industry := strings.ToLower(ind)
		if (strings.Contains(industry, "finance") || strings.Contains(industry, "legal") ||
			strings.Contains(industry, "health")) &&
			(strings.Contains(tone, "playful") || strings.Contains(tone, "irreverent")) {
			out = append(out, fmt.Sprintf(
				"a %q tone may land poorly with %s buyers; consider a steadier register", p.Voice.BrandTone, ind))
		}
	}

	if len(p.Founder.ProofAssets) == 0 {
		out = append(out, "no proof assets declared; the package will lean on signature results alone")
	}

	return out
}

func hasDelivery(p *models.BusinessProfile, dm models.DeliveryModel) bool {
	for _, d := range p.Business.DeliveryModels {
		if d == dm {
			return true
		}
	}
	return false
}

func containsDelivery(dm models.DeliveryModel) bool {
	for _, d := range models.ValidDeliveryModels {
		if d == dm {
			return true
		}
	}
	return false
}

func containsPosture(pp models.PricePosture) bool {
	for _, v := range models.ValidPostures {
		if v == pp {
			return true
		}
	}
	return false
}

func containsContract(cs models.ContractStyle) bool {
	for _, v := range models.ValidContractStyles {
		if v == cs {
			return true
		}
	}
	return false
}

func containsGuarantee(g models.GuaranteeKind) bool {
	for _, v := range models.ValidGuarantees {
		if v == g {
			return true
		}
	}
	return false
}
