package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"offerforge/internal/errors"
	"offerforge/internal/pricing"
	"offerforge/models"
)

// PackageResponse is the strict shape the generation collaborator must
// return for an offer. Anything that fails to bind or fails the shape
// checks becomes a tagged parse error, never a partial package.
type PackageResponse struct {
	Tiers            []models.Tier          `json:"tiers"`
	Comparison       []models.ComparisonRow `json:"comparison"`
	PricingNarrative string                 `json:"pricing_narrative"`
}

// OptimizeResponse is the strict shape for optimization alternatives
type OptimizeResponse struct {
	OptimizedVersions []models.OptimizedVersion `json:"optimized_versions"`
}

// ParsePackageResponse cleans and binds the raw generation output and
// validates it contains all three tiers, a comparison table and a
// pricing narrative. Tier economics are checked against the derived
// pricing: prices must ascend starter < core < premium and no tier may
// exceed the premium hour budget. Omitted tier hours are stamped from
// the deriver.
func ParsePackageResponse(raw string, d pricing.Derived) (*PackageResponse, error) {
	content := CleanJSONContent(raw)

	var resp PackageResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, errors.GenerationParse("response is not valid JSON", err)
	}

	if len(resp.Tiers) != 3 {
		return nil, errors.GenerationParse(
			fmt.Sprintf("expected 3 tiers, got %d", len(resp.Tiers)), nil)
	}

	seen := map[models.TierName]bool{}
	for i, tier := range resp.Tiers {
		if tier.Name != models.TierStarter && tier.Name != models.TierCore && tier.Name != models.TierPremium {
			return nil, errors.GenerationParse(fmt.Sprintf("tier %d has unknown name %q", i, tier.Name), nil)
		}
		if seen[tier.Name] {
			return nil, errors.GenerationParse(fmt.Sprintf("duplicate tier %q", tier.Name), nil)
		}
		seen[tier.Name] = true
		if strings.TrimSpace(tier.Promise) == "" || tier.MonthlyPrice <= 0 || len(tier.Scope) == 0 {
			return nil, errors.GenerationParse(fmt.Sprintf("tier %q is incomplete", tier.Name), nil)
		}
	}

	if err := checkTierEconomics(resp.Tiers, d); err != nil {
		return nil, err
	}

	if len(resp.Comparison) == 0 {
		return nil, errors.GenerationParse("comparison table is missing", nil)
	}
	if strings.TrimSpace(resp.PricingNarrative) == "" {
		return nil, errors.GenerationParse("pricing narrative is missing", nil)
	}

	return &resp, nil
}

// checkTierEconomics rejects packages whose collaborator-supplied
// figures break the tier ladder. Prices must strictly ascend and hours
// stay within the premium budget; a tier with no hours gets the
// deriver's allocation.
func checkTierEconomics(tiers []models.Tier, d pricing.Derived) error {
	byName := map[models.TierName]*models.Tier{}
	for i := range tiers {
		byName[tiers[i].Name] = &tiers[i]
	}
	starter := byName[models.TierStarter]
	core := byName[models.TierCore]
	premium := byName[models.TierPremium]

	if !(starter.MonthlyPrice < core.MonthlyPrice && core.MonthlyPrice < premium.MonthlyPrice) {
		return errors.GenerationParse(fmt.Sprintf(
			"tier prices are not ascending: starter=%d core=%d premium=%d",
			starter.MonthlyPrice, core.MonthlyPrice, premium.MonthlyPrice), nil)
	}

	derivedHours := map[models.TierName]int{
		models.TierStarter: d.StarterHours,
		models.TierCore:    d.CoreHours,
		models.TierPremium: d.PremiumHours,
	}
	for name, tier := range byName {
		if tier.MonthlyHours <= 0 {
			tier.MonthlyHours = derivedHours[name]
			continue
		}
		if tier.MonthlyHours > d.PremiumHours {
			return errors.GenerationParse(fmt.Sprintf(
				"tier %q allocates %d hours, over the %d hour budget",
				name, tier.MonthlyHours, d.PremiumHours), nil)
		}
	}
	return nil
}

// ParseOptimizeResponse binds optimization output and keeps at most
// three complete alternatives.
func ParseOptimizeResponse(raw string) (*OptimizeResponse, error) {
	content := CleanJSONContent(raw)

	var resp OptimizeResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, errors.GenerationParse("response is not valid JSON", err)
	}

	complete := make([]models.OptimizedVersion, 0, 3)
	for _, v := range resp.OptimizedVersions {
		if strings.TrimSpace(v.Version) == "" {
			continue
		}
		complete = append(complete, v)
		if len(complete) == 3 {
			break
		}
	}
	if len(complete) == 0 {
		return nil, errors.GenerationParse("no usable alternatives in response", nil)
	}

	resp.OptimizedVersions = complete
	return &resp, nil
}

// CleanJSONContent strips markdown code fences and conversational
// chatter that models sometimes wrap around JSON output.
func CleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop leading chatter lines before the first JSON delimiter
	if idx := strings.IndexAny(content, "{["); idx > 0 {
		prefix := content[:idx]
		if !strings.ContainsAny(prefix, "{[") && strings.Contains(prefix, "\n") {
			content = content[idx:]
		}
	}

	// Drop trailing chatter after the last closing delimiter
	if end := strings.LastIndexAny(content, "}]"); end >= 0 && end < len(content)-1 {
		suffix := content[end+1:]
		if strings.Contains(suffix, "\n") {
			content = content[:end+1]
		}
	}

	return strings.TrimSpace(content)
}
