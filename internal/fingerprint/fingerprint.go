// Package fingerprint derives the content-addressed cache key for a
// business profile. Equal canonical subsets always yield equal keys
// regardless of input array ordering.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"offerforge/models"
)

// Key hashes the canonicalized subset of profile fields that determine
// offer content. Unordered list fields are sorted before hashing so the
// key is invariant under permutation; only the first three sorted
// differentiators participate.
func Key(p *models.BusinessProfile) string {
	industries := sortedCopy(p.Founder.Industries)

	deliveryModels := make([]string, 0, len(p.Business.DeliveryModels))
	for _, dm := range p.Business.DeliveryModels {
		deliveryModels = append(deliveryModels, string(dm))
	}
	sort.Strings(deliveryModels)

	differentiators := sortedCopy(p.Voice.Differentiators)
	if len(differentiators) > 3 {
		differentiators = differentiators[:3]
	}

	parts := []string{
		strings.Join(industries, ","),
		strings.Join(deliveryModels, ","),
		normalize(p.Market.TargetMarket),
		string(p.Pricing.PricePosture),
		normalize(p.Voice.BrandTone),
		normalize(p.Voice.PositioningAngle),
		strings.Join(differentiators, ","),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "offer:" + hex.EncodeToString(sum[:])
}

func sortedCopy(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, normalize(s))
	}
	sort.Strings(out)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
