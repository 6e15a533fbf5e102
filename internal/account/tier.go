package account

import "strings"

// Tier is the subscription level gating feature access and batch sizes.
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// ParseTier normalizes a backend-supplied tier string. Anything
// unrecognized resolves to free; entitlement checks must never widen on
// bad input.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pro":
		return TierPro
	case "enterprise":
		return TierEnterprise
	default:
		return TierFree
	}
}

// Paid reports whether the tier unlocks paid features.
func (t Tier) Paid() bool {
	return t == TierPro || t == TierEnterprise
}

func (t Tier) String() string { return string(t) }
