package entitlement

import "github.com/searchscope/web/internal/account"

// Reason explains why an operation was allowed or denied.
type Reason string

const (
	ReasonOK            Reason = "ok"
	ReasonLoginRequired Reason = "login_required"
	ReasonTierRequired  Reason = "tier_required"
	ReasonQuotaExceeded Reason = "quota_exceeded"
	ReasonCapExceeded   Reason = "cap_exceeded"
)

// Decision is the outcome of gating one requested operation. Denial is a
// value, not an error: the caller substitutes the localized sample
// payload named by SampleKey instead of surfacing a failure.
type Decision struct {
	Allowed   bool
	Reason    Reason
	AddOnCost int
	SampleKey string
}

// BatchPolicy encodes the metering rules for one batch operation.
type BatchPolicy struct {
	FreeMax          int `yaml:"free_max"`
	PaidIncluded     int `yaml:"paid_included"`
	PaidHardCap      int `yaml:"paid_hard_cap"`
	OverageUnitPrice int `yaml:"overage_unit_price"`
	OverageBlockSize int `yaml:"overage_block_size"`
}

// GateBatch evaluates a batch of itemCount items against the policy for
// the given tier. Rules apply first-match:
//
//  1. an empty batch is always allowed at zero cost
//  2. free tier above FreeMax is denied with a sample
//  3. pro above PaidHardCap is denied (enterprise has no hard cap)
//  4. above PaidIncluded the overage is metered per started block
//  5. otherwise allowed at zero cost
func GateBatch(tier account.Tier, itemCount int, p BatchPolicy, sampleKey string) Decision {
	if itemCount == 0 {
		return Decision{Allowed: true, Reason: ReasonOK}
	}
	if tier == account.TierFree && itemCount > p.FreeMax {
		return Decision{Reason: ReasonTierRequired, SampleKey: sampleKey}
	}
	if tier == account.TierPro && p.PaidHardCap > 0 && itemCount > p.PaidHardCap {
		return Decision{Reason: ReasonCapExceeded, SampleKey: sampleKey}
	}
	if tier.Paid() && itemCount > p.PaidIncluded {
		return Decision{
			Allowed:   true,
			Reason:    ReasonOK,
			AddOnCost: overageCost(itemCount-p.PaidIncluded, p),
		}
	}
	return Decision{Allowed: true, Reason: ReasonOK}
}

// overageCost bills every started block as a full block. The round-up is
// deliberate: a partial block is charged at the full block price.
func overageCost(extra int, p BatchPolicy) int {
	if extra <= 0 || p.OverageBlockSize <= 0 {
		return 0
	}
	blocks := (extra + p.OverageBlockSize - 1) / p.OverageBlockSize
	return blocks * p.OverageUnitPrice
}

// GateFeature allows the operation iff tier is one of the required
// tiers; otherwise the caller shows the sample payload.
func GateFeature(tier account.Tier, sampleKey string, required ...account.Tier) Decision {
	for _, want := range required {
		if tier == want {
			return Decision{Allowed: true, Reason: ReasonOK}
		}
	}
	return Decision{Reason: ReasonTierRequired, SampleKey: sampleKey}
}

// GateGuestQuota denies a second guest analysis once the one free run is
// spent. Authenticated callers are never guest-gated.
func GateGuestQuota(hasToken, guestUsed bool, sampleKey string) Decision {
	if hasToken || !guestUsed {
		return Decision{Allowed: true, Reason: ReasonOK}
	}
	return Decision{Reason: ReasonQuotaExceeded, SampleKey: sampleKey}
}
