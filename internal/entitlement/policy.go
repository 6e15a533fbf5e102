package entitlement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policies groups the batch policies for every metered surface.
type Policies struct {
	KeywordRank BatchPolicy `yaml:"keyword_rank"`
	PromptTrack BatchPolicy `yaml:"prompt_track"`
	Competitors BatchPolicy `yaml:"competitors"`
}

// DefaultPolicies mirrors the launch pricing: single keyword free, five
// prompts and five competitor URLs included on paid plans, overage
// billed per started block of five, pro hard-capped at fifty.
func DefaultPolicies() Policies {
	return Policies{
		KeywordRank: BatchPolicy{
			FreeMax:          1,
			PaidIncluded:     10,
			PaidHardCap:      50,
			OverageUnitPrice: 0,
			OverageBlockSize: 5,
		},
		PromptTrack: BatchPolicy{
			FreeMax:          0,
			PaidIncluded:     5,
			PaidHardCap:      50,
			OverageUnitPrice: 0,
			OverageBlockSize: 5,
		},
		Competitors: BatchPolicy{
			FreeMax:          0,
			PaidIncluded:     5,
			PaidHardCap:      50,
			OverageUnitPrice: 3,
			OverageBlockSize: 5,
		},
	}
}

// LoadPolicies reads policy overrides from a YAML file. A missing path
// (or empty argument) returns the defaults unchanged.
func LoadPolicies(path string) (Policies, error) {
	p := DefaultPolicies()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("load policies: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return DefaultPolicies(), fmt.Errorf("parse policies %s: %w", path, err)
	}
	return p, nil
}
