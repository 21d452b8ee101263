package finance

import "strings"

// RiskProfile is the investor risk tier driving asset allocation and
// instrument ranking weights.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile maps a string to a RiskProfile, case-insensitively.
// Unknown values fall back to RiskModerate.
func ParseRiskProfile(s string) RiskProfile {
	switch RiskProfile(strings.ToLower(strings.TrimSpace(s))) {
	case RiskConservative:
		return RiskConservative
	case RiskAggressive:
		return RiskAggressive
	default:
		return RiskModerate
	}
}

// Valid reports whether p is one of the three known profiles.
func (p RiskProfile) Valid() bool {
	switch p {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}
