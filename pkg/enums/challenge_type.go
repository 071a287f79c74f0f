package enums

import "fmt"

// ChallengeType names an MFA challenge the identity directory can issue.
type ChallengeType string

const (
	ChallengeOneTimePasscode ChallengeType = "oneTimePasscode"
	ChallengePush            ChallengeType = "push"
)

var validChallengeTypes = []ChallengeType{
	ChallengeOneTimePasscode,
	ChallengePush,
}

// String implements fmt.Stringer.
func (c ChallengeType) String() string {
	return string(c)
}

// IsValid reports whether the challenge type is supported.
func (c ChallengeType) IsValid() bool {
	for _, candidate := range validChallengeTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseChallengeType converts raw input into a ChallengeType.
func ParseChallengeType(value string) (ChallengeType, error) {
	for _, candidate := range validChallengeTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid challenge type %q", value)
}
