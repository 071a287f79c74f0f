package enums

import "fmt"

// PrefLevelCode states how strongly the cabin preference binds the search.
type PrefLevelCode string

const (
	PrefLevelRequired  PrefLevelCode = "Required"
	PrefLevelPreferred PrefLevelCode = "Preferred"
)

var validPrefLevelCodes = []PrefLevelCode{
	PrefLevelRequired,
	PrefLevelPreferred,
}

// String implements fmt.Stringer.
func (p PrefLevelCode) String() string {
	return string(p)
}

// IsValid reports whether the value is a known preference level.
func (p PrefLevelCode) IsValid() bool {
	for _, candidate := range validPrefLevelCodes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePrefLevelCode converts raw input into a PrefLevelCode.
func ParsePrefLevelCode(value string) (PrefLevelCode, error) {
	for _, candidate := range validPrefLevelCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid preference level code %q", value)
}
