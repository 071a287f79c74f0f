package enums

import "fmt"

// PTC is an IATA passenger type code.
type PTC string

const (
	PTCAdult      PTC = "ADT"
	PTCChild      PTC = "CHD"
	PTCYoungAdult PTC = "GBE"
	PTCInfant     PTC = "INF"
	PTCSenior     PTC = "SNR"
)

var validPTCs = []PTC{
	PTCAdult,
	PTCChild,
	PTCYoungAdult,
	PTCInfant,
	PTCSenior,
}

// String implements fmt.Stringer.
func (p PTC) String() string {
	return string(p)
}

// IsValid reports whether the value is a known passenger type code.
func (p PTC) IsValid() bool {
	for _, candidate := range validPTCs {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePTC converts a raw string into a PTC.
func ParsePTC(value string) (PTC, error) {
	for _, candidate := range validPTCs {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid passenger type code %q", value)
}
