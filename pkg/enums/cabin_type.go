package enums

import "fmt"

// CabinTypeCode is the numeric NDC cabin classification ("1" first through "5" economy).
type CabinTypeCode string

const (
	CabinFirst          CabinTypeCode = "1"
	CabinBusiness       CabinTypeCode = "2"
	CabinPremiumEconomy CabinTypeCode = "3"
	CabinEconomy        CabinTypeCode = "4"
	CabinBasicEconomy   CabinTypeCode = "5"
)

var validCabinTypeCodes = []CabinTypeCode{
	CabinFirst,
	CabinBusiness,
	CabinPremiumEconomy,
	CabinEconomy,
	CabinBasicEconomy,
}

// String implements fmt.Stringer.
func (c CabinTypeCode) String() string {
	return string(c)
}

// IsValid reports whether the cabin code is in the supported range.
func (c CabinTypeCode) IsValid() bool {
	for _, candidate := range validCabinTypeCodes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCabinTypeCode converts raw input into a CabinTypeCode.
func ParseCabinTypeCode(value string) (CabinTypeCode, error) {
	for _, candidate := range validCabinTypeCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cabin type code %q", value)
}
