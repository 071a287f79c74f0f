// Package iata validates the wire-level IATA formats used by shopping and
// pricing requests: location codes, departure dates, airline owner codes and
// the opaque offer references minted at shopping time.
package iata

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the only accepted departure date format.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidFormat marks a value that does not match the expected shape.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidCharacters marks a value containing characters outside the
	// allowed alphabet (injected markup, separators, control bytes).
	ErrInvalidCharacters = errors.New("invalid characters")
	// ErrPastDate marks a date earlier than the server's current date.
	ErrPastDate = errors.New("date is in the past")
)

var (
	locationCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)
	ownerCodeRe    = regexp.MustCompile(`^[A-Z]{2}$`)
	offerRefRe     = regexp.MustCompile(`^[A-Za-z0-9-]+\|[A-Za-z0-9-]+$`)
	offerItemRefRe = regexp.MustCompile(`^[A-Za-z0-9-]+\|[A-Za-z0-9-]+\|[A-Za-z0-9-]+$`)
	refCharsetRe   = regexp.MustCompile(`^[A-Za-z0-9|-]+$`)
)

// NormalizeLocationCode validates a 3-letter location code and returns it
// uppercased. Codes of the right length but with non-letter symbols fail with
// ErrInvalidCharacters so the boundary can name the offending field; every
// other mismatch is ErrInvalidFormat.
func NormalizeLocationCode(code string) (string, error) {
	if containsSpecialCharacters(code) {
		return "", ErrInvalidCharacters
	}
	if !locationCodeRe.MatchString(code) {
		return "", ErrInvalidFormat
	}
	return strings.ToUpper(code), nil
}

func containsSpecialCharacters(code string) bool {
	for _, r := range code {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !alpha && !digit {
			return true
		}
	}
	return false
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return parsed, nil
}

// ValidateDateNotPast fails with ErrPastDate when the date falls before the
// current date. Comparison is date-only against the server clock.
func ValidateDateNotPast(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	candidate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		return ErrPastDate
	}
	return nil
}

// ValidateOwnerCode checks a two-letter uppercase IATA airline code. No case
// normalization: lowercase owner codes are rejected.
func ValidateOwnerCode(code string) error {
	if !ownerCodeRe.MatchString(code) {
		return ErrInvalidFormat
	}
	return nil
}

// ValidateOfferRef checks the composite shoppingResponseId|offerId reference.
func ValidateOfferRef(ref string) error {
	if !refCharsetRe.MatchString(ref) {
		return ErrInvalidCharacters
	}
	if !offerRefRe.MatchString(ref) {
		return ErrInvalidFormat
	}
	return nil
}

// SplitOfferRef returns the shopping response and offer segments of a
// validated reference.
func SplitOfferRef(ref string) (shoppingResponseID, offerID string, err error) {
	if err := ValidateOfferRef(ref); err != nil {
		return "", "", err
	}
	parts := strings.SplitN(ref, "|", 2)
	return parts[0], parts[1], nil
}

// ValidateOfferItemRef checks the item reference format and that its prefix
// equals the parent offer reference. A well-formed item ref pointing at a
// different offer is a format violation, not a lookup miss.
func ValidateOfferItemRef(offerRef, itemRef string) error {
	if !refCharsetRe.MatchString(itemRef) {
		return ErrInvalidCharacters
	}
	if !offerItemRefRe.MatchString(itemRef) {
		return ErrInvalidFormat
	}
	if !strings.HasPrefix(itemRef, offerRef+"|") {
		return ErrInvalidFormat
	}
	return nil
}

// ItemSuffix returns the trailing item segment of a validated item reference.
func ItemSuffix(offerRef, itemRef string) string {
	return strings.TrimPrefix(itemRef, offerRef+"|")
}
