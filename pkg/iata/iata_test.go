package iata

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeLocationCode(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"LAX": "LAX",
		"lax": "LAX",
		"nYc": "NYC",
	}
	for input, want := range valid {
		got, err := NormalizeLocationCode(input)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", input, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", input, want, got)
		}
	}

	formatCases := []string{"", "LA", "LAXX", "LOSANGELES", "123", "1AX"}
	for _, input := range formatCases {
		if _, err := NormalizeLocationCode(input); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("%q: expected ErrInvalidFormat, got %v", input, err)
		}
	}

	charCases := []string{"L@X", "LA ", "N-C", "<AX"}
	for _, input := range charCases {
		if _, err := NormalizeLocationCode(input); !errors.Is(err, ErrInvalidCharacters) {
			t.Fatalf("%q: expected ErrInvalidCharacters, got %v", input, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	if _, err := ParseDate("2024-12-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := []string{"01-12-2024", "2024/12/01", "2024-13-01", "2024-12-1", "tomorrow", ""}
	for _, input := range invalid {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("%q: expected ErrInvalidFormat, got %v", input, err)
		}
	}
}

func TestValidateDateNotPast(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	past, _ := ParseDate("2026-08-31")
	if err := ValidateDateNotPast(past, now); !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}

	// Same day counts as valid even late in the day.
	today, _ := ParseDate("2026-09-01")
	if err := ValidateDateNotPast(today, now); err != nil {
		t.Fatalf("same-day date should pass, got %v", err)
	}

	future, _ := ParseDate("2026-12-01")
	if err := ValidateDateNotPast(future, now); err != nil {
		t.Fatalf("future date should pass, got %v", err)
	}
}

func TestValidateOwnerCode(t *testing.T) {
	t.Parallel()

	if err := ValidateOwnerCode("AA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, input := range []string{"", "A", "AAA", "aa", "A1", "a@"} {
		if err := ValidateOwnerCode(input); !errors.Is(err, ErrInvalidFormat) && !errors.Is(err, ErrInvalidCharacters) {
			t.Fatalf("%q: expected format error, got %v", input, err)
		}
	}
}

func TestValidateOfferRef(t *testing.T) {
	t.Parallel()

	valid := []string{
		"resp-1|offer-1",
		"RESP123|OFFER456",
		"a1b2-c3|d4-e5f6",
	}
	for _, ref := range valid {
		if err := ValidateOfferRef(ref); err != nil {
			t.Fatalf("%q: unexpected error %v", ref, err)
		}
	}

	if err := ValidateOfferRef("invalid-format"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for missing pipe, got %v", err)
	}
	if err := ValidateOfferRef("resp|offer|extra|pipes"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for extra segments, got %v", err)
	}
	if err := ValidateOfferRef("resp|<script>"); !errors.Is(err, ErrInvalidCharacters) {
		t.Fatalf("expected ErrInvalidCharacters for markup, got %v", err)
	}
	if err := ValidateOfferRef("|offer"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty segment, got %v", err)
	}
}

func TestSplitOfferRef(t *testing.T) {
	t.Parallel()

	resp, offer, err := SplitOfferRef("resp-1|offer-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "resp-1" || offer != "offer-9" {
		t.Fatalf("unexpected segments %q %q", resp, offer)
	}
}

func TestValidateOfferItemRef(t *testing.T) {
	t.Parallel()

	offerRef := "resp-1|offer-1"

	if err := ValidateOfferItemRef(offerRef, "resp-1|offer-1|item-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Prefix must equal the parent offer reference.
	if err := ValidateOfferItemRef(offerRef, "resp-1|offer-2|item-1"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected mismatch to be a format error, got %v", err)
	}
	if err := ValidateOfferItemRef(offerRef, "item-1"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected bare suffix to fail, got %v", err)
	}
	if err := ValidateOfferItemRef(offerRef, "resp-1|offer-1|ite<m"); !errors.Is(err, ErrInvalidCharacters) {
		t.Fatalf("expected charset error, got %v", err)
	}

	if got := ItemSuffix(offerRef, "resp-1|offer-1|item-7"); got != "item-7" {
		t.Fatalf("unexpected suffix %q", got)
	}
}
