package pax

import (
	"strings"
	"testing"

	"github.com/aerolinehq/ndc-backend/pkg/enums"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
)

func TestValidateAcceptsWellFormedLists(t *testing.T) {
	t.Parallel()

	cases := [][]Entry{
		{{PaxID: "ADT1", PTC: enums.PTCAdult}},
		{{PaxID: "ADT1", PTC: enums.PTCAdult}, {PaxID: "CHD1", PTC: enums.PTCChild}},
		{{PaxID: "ADT1", PTC: enums.PTCAdult}, {PaxID: "INF1", PTC: enums.PTCInfant}},
		{{PaxID: "ADT1", PTC: enums.PTCAdult}, {PaxID: "SNR1", PTC: enums.PTCSenior}},
		{
			{PaxID: "ADT1", PTC: enums.PTCAdult},
			{PaxID: "ADT2", PTC: enums.PTCAdult},
			{PaxID: "INF1", PTC: enums.PTCInfant},
			{PaxID: "INF2", PTC: enums.PTCInfant},
		},
	}
	for i, entries := range cases {
		if err := Validate(entries); err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
	}
}

func TestValidateUnknownPTC(t *testing.T) {
	t.Parallel()

	err := Validate([]Entry{
		{PaxID: "ADT1", PTC: enums.PTCAdult},
		{PaxID: "X1", PTC: enums.PTC("XXX")},
	})
	assertValidation(t, err, "unknown passenger type code")
}

func TestValidateDuplicatePaxID(t *testing.T) {
	t.Parallel()

	err := Validate([]Entry{
		{PaxID: "ADT1", PTC: enums.PTCAdult},
		{PaxID: "ADT1", PTC: enums.PTCAdult},
	})
	assertValidation(t, err, "duplicate paxId")
}

func TestValidatePaxIDIsCaseSensitive(t *testing.T) {
	t.Parallel()

	err := Validate([]Entry{
		{PaxID: "adt1", PTC: enums.PTCAdult},
		{PaxID: "ADT1", PTC: enums.PTCAdult},
	})
	if err != nil {
		t.Fatalf("differently-cased ids are distinct, got %v", err)
	}
}

func TestValidateMissingAdult(t *testing.T) {
	t.Parallel()

	cases := [][]Entry{
		{{PaxID: "INF1", PTC: enums.PTCInfant}},
		{{PaxID: "CHD1", PTC: enums.PTCChild}},
		{{PaxID: "GBE1", PTC: enums.PTCYoungAdult}},
		{{PaxID: "SNR1", PTC: enums.PTCSenior}},
	}
	for i, entries := range cases {
		err := Validate(entries)
		if err == nil {
			t.Fatalf("case %d: expected missing-adult error", i)
		}
		assertValidation(t, err, "at least one adult")
	}
}

func TestValidateInfantRatio(t *testing.T) {
	t.Parallel()

	err := Validate([]Entry{
		{PaxID: "ADT1", PTC: enums.PTCAdult},
		{PaxID: "INF1", PTC: enums.PTCInfant},
		{PaxID: "INF2", PTC: enums.PTCInfant},
	})
	assertValidation(t, err, "infant")
}

func TestValidateRulePriority(t *testing.T) {
	t.Parallel()

	// Duplicate ids and a missing adult at once: the duplicate wins.
	err := Validate([]Entry{
		{PaxID: "INF1", PTC: enums.PTCInfant},
		{PaxID: "INF1", PTC: enums.PTCInfant},
	})
	assertValidation(t, err, "duplicate paxId")

	// Unknown PTC outranks everything else.
	err = Validate([]Entry{
		{PaxID: "P1", PTC: enums.PTC("BAD")},
		{PaxID: "P1", PTC: enums.PTC("BAD")},
	})
	assertValidation(t, err, "unknown passenger type code")
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{PaxID: "ADT1", PTC: enums.PTCAdult},
		{PaxID: "INF1", PTC: enums.PTCInfant},
		{PaxID: "INF2", PTC: enums.PTCInfant},
	}
	first := Validate(entries)
	second := Validate(entries)
	if first == nil || second == nil {
		t.Fatal("expected violations on both runs")
	}
	if first.Error() != second.Error() {
		t.Fatalf("expected identical classification, got %q then %q", first, second)
	}
}

func assertValidation(t *testing.T, err error, fragment string) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", typed.Code())
	}
	if !strings.Contains(typed.Message(), fragment) {
		t.Fatalf("expected message containing %q, got %q", fragment, typed.Message())
	}
}
