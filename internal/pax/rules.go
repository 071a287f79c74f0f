// Package pax enforces passenger composition rules for shopping requests.
package pax

import (
	"fmt"

	"github.com/aerolinehq/ndc-backend/pkg/enums"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
)

// Entry is one passenger in a shopping request.
type Entry struct {
	PaxID string
	PTC   enums.PTC
}

// Validate checks the passenger list against the composition rules. Rules are
// evaluated in a fixed priority order and only the first violation is
// reported:
//
//  1. every PTC must be a known code
//  2. paxIds must be unique (case-sensitive)
//  3. at least one adult must be present; children, young adults and infants
//     cannot travel alone
//  4. each infant must map to its own adult (count(INF) <= count(ADT))
//
// The function is pure; it never touches shared state.
func Validate(entries []Entry) error {
	for _, e := range entries {
		if !e.PTC.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown passenger type code %q", string(e.PTC)))
		}
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.PaxID]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate paxId %q", e.PaxID))
		}
		seen[e.PaxID] = struct{}{}
	}

	adults := 0
	infants := 0
	for _, e := range entries {
		switch e.PTC {
		case enums.PTCAdult:
			adults++
		case enums.PTCInfant:
			infants++
		}
	}

	if adults == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one adult (ADT) passenger required")
	}

	if infants > adults {
		return pkgerrors.New(pkgerrors.CodeValidation, "each infant (INF) must be accompanied by an adult")
	}

	return nil
}
