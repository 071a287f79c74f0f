package shopping

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// CriteriaHash produces a stable cache key for normalized criteria. Two
// requests that normalize to the same criteria share one cached response.
func CriteriaHash(criteria *Criteria) string {
	var b strings.Builder
	for _, leg := range criteria.Legs {
		fmt.Fprintf(&b, "%s|%s|%s;", leg.Origin, leg.Destination, leg.DepartureDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "cabin=%s;pref=%s;", criteria.CabinTypeCode, criteria.PrefLevelCode)
	for _, p := range criteria.Passengers {
		fmt.Fprintf(&b, "%s:%s;", p.PaxID, p.PTC)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
