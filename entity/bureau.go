package entity

import (
	"strings"

	"github.com/radhian/credit-timeline/utils"
)

// Bureau identifies a credit-reporting agency. Known agencies resolve to the
// constants below; any other non-empty name is kept upper-cased with its
// whitespace collapsed, so "Innovis" and " innovis" are the same bureau.
type Bureau string

const (
	Equifax    Bureau = "Equifax"
	Experian   Bureau = "Experian"
	TransUnion Bureau = "TransUnion"
)

// KnownBureaus is ordered the way snapshots list them.
var KnownBureaus = []Bureau{Equifax, Experian, TransUnion}

// ResolveBureau maps a raw CRM bureau name onto a Bureau. It returns false
// when the name is null under the CRM conventions.
func ResolveBureau(raw string) (Bureau, bool) {
	if utils.IsNull(raw) {
		return "", false
	}

	words := strings.Fields(strings.ToUpper(raw))
	folded := strings.Join(words, "")
	switch {
	case strings.Contains(folded, "EQUIFAX"):
		return Equifax, true
	case strings.Contains(folded, "EXPERIAN"):
		return Experian, true
	case strings.Contains(folded, "TRANSUNION"):
		return TransUnion, true
	}
	return Bureau(strings.Join(words, " ")), true
}

func (b Bureau) IsKnown() bool {
	for _, k := range KnownBureaus {
		if b == k {
			return true
		}
	}
	return false
}
