// Package rules applies the photo-day business rules to a player update:
// the coach complimentary item, coach and no-order name suffixes, and column
// canonicalization. All transformations are deterministic and idempotent.
package rules

import (
	"strings"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/order"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

// Last-name markers. Added at most once; stripped before re-applying so
// repeated saves never stack them.
const (
	CoachSuffix   = " - COACH"
	NoOrderSuffix = " - NO ORDER"
)

// Normalize validates an update and applies the business rules, returning
// the canonical form that gets written to the file:
//
//   - both order cells decoded, merged, and re-split by category
//   - coach flag "Y" forces the complimentary item and the coach suffix
//   - empty non-coach orders get the no-order suffix (placeholder rows exempt)
//   - cells re-encoded in stable catalog order
func Normalize(upd types.PlayerUpdate) (types.PlayerUpdate, error) {
	if err := ValidateUpdate(upd); err != nil {
		return upd, err
	}

	upd.Coach = strings.ToUpper(strings.TrimSpace(upd.Coach))

	pkgs := order.Decode(upd.Packages, order.ColumnPackages)
	prods := order.Decode(upd.Products, order.ColumnProducts)
	q := order.Merge(pkgs, prods)

	last := StripSuffixes(upd.LastName)

	if upd.IsCoach() {
		q = EnsureCoachItem(q)
		last = last + CoachSuffix
	} else {
		// The complimentary item only exists for coaches.
		delete(q, catalog.CoachFreeCode)
		if q.IsEmpty() && !IsPlaceholderName(last) {
			last = last + NoOrderSuffix
		}
	}

	pkgs, prods = order.Split(q)
	upd.Packages = order.Encode(pkgs, order.ColumnPackages)
	upd.Products = order.Encode(prods, order.ColumnProducts)
	upd.LastName = last

	return upd, nil
}

// EnsureCoachItem forces the coach complimentary item to quantity >= 1.
func EnsureCoachItem(q order.Quantities) order.Quantities {
	out := make(order.Quantities, len(q)+1)
	for code, n := range q {
		out[code] = n
	}
	if out[catalog.CoachFreeCode] < 1 {
		out[catalog.CoachFreeCode] = 1
	}
	return out
}

// StripSuffixes removes coach and no-order markers from a last name,
// repeatedly, so legacy rows with stacked markers come out clean.
func StripSuffixes(last string) string {
	for {
		trimmed := strings.TrimSuffix(last, CoachSuffix)
		trimmed = strings.TrimSuffix(trimmed, NoOrderSuffix)
		if trimmed == last {
			return strings.TrimRight(trimmed, " ")
		}
		last = trimmed
	}
}

// IsPlaceholderName reports whether a last name is a numeric placeholder
// (rows pre-seeded with subject numbers instead of names). Placeholders
// never receive the no-order suffix.
func IsPlaceholderName(last string) bool {
	last = strings.TrimSpace(last)
	if last == "" {
		return false
	}
	for _, r := range last {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
