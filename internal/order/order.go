// Package order implements the quantity codec and column router for the two
// order cells in a roster CSV.
//
// An order is a multiset of item codes. The CSV stores it as the external
// token repeated once per unit, comma-joined, in arbitrary order:
//
//	"A,A,TEAM-8x10" = two Package A, one Team 8x10
//
// The Packages cell holds package and family-variant codes; the Products
// cell holds product and team-variant codes. The digital download token DD
// decodes to a different internal code per column and is translated back to
// the shared token on encode.
package order

import (
	"strings"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
)

// Column identifies which order cell a token came from.
type Column int

const (
	ColumnPackages Column = iota
	ColumnProducts
)

func (c Column) String() string {
	if c == ColumnPackages {
		return "Packages"
	}
	return "Products"
}

// Quantities maps internal item codes to unit counts. Codes not in the
// catalog are preserved verbatim so a load/save cycle never drops them.
type Quantities map[string]int

// Decode counts token occurrences in one order cell. Blank tokens are
// skipped; surrounding whitespace is ignored. A malformed cell never fails,
// it just yields whatever tokens it contains.
func Decode(cell string, col Column) Quantities {
	q := make(Quantities)
	for _, tok := range strings.Split(cell, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if it, ok := catalog.ForToken(tok, col == ColumnPackages); ok {
			q[it.Code]++
		} else {
			q[tok]++
		}
	}
	return q
}

// Encode renders quantities as a cell value: each code's external token
// repeated per unit, comma-joined in stable catalog order.
func Encode(q Quantities, col Column) string {
	codes := make([]string, 0, len(q))
	for code, n := range q {
		if n > 0 {
			codes = append(codes, code)
		}
	}
	catalog.SortCodes(codes)

	var toks []string
	for _, code := range codes {
		tok := code
		if it, ok := catalog.Lookup(code); ok {
			tok = it.External
		}
		for i := 0; i < q[code]; i++ {
			toks = append(toks, tok)
		}
	}
	return strings.Join(toks, ",")
}

// Merge combines the decoded halves of an order into one quantity set.
func Merge(pkgs, prods Quantities) Quantities {
	q := make(Quantities, len(pkgs)+len(prods))
	for code, n := range pkgs {
		q[code] += n
	}
	for code, n := range prods {
		q[code] += n
	}
	return q
}

// Split partitions quantities by category: packages and family variants to
// the Packages cell, everything else (products, team variants, and codes not
// in the catalog) to the Products cell.
func Split(q Quantities) (pkgs, prods Quantities) {
	pkgs = make(Quantities)
	prods = make(Quantities)
	for code, n := range q {
		if n <= 0 {
			continue
		}
		if it, ok := catalog.Lookup(code); ok && it.RoutesToPackages() {
			pkgs[code] = n
		} else {
			prods[code] = n
		}
	}
	return pkgs, prods
}

// TotalCents prices an order. Free items and unknown codes contribute
// nothing.
func TotalCents(q Quantities) int {
	total := 0
	for code, n := range q {
		if n <= 0 {
			continue
		}
		if it, ok := catalog.Lookup(code); ok && !it.Free {
			total += it.PriceCents * n
		}
	}
	return total
}

// IsEmpty reports whether the order has no units at all.
func (q Quantities) IsEmpty() bool {
	for _, n := range q {
		if n > 0 {
			return false
		}
	}
	return true
}

// Units is the total unit count across all codes.
func (q Quantities) Units() int {
	total := 0
	for _, n := range q {
		if n > 0 {
			total += n
		}
	}
	return total
}
