// Package catalog holds the static table of orderable photo-day items.
//
// Codes are short strings as they appear in the roster CSV, with one
// exception: the digital download token "DD" is shared between two internal
// codes (DD-PKG and DD-PROD) depending on which order column it was entered
// into. Internal codes never appear in the file.
package catalog

import "sort"

// Category classifies an item for column routing.
type Category int

const (
	Package Category = iota
	Product
	FamilyVariant
	TeamVariant
)

func (c Category) String() string {
	switch c {
	case Package:
		return "package"
	case Product:
		return "product"
	case FamilyVariant:
		return "family"
	case TeamVariant:
		return "team"
	default:
		return "unknown"
	}
}

// Item is one orderable code.
type Item struct {
	Code       string   // internal code, unique within the catalog
	External   string   // CSV token; equals Code unless aliased
	Name       string   // display name
	PriceCents int      // unit price in cents
	Category   Category
	Free       bool // excluded from order totals
}

// RoutesToPackages reports whether the item is stored in the Packages cell.
// Packages and family variants go to Packages; products and team variants go
// to Products.
func (i Item) RoutesToPackages() bool {
	return i.Category == Package || i.Category == FamilyVariant
}

// CoachFreeCode is the complimentary item every coach order must carry.
const CoachFreeCode = "CPX"

var items = []Item{
	// Print packages
	{Code: "A", External: "A", Name: "Package A", PriceCents: 4500, Category: Package},
	{Code: "B", External: "B", Name: "Package B", PriceCents: 3800, Category: Package},
	{Code: "C", External: "C", Name: "Package C", PriceCents: 3000, Category: Package},
	{Code: "D", External: "D", Name: "Package D", PriceCents: 2200, Category: Package},
	{Code: "E", External: "E", Name: "Package E", PriceCents: 1500, Category: Package},
	{Code: CoachFreeCode, External: CoachFreeCode, Name: "Coach Complimentary Package", PriceCents: 0, Category: Package, Free: true},
	{Code: "DD-PKG", External: "DD", Name: "Digital Download (package add-on)", PriceCents: 1000, Category: Package},

	// Family add-ons (stored in the Packages cell)
	{Code: "FAM-5x7", External: "FAM-5x7", Name: "Family 5x7", PriceCents: 1300, Category: FamilyVariant},
	{Code: "FAM-8x10", External: "FAM-8x10", Name: "Family 8x10", PriceCents: 1600, Category: FamilyVariant},

	// Team photos (stored in the Products cell)
	{Code: "TEAM-5x7", External: "TEAM-5x7", Name: "Team 5x7", PriceCents: 1200, Category: TeamVariant},
	{Code: "TEAM-8x10", External: "TEAM-8x10", Name: "Team 8x10", PriceCents: 1500, Category: TeamVariant},

	// A la carte products
	{Code: "8x10", External: "8x10", Name: "8x10 Print", PriceCents: 1400, Category: Product},
	{Code: "5x7", External: "5x7", Name: "5x7 Print Pair", PriceCents: 1200, Category: Product},
	{Code: "WAL", External: "WAL", Name: "Wallet Prints (8)", PriceCents: 1000, Category: Product},
	{Code: "MM", External: "MM", Name: "Memory Mate", PriceCents: 1300, Category: Product},
	{Code: "TRC", External: "TRC", Name: "Trading Cards (8)", PriceCents: 1600, Category: Product},
	{Code: "MAG", External: "MAG", Name: "Photo Magnet", PriceCents: 900, Category: Product},
	{Code: "BTN", External: "BTN", Name: "Photo Button", PriceCents: 600, Category: Product},
	{Code: "KEY", External: "KEY", Name: "Photo Keychain", PriceCents: 700, Category: Product},
	{Code: "MUG", External: "MUG", Name: "Photo Mug", PriceCents: 1800, Category: Product},
	{Code: "DD-PROD", External: "DD", Name: "Digital Download", PriceCents: 2500, Category: Product},
}

var (
	byCode map[string]int
	// order in which codes are emitted when encoding a cell
	codeOrder map[string]int
)

func init() {
	rebuildIndex()
}

func rebuildIndex() {
	byCode = make(map[string]int, len(items))
	codeOrder = make(map[string]int, len(items))
	for i, it := range items {
		byCode[it.Code] = i
		codeOrder[it.Code] = i
	}
}

// Lookup returns the item for an internal code.
func Lookup(code string) (Item, bool) {
	i, ok := byCode[code]
	if !ok {
		return Item{}, false
	}
	return items[i], true
}

// Items returns the catalog in stable display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ForToken resolves an external CSV token to an item. The packages flag
// disambiguates tokens shared between columns (DD).
func ForToken(token string, packagesColumn bool) (Item, bool) {
	for _, it := range items {
		if it.External != token {
			continue
		}
		if it.RoutesToPackages() == packagesColumn {
			return it, true
		}
	}
	// Fall back to a unique match regardless of column, so a package code
	// typed into the products cell still resolves (the router moves it).
	var found Item
	n := 0
	for _, it := range items {
		if it.External == token {
			found = it
			n++
		}
	}
	if n == 1 {
		return found, true
	}
	return Item{}, false
}

// SortCodes orders codes by catalog position, unknown codes last
// alphabetically. Used by the codec for stable cell output.
func SortCodes(codes []string) {
	sort.Slice(codes, func(a, b int) bool {
		ia, oka := codeOrder[codes[a]]
		ib, okb := codeOrder[codes[b]]
		switch {
		case oka && okb:
			return ia < ib
		case oka:
			return true
		case okb:
			return false
		default:
			return codes[a] < codes[b]
		}
	})
}
