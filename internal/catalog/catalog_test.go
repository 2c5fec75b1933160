package catalog

import (
	"testing"
)

func TestLookup(t *testing.T) {
	it, ok := Lookup("A")
	if !ok {
		t.Fatal("Lookup(A) not found")
	}
	if it.Name != "Package A" {
		t.Errorf("Name = %q, want Package A", it.Name)
	}
	if it.Category != Package {
		t.Errorf("Category = %v, want Package", it.Category)
	}

	if _, ok := Lookup("NOPE"); ok {
		t.Error("Lookup(NOPE) should not resolve")
	}

	// External tokens are not internal codes.
	if _, ok := Lookup("DD"); ok {
		t.Error("Lookup(DD) should not resolve; DD is an external token")
	}
}

func TestRoutesToPackages(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"A", true},
		{"FAM-5x7", true},
		{"DD-PKG", true},
		{CoachFreeCode, true},
		{"8x10", false},
		{"TEAM-8x10", false},
		{"DD-PROD", false},
	}
	for _, tt := range tests {
		it, ok := Lookup(tt.code)
		if !ok {
			t.Fatalf("Lookup(%s) not found", tt.code)
		}
		if got := it.RoutesToPackages(); got != tt.want {
			t.Errorf("RoutesToPackages(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestForTokenDisambiguatesDD(t *testing.T) {
	pkg, ok := ForToken("DD", true)
	if !ok || pkg.Code != "DD-PKG" {
		t.Errorf("ForToken(DD, packages) = %v, %v; want DD-PKG", pkg.Code, ok)
	}

	prod, ok := ForToken("DD", false)
	if !ok || prod.Code != "DD-PROD" {
		t.Errorf("ForToken(DD, products) = %v, %v; want DD-PROD", prod.Code, ok)
	}

	if pkg.PriceCents == prod.PriceCents {
		t.Error("DD package add-on and a la carte prices should differ")
	}
}

func TestForTokenWrongColumnFallsBack(t *testing.T) {
	// A package code typed into the products cell still resolves; the
	// router moves it to the right cell later.
	it, ok := ForToken("A", false)
	if !ok || it.Code != "A" {
		t.Errorf("ForToken(A, products) = %v, %v; want A", it.Code, ok)
	}

	it, ok = ForToken("TEAM-5x7", true)
	if !ok || it.Code != "TEAM-5x7" {
		t.Errorf("ForToken(TEAM-5x7, packages) = %v, %v; want TEAM-5x7", it.Code, ok)
	}

	if _, ok := ForToken("NOPE", true); ok {
		t.Error("ForToken(NOPE) should not resolve")
	}
}

func TestSortCodes(t *testing.T) {
	codes := []string{"ZZZ", "TEAM-8x10", "A", "XYZ", "8x10", "E"}
	SortCodes(codes)

	want := []string{"A", "E", "TEAM-8x10", "8x10", "XYZ", "ZZZ"}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("SortCodes = %v, want %v", codes, want)
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	all := Items()
	if len(all) == 0 {
		t.Fatal("empty catalog")
	}
	if len(all) > 40 {
		t.Errorf("catalog has %d items, expected at most 40", len(all))
	}
	orig := all[0].Name
	all[0].Name = "mutated"
	if it, _ := Lookup(all[0].Code); it.Name != orig {
		t.Error("Items() must return a copy, not the backing slice")
	}
}

func TestCoachFreeCodeIsFree(t *testing.T) {
	it, ok := Lookup(CoachFreeCode)
	if !ok {
		t.Fatal("coach item missing from catalog")
	}
	if !it.Free || it.PriceCents != 0 {
		t.Errorf("coach item must be free, got Free=%v price=%d", it.Free, it.PriceCents)
	}
}
