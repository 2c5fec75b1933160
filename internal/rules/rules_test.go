package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/catalog"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

func baseUpdate() types.PlayerUpdate {
	return types.PlayerUpdate{
		Barcode:   "1001",
		FirstName: "Sam",
		LastName:  "Rivera",
	}
}

func TestNormalizeCoach(t *testing.T) {
	upd := baseUpdate()
	upd.Coach = "y"

	got, err := Normalize(upd)
	require.NoError(t, err)

	assert.Equal(t, "Y", got.Coach)
	assert.Equal(t, "Rivera"+CoachSuffix, got.LastName)
	assert.Contains(t, got.Packages, catalog.CoachFreeCode)
}

func TestNormalizeCoachIdempotent(t *testing.T) {
	upd := baseUpdate()
	upd.Coach = "Y"

	once, err := Normalize(upd)
	require.NoError(t, err)
	twice, err := Normalize(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice, "a second pass must not stack markers or items")
}

func TestNormalizeCoachKeepsOrder(t *testing.T) {
	upd := baseUpdate()
	upd.Coach = "Y"
	upd.Packages = "A"

	got, err := Normalize(upd)
	require.NoError(t, err)
	assert.Equal(t, "A,"+catalog.CoachFreeCode, got.Packages)
}

func TestNormalizeNoOrder(t *testing.T) {
	got, err := Normalize(baseUpdate())
	require.NoError(t, err)
	assert.Equal(t, "Rivera"+NoOrderSuffix, got.LastName)
}

func TestNormalizeMarkerRemovedWhenOrderArrives(t *testing.T) {
	upd := baseUpdate()
	upd.LastName = "Rivera" + NoOrderSuffix
	upd.Products = "8x10"

	got, err := Normalize(upd)
	require.NoError(t, err)
	assert.Equal(t, "Rivera", got.LastName)
}

func TestNormalizeCoachDemoted(t *testing.T) {
	// Coach flag cleared: the marker and the complimentary item both go.
	upd := baseUpdate()
	upd.LastName = "Rivera" + CoachSuffix
	upd.Coach = "N"
	upd.Packages = catalog.CoachFreeCode

	got, err := Normalize(upd)
	require.NoError(t, err)
	assert.Equal(t, "Rivera"+NoOrderSuffix, got.LastName)
	assert.NotContains(t, got.Packages, catalog.CoachFreeCode)
}

func TestNormalizePlaceholderExempt(t *testing.T) {
	upd := baseUpdate()
	upd.FirstName = ""
	upd.LastName = "104"

	got, err := Normalize(upd)
	require.NoError(t, err)
	assert.Equal(t, "104", got.LastName, "placeholder rows never get the no-order marker")
}

func TestNormalizeRoutesColumns(t *testing.T) {
	// Codes typed into the wrong cells land in the right ones.
	upd := baseUpdate()
	upd.Packages = "TEAM-8x10"
	upd.Products = "A,FAM-5x7"

	got, err := Normalize(upd)
	require.NoError(t, err)
	assert.Equal(t, "A,FAM-5x7", got.Packages)
	assert.Equal(t, "TEAM-8x10", got.Products)
}

func TestNormalizeDDKeepsColumnMeaning(t *testing.T) {
	upd := baseUpdate()
	upd.Packages = "DD"
	upd.Products = "DD"

	got, err := Normalize(upd)
	require.NoError(t, err)
	assert.Equal(t, "DD", got.Packages)
	assert.Equal(t, "DD", got.Products)
}

func TestNormalizePreservesUnknownCodes(t *testing.T) {
	upd := baseUpdate()
	upd.Packages = "LEGACY-99"

	got, err := Normalize(upd)
	require.NoError(t, err)
	// Unknown codes survive, in the Products cell.
	assert.Equal(t, "", got.Packages)
	assert.Equal(t, "LEGACY-99", got.Products)
	assert.NotContains(t, got.LastName, NoOrderSuffix)
}

func TestNormalizeValidationFailure(t *testing.T) {
	upd := baseUpdate()
	upd.Coach = "maybe"

	_, err := Normalize(upd)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnsureCoachItem(t *testing.T) {
	q := EnsureCoachItem(nil)
	assert.Equal(t, 1, q[catalog.CoachFreeCode])

	// Never doubled, never reduced.
	q[catalog.CoachFreeCode] = 2
	assert.Equal(t, 2, EnsureCoachItem(q)[catalog.CoachFreeCode])
}

func TestStripSuffixes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rivera", "Rivera"},
		{"Rivera" + CoachSuffix, "Rivera"},
		{"Rivera" + NoOrderSuffix, "Rivera"},
		{"Rivera" + CoachSuffix + NoOrderSuffix, "Rivera"},
		{"Rivera" + NoOrderSuffix + NoOrderSuffix, "Rivera"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripSuffixes(tt.in), "StripSuffixes(%q)", tt.in)
	}
}

func TestIsPlaceholderName(t *testing.T) {
	assert.True(t, IsPlaceholderName("104"))
	assert.True(t, IsPlaceholderName(" 8 "))
	assert.False(t, IsPlaceholderName(""))
	assert.False(t, IsPlaceholderName("Rivera"))
	assert.False(t, IsPlaceholderName("104a"))
}
