package roster

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

func updFor(barcode string) types.PlayerUpdate {
	return types.PlayerUpdate{
		Barcode:   barcode,
		FirstName: "Sam",
		LastName:  "Rivera",
		Packages:  "A,A",
		Products:  "8x10",
	}
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	return string(data)
}

func TestRewriteTouchesOnlyTargetRow(t *testing.T) {
	content := `Barcode Number,Team,First Name,Last Name,Jersey Number,Coach,Cell Phone,Email,Products,Packages
1001,Hawks,Sam,Rivera,12,,,,,
1002,Hawks,"Okafor, Pat",Okafor,7,,,,"TEAM-8x10, extra",CPX
1003,Eagles,,104,,,,,,
`
	path := writeRoster(t, content)
	if err := Rewrite(path, updFor("1001")); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	got := strings.Split(readBack(t, path), "\n")
	want := strings.Split(content, "\n")

	if got[1] != `1001,Hawks,Sam,Rivera,12,,,,8x10,"A,A"` {
		t.Errorf("target row = %q", got[1])
	}
	// Every other line is byte-identical, quoting included.
	for _, i := range []int{0, 2, 3, 4} {
		if got[i] != want[i] {
			t.Errorf("line %d changed: %q -> %q", i, want[i], got[i])
		}
	}
}

func TestRewriteShuffledColumns(t *testing.T) {
	content := `Products,Barcode Number,Packages,First Name,Last Name,Coach,Cell Phone,Email
,1001,,Old,Name,,,
`
	path := writeRoster(t, content)
	if err := Rewrite(path, updFor("1001")); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := readBack(t, path); !strings.Contains(got, `8x10,1001,"A,A",Sam,Rivera,,,`) {
		t.Errorf("rewritten file:\n%s", got)
	}
}

func TestRewriteQuotesOnlyWhenNeeded(t *testing.T) {
	content := `Barcode Number,First Name,Last Name,Coach,Cell Phone,Email,Products,Packages
1001,Sam,Rivera,,,,,
`
	path := writeRoster(t, content)

	upd := updFor("1001")
	upd.LastName = `O"Neil`
	upd.Packages = "A"
	if err := Rewrite(path, upd); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	got := readBack(t, path)
	if !strings.Contains(got, `"O""Neil"`) {
		t.Errorf("quoted value not encoded: %s", got)
	}
	if strings.Contains(got, `"A"`) {
		t.Errorf("plain value should not be quoted: %s", got)
	}
}

func TestRewritePreservesCRLF(t *testing.T) {
	content := "Barcode Number,First Name,Last Name,Coach,Cell Phone,Email,Products,Packages\r\n" +
		"1001,Old,Name,,,,,\r\n" +
		"1002,Other,Row,,,,,\r\n"
	path := writeRoster(t, content)
	if err := Rewrite(path, updFor("1001")); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	got := readBack(t, path)
	if strings.Count(got, "\r\n") != 3 {
		t.Errorf("CRLF endings not preserved:\n%q", got)
	}
	if !strings.HasSuffix(got, "1002,Other,Row,,,,,\r\n") {
		t.Errorf("untouched row changed:\n%q", got)
	}
}

func TestRewritePreservesMissingFinalNewline(t *testing.T) {
	content := "Barcode Number,First Name,Last Name,Coach,Cell Phone,Email,Products,Packages\n" +
		"1001,Old,Name,,,,,"
	path := writeRoster(t, content)
	if err := Rewrite(path, updFor("1001")); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := readBack(t, path); strings.HasSuffix(got, "\n") {
		t.Errorf("final newline invented:\n%q", got)
	}
}

func TestRewritePadsShortRow(t *testing.T) {
	content := `Barcode Number,First Name,Last Name,Coach,Cell Phone,Email,Products,Packages
1001,Sam
`
	path := writeRoster(t, content)
	if err := Rewrite(path, updFor("1001")); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got := readBack(t, path); !strings.Contains(got, `1001,Sam,Rivera,,,,8x10,"A,A"`) {
		t.Errorf("short row not padded:\n%s", got)
	}
}

func TestRewriteUnknownBarcode(t *testing.T) {
	path := writeRoster(t, sampleCSV)
	err := Rewrite(path, updFor("9999"))
	if !errors.Is(err, ErrSave) {
		t.Errorf("err = %v, want ErrSave", err)
	}
}

func TestRewriteMissingColumn(t *testing.T) {
	path := writeRoster(t, "Barcode Number,First Name\n1001,Sam\n")
	err := Rewrite(path, updFor("1001"))
	if !errors.Is(err, ErrSave) {
		t.Errorf("err = %v, want ErrSave", err)
	}
	// The file must be untouched on failure.
	if got := readBack(t, path); got != "Barcode Number,First Name\n1001,Sam\n" {
		t.Errorf("file modified on failed save:\n%s", got)
	}
}

func TestSplitRecordsQuotedNewline(t *testing.T) {
	recs := splitRecords("a,\"x\ny\",c\nd,e,f\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].text != "a,\"x\ny\",c" {
		t.Errorf("record 0 = %q", recs[0].text)
	}
}

func TestSplitFieldsQuotedComma(t *testing.T) {
	fields := splitFields(`a,"b,c",d`)
	if len(fields) != 3 || fields[1] != `"b,c"` {
		t.Errorf("fields = %q", fields)
	}
}

func TestUnquoteField(t *testing.T) {
	tests := []struct{ in, want string }{
		{`plain`, `plain`},
		{`"quoted"`, `quoted`},
		{`"a""b"`, `a"b`},
		{`""`, ``},
	}
	for _, tt := range tests {
		if got := unquoteField(tt.in); got != tt.want {
			t.Errorf("unquoteField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
