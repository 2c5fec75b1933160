package roster

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

// Rewrite updates one player's editable cells in place. The file is treated
// as raw text: the row is located by the barcode column, only the editable
// cells are replaced, and everything else - other rows, pass-through
// columns, original quoting, line endings - is written back byte-identical.
//
// A replaced cell is quoted only when its new value contains a comma, quote,
// CR or LF.
func Rewrite(path string, upd types.PlayerUpdate) error {
	var mode fs.FileMode = 0o644
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrFileAccess, path, err)
	}

	recs := splitRecords(string(data))
	if len(recs) == 0 {
		return fmt.Errorf("%w: %s: file has no header row", ErrParse, path)
	}

	headerRaw := splitFields(recs[0].text)
	names := make([]string, len(headerRaw))
	for i, raw := range headerRaw {
		names[i] = strings.TrimSpace(unquoteField(raw))
	}
	idx := headerIndex(names)

	barcodeIdx, ok := idx[ColBarcode]
	if !ok {
		return fmt.Errorf("%w: column %q not found in %s", ErrSave, ColBarcode, path)
	}

	newValues := make(map[int]string, len(editableColumns))
	maxIdx := barcodeIdx
	for name, val := range map[string]string{
		ColFirstName: upd.FirstName,
		ColLastName:  upd.LastName,
		ColCellPhone: upd.CellPhone,
		ColEmail:     upd.Email,
		ColCoach:     upd.Coach,
		ColProducts:  upd.Products,
		ColPackages:  upd.Packages,
	} {
		i, ok := idx[name]
		if !ok {
			return fmt.Errorf("%w: column %q not found in %s", ErrSave, name, path)
		}
		newValues[i] = val
		if i > maxIdx {
			maxIdx = i
		}
	}

	found := false
	for ri := 1; ri < len(recs); ri++ {
		if strings.TrimSpace(recs[ri].text) == "" {
			continue
		}
		fields := splitFields(recs[ri].text)
		if barcodeIdx >= len(fields) {
			continue
		}
		if unquoteField(fields[barcodeIdx]) != upd.Barcode {
			continue
		}

		// Short rows get padded out to the rightmost edited column.
		for len(fields) <= maxIdx {
			fields = append(fields, "")
		}
		for i, val := range newValues {
			fields[i] = encodeField(val)
		}
		recs[ri].text = strings.Join(fields, ",")
		found = true
		break
	}
	if !found {
		return fmt.Errorf("%w: player with barcode %q not found in %s", ErrSave, upd.Barcode, path)
	}

	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(rec.text)
		b.WriteString(rec.eol)
	}

	if err := os.WriteFile(path, []byte(b.String()), mode); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrSave, path, err)
	}
	return nil
}

// record is one CSV record as raw text plus the line ending that followed
// it ("" for an unterminated final record).
type record struct {
	text string
	eol  string
}

// splitRecords splits file content into records at newlines outside quoted
// fields, preserving each record's original line ending.
func splitRecords(content string) []record {
	var recs []record
	start := 0
	inQuotes := false
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if inQuotes {
				continue
			}
			text, eol := content[start:i], "\n"
			if strings.HasSuffix(text, "\r") {
				text, eol = text[:len(text)-1], "\r\n"
			}
			recs = append(recs, record{text: text, eol: eol})
			start = i + 1
		}
	}
	if start < len(content) {
		recs = append(recs, record{text: content[start:]})
	}
	return recs
}

// splitFields splits a raw record at top-level commas, keeping each field's
// original quoting.
func splitFields(text string) []string {
	var fields []string
	start := 0
	inQuotes := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, text[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, text[start:])
}

// unquoteField decodes a raw CSV field: surrounding quotes removed, doubled
// quotes collapsed. Unquoted fields pass through.
func unquoteField(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return strings.ReplaceAll(raw[1:len(raw)-1], `""`, `"`)
	}
	return raw
}

// encodeField encodes a value as a CSV field, quoting only when required.
func encodeField(val string) string {
	if strings.ContainsAny(val, ",\"\r\n") {
		return `"` + strings.ReplaceAll(val, `"`, `""`) + `"`
	}
	return val
}
