// Package roster loads roster CSVs and writes edits back in place.
//
// Loading goes through encoding/csv with header-driven field mapping, so
// column order in the file is irrelevant. Saving deliberately does not: a
// save re-reads the file as raw text and rewrites only the edited cells of
// the one matching row, leaving every other byte of the file alone (see
// rewrite.go). That keeps pass-through columns, quoting choices, and line
// endings from a foreign export intact.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

// Roster is a loaded roster file.
type Roster struct {
	Path    string
	Players []types.Player
	Teams   []string // unique, sorted
	Header  []string // as found in the file
}

// Load reads and parses a roster CSV. Missing cells default to empty
// strings; only an unreadable file or broken CSV syntax fails.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFileAccess, path, err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // rows may be ragged
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: file has no header row", ErrParse, path)
	}

	header := records[0]
	idx := headerIndex(header)
	if _, ok := idx[ColBarcode]; !ok {
		return nil, fmt.Errorf("%w: %s: missing %q column", ErrParse, path, ColBarcode)
	}

	r := &Roster{Path: path, Header: header}
	teams := make(map[string]bool)

	for _, row := range records[1:] {
		cell := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		p := types.Player{
			Barcode:      cell(ColBarcode),
			Team:         cell(ColTeam),
			FirstName:    cell(ColFirstName),
			LastName:     cell(ColLastName),
			JerseyNumber: cell(ColJerseyNumber),
			Coach:        cell(ColCoach),
			CellPhone:    cell(ColCellPhone),
			Email:        cell(ColEmail),
			Products:     cell(ColProducts),
			Packages:     cell(ColPackages),
		}

		for i, name := range header {
			name = strings.TrimSpace(name)
			if knownColumns[name] || name == "" {
				continue
			}
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			if i < len(row) {
				p.Extra[name] = row[i]
			} else {
				p.Extra[name] = ""
			}
		}

		if p.Team != "" {
			teams[p.Team] = true
		}
		r.Players = append(r.Players, p)
	}

	for t := range teams {
		r.Teams = append(r.Teams, t)
	}
	sort.Strings(r.Teams)

	return r, nil
}

// FindByBarcode returns the index of the player with the given barcode, or
// -1.
func (r *Roster) FindByBarcode(barcode string) int {
	for i := range r.Players {
		if r.Players[i].Barcode == barcode {
			return i
		}
	}
	return -1
}

// headerIndex maps trimmed header names to their column positions. The first
// occurrence wins if a name repeats.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}
