// Package configfile persists session metadata: recently opened rosters and
// the last record viewed in each, so an editing session resumes where the
// operator left off.
package configfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const MetadataFileName = "metadata.json"

// maxRecent caps the recent-files list.
const maxRecent = 10

// Metadata is the on-disk session state.
type Metadata struct {
	Recent []RecentFile `json:"recent,omitempty"`
}

// RecentFile is one remembered roster.
type RecentFile struct {
	Path        string    `json:"path"`
	LastBarcode string    `json:"last_barcode,omitempty"`
	OpenedAt    time.Time `json:"opened_at"`
}

func MetadataPath(dir string) string {
	return filepath.Join(dir, MetadataFileName)
}

// Load reads metadata.json from dir. A missing file returns an empty
// Metadata, not an error.
func Load(dir string) (*Metadata, error) {
	data, err := os.ReadFile(MetadataPath(dir))
	if os.IsNotExist(err) {
		return &Metadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	return &m, nil
}

// Save writes metadata.json to dir, creating the directory if needed.
func (m *Metadata) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	if err := os.WriteFile(MetadataPath(dir), data, 0o600); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// Touch moves path to the front of the recent list, recording the last
// barcode viewed. The list is capped at maxRecent entries.
func (m *Metadata) Touch(path, barcode string) {
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}

	entry := RecentFile{Path: path, LastBarcode: barcode, OpenedAt: time.Now().UTC()}
	out := []RecentFile{entry}
	for _, r := range m.Recent {
		if r.Path == path {
			if barcode == "" {
				out[0].LastBarcode = r.LastBarcode
			}
			continue
		}
		out = append(out, r)
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	m.Recent = out
}

// LastBarcode returns the last barcode viewed in path, if remembered.
func (m *Metadata) LastBarcode(path string) string {
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	for _, r := range m.Recent {
		if r.Path == path {
			return r.LastBarcode
		}
	}
	return ""
}
