package roster

import (
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/rules"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

// SaveOptions controls the save pipeline.
type SaveOptions struct {
	Backups   bool   // copy the file before rewriting
	BackupDir string // "" = next to the roster
}

// Save runs the full save pipeline for one player: validate and normalize
// the update (business rules, column routing), back up the file, then
// rewrite the row in place. The returned update is the normalized form as
// written, so callers can refresh in-memory state (suffix changes included)
// without re-reading the file.
func Save(path string, upd types.PlayerUpdate, opts SaveOptions) (types.PlayerUpdate, error) {
	normalized, err := rules.Normalize(upd)
	if err != nil {
		return upd, err
	}

	if opts.Backups {
		if _, err := Backup(path, opts.BackupDir); err != nil {
			return normalized, err
		}
	}

	if err := Rewrite(path, normalized); err != nil {
		return normalized, err
	}
	return normalized, nil
}
