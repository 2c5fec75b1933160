package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/configfile"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/tui/editor"
)

var editStartBarcode string

var editCmd = &cobra.Command{
	Use:   "edit <roster.csv>",
	Short: "Edit a roster in the full-screen form editor",
	Long: `Open a roster CSV in the interactive order-form editor.

Navigation with PgUp/PgDn autosaves the current form before moving, and the
saved record is reloaded so name markers (coach, no-order) appear
immediately. The session resumes at the last player you had open.

Keyboard reference:
  Tab / Shift+Tab   move between fields
  PgDn / PgUp       next / previous player (autosaves)
  Ctrl+S            save now
  Ctrl+T            cycle team filter
  Ctrl+R            reload the file from disk
  Ctrl+B            write a backup without saving
  Esc               revert edits to the current player
  F1                full key reference
  Ctrl+C            quit (autosaves a dirty form)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runEdit(args[0])
	},
}

func runEdit(path string) {
	r, err := roster.Load(path)
	if err != nil {
		FatalClassified(err)
	}

	meta, err := configfile.Load(cfg.Dir())
	if err != nil {
		WarnError("session metadata unavailable: %v", err)
		meta = &configfile.Metadata{}
	}

	start := editStartBarcode
	if start == "" {
		start = meta.LastBarcode(path)
	}

	w, err := roster.Watch(path)
	if err != nil {
		WarnError("file watching disabled: %v", err)
		w = nil
	}

	m := editor.New(r, w, editor.Options{
		Autosave:     cfg.Autosave(),
		Backups:      cfg.BackupsEnabled(),
		BackupDir:    cfg.BackupDir(),
		StartBarcode: start,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(rootCtx))
	final, err := p.Run()
	if w != nil {
		_ = w.Close()
	}
	if err != nil {
		FatalError("editor error: %v", err)
	}

	// Remember where the operator left off.
	if em, ok := final.(*editor.Model); ok {
		meta.Touch(path, em.CurrentBarcode())
		if err := meta.Save(cfg.Dir()); err != nil {
			WarnError("could not save session metadata: %v", err)
		}
	}
}

func init() {
	editCmd.Flags().StringVar(&editStartBarcode, "barcode", "", "Start at the player with this barcode")
	rootCmd.AddCommand(editCmd)
}
