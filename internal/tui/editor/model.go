// Package editor provides the Bubbletea TUI for editing a roster one player
// at a time. It drives the order form, navigates between players with
// autosave, applies the business rules through the shared save pipeline, and
// watches the open file for outside changes.
package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
	"github.com/SebastianNeiswanger/mvs-photo-form/internal/types"
)

// Form fields, in focus order.
type field int

const (
	fieldFirstName field = iota
	fieldLastName
	fieldPhone
	fieldEmail
	fieldCoach
	fieldPackages
	fieldProducts
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"First Name",
	"Last Name",
	"Cell Phone",
	"Email",
	"Coach (Y/N)",
	"Packages",
	"Products",
}

// Options configures an editing session.
type Options struct {
	Autosave     bool   // save dirty forms when navigating away
	Backups      bool   // back the file up before each rewrite
	BackupDir    string // "" = next to the roster
	StartBarcode string // player to open first
}

// Model is the Bubbletea model for the roster editor.
type Model struct {
	// Dimensions
	width, height int

	// Data
	path    string
	roster  *roster.Roster
	opts    Options
	visible []int // roster indices after team filter
	pos     int   // position within visible
	teamIdx int   // index into roster.Teams; -1 = all teams

	// Form
	inputs [fieldCount]textinput.Model
	focus  field
	dirty  bool

	// Save/navigation state
	saving        bool
	pendingNav    int  // player delta applied after a successful save
	pendingTeam   bool // cycle team filter after a successful save
	quitAfterSave bool

	// External changes
	watcher        *roster.Watcher
	externalChange bool
	expectChange   int // watcher events our own writes will generate

	// UI state
	keys      KeyMap
	help      help.Model
	showHelp  bool
	status    string
	statusErr bool
}

// New creates an editor model. The watcher may be nil (watching is best
// effort; the editor works without it).
func New(r *roster.Roster, w *roster.Watcher, opts Options) *Model {
	m := &Model{
		path:    r.Path,
		roster:  r,
		opts:    opts,
		teamIdx: -1,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		watcher: w,
	}

	for f := field(0); f < fieldCount; f++ {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		m.inputs[f] = in
	}
	m.inputs[fieldCoach].CharLimit = 1
	m.inputs[fieldCoach].Placeholder = "N"
	m.inputs[fieldPackages].Placeholder = "e.g. A,A,FAM-5x7"
	m.inputs[fieldProducts].Placeholder = "e.g. 8x10,TEAM-8x10,DD"

	m.rebuildVisible()
	if opts.StartBarcode != "" {
		if i := r.FindByBarcode(opts.StartBarcode); i >= 0 {
			for vi, ri := range m.visible {
				if ri == i {
					m.pos = vi
					break
				}
			}
		}
	}
	m.loadInputs()

	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.waitForChange(),
		tea.SetWindowTitle("MVS Photo Form"),
	)
}

// savedMsg is sent when an async save finishes.
type savedMsg struct {
	upd types.PlayerUpdate
	err error
}

// reloadedMsg is sent when the roster is re-read from disk.
type reloadedMsg struct {
	roster *roster.Roster
	err    error
}

// backupDoneMsg is sent when a manual backup finishes.
type backupDoneMsg struct {
	path string
	err  error
}

// fileChangedMsg is sent when the watcher sees an outside write.
type fileChangedMsg struct{}

// watchClosedMsg is sent when the watcher shuts down.
type watchClosedMsg struct{}

// CurrentBarcode returns the barcode of the player being edited, for resume
// metadata. Empty when the roster is empty.
func (m *Model) CurrentBarcode() string {
	if p := m.current(); p != nil {
		return p.Barcode
	}
	return ""
}

func (m *Model) current() *types.Player {
	if len(m.visible) == 0 || m.pos >= len(m.visible) {
		return nil
	}
	return &m.roster.Players[m.visible[m.pos]]
}

// rebuildVisible recomputes the team-filtered view, clamping the position.
func (m *Model) rebuildVisible() {
	team := m.currentTeam()
	m.visible = m.visible[:0]
	for i := range m.roster.Players {
		if team == "" || m.roster.Players[i].Team == team {
			m.visible = append(m.visible, i)
		}
	}
	if m.pos >= len(m.visible) {
		m.pos = max(0, len(m.visible)-1)
	}
}

func (m *Model) currentTeam() string {
	if m.teamIdx < 0 || m.teamIdx >= len(m.roster.Teams) {
		return ""
	}
	return m.roster.Teams[m.teamIdx]
}

// loadInputs fills the form from the current player and resets focus.
func (m *Model) loadInputs() {
	p := m.current()
	vals := [fieldCount]string{}
	if p != nil {
		vals = [fieldCount]string{
			p.FirstName, p.LastName, p.CellPhone, p.Email, p.Coach, p.Packages, p.Products,
		}
	}
	for f := field(0); f < fieldCount; f++ {
		m.inputs[f].SetValue(vals[f])
		m.inputs[f].Blur()
		m.inputs[f].CursorEnd()
	}
	m.focus = fieldFirstName
	m.inputs[m.focus].Focus()
	m.dirty = false
}

// collectUpdate builds the update for the current player from the form.
func (m *Model) collectUpdate() types.PlayerUpdate {
	p := m.current()
	upd := types.PlayerUpdate{}
	if p != nil {
		upd.Barcode = p.Barcode
	}
	upd.FirstName = m.inputs[fieldFirstName].Value()
	upd.LastName = m.inputs[fieldLastName].Value()
	upd.CellPhone = m.inputs[fieldPhone].Value()
	upd.Email = m.inputs[fieldEmail].Value()
	upd.Coach = m.inputs[fieldCoach].Value()
	upd.Packages = m.inputs[fieldPackages].Value()
	upd.Products = m.inputs[fieldProducts].Value()
	return upd
}

// save kicks off an async save of the current form.
func (m *Model) save() tea.Cmd {
	if m.current() == nil || m.saving {
		return nil
	}
	m.saving = true
	// The rewrite trips our own watcher; budget one event for it. The
	// watcher coalesces, so one write is at most one event.
	m.expectChange++
	m.setStatus("Saving...", false)
	upd := m.collectUpdate()
	path := m.path
	opts := roster.SaveOptions{Backups: m.opts.Backups, BackupDir: m.opts.BackupDir}
	return func() tea.Msg {
		normalized, err := roster.Save(path, upd, opts)
		return savedMsg{upd: normalized, err: err}
	}
}

// reload re-reads the roster from disk.
func (m *Model) reload() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		r, err := roster.Load(path)
		return reloadedMsg{roster: r, err: err}
	}
}

// backup copies the file without saving.
func (m *Model) backup() tea.Cmd {
	path := m.path
	dir := m.opts.BackupDir
	return func() tea.Msg {
		dst, err := roster.Backup(path, dir)
		return backupDoneMsg{path: dst, err: err}
	}
}

// waitForChange re-arms the external-change listener.
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changed
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return fileChangedMsg{}
	}
}

// nav moves to another player, autosaving a dirty form first.
func (m *Model) nav(delta int) tea.Cmd {
	if len(m.visible) == 0 {
		return nil
	}
	next := m.pos + delta
	if next < 0 || next >= len(m.visible) {
		m.setStatus("No more players", false)
		return nil
	}
	if m.dirty {
		if !m.opts.Autosave {
			m.setStatus("Unsaved changes: ctrl+s to save, esc to revert", true)
			return nil
		}
		m.pendingNav = delta
		return m.save()
	}
	m.move(delta)
	return nil
}

func (m *Model) move(delta int) {
	m.pos += delta
	if m.pos < 0 {
		m.pos = 0
	}
	if m.pos >= len(m.visible) {
		m.pos = len(m.visible) - 1
	}
	m.loadInputs()
	if p := m.current(); p != nil {
		m.setStatus(fmt.Sprintf("Player %d of %d", m.pos+1, len(m.visible)), false)
	}
}

// cycleTeam advances the team filter: all -> team 1 -> ... -> all.
func (m *Model) cycleTeam() tea.Cmd {
	if m.dirty {
		if !m.opts.Autosave {
			m.setStatus("Unsaved changes: ctrl+s to save, esc to revert", true)
			return nil
		}
		m.pendingTeam = true
		return m.save()
	}
	m.applyTeamCycle()
	return nil
}

func (m *Model) applyTeamCycle() {
	m.teamIdx++
	if m.teamIdx >= len(m.roster.Teams) {
		m.teamIdx = -1
	}
	m.pos = 0
	m.rebuildVisible()
	m.loadInputs()
	if team := m.currentTeam(); team != "" {
		m.setStatus(fmt.Sprintf("Team: %s (%d players)", team, len(m.visible)), false)
	} else {
		m.setStatus(fmt.Sprintf("All teams (%d players)", len(m.visible)), false)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			// A failed save never reached the write, so no event is coming.
			if m.expectChange > 0 {
				m.expectChange--
			}
			m.pendingNav = 0
			m.pendingTeam = false
			m.quitAfterSave = false
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
			return m, nil
		}
		// Refresh the in-memory record from the normalized update so
		// suffix changes show up immediately.
		if i := m.roster.FindByBarcode(msg.upd.Barcode); i >= 0 {
			msg.upd.ApplyTo(&m.roster.Players[i])
		}
		m.dirty = false
		m.setStatus(fmt.Sprintf("Saved %s", msg.upd.Barcode), false)
		if m.quitAfterSave {
			return m, tea.Quit
		}
		if m.pendingNav != 0 {
			delta := m.pendingNav
			m.pendingNav = 0
			m.move(delta)
		} else if m.pendingTeam {
			m.pendingTeam = false
			m.applyTeamCycle()
		} else {
			// Reflect normalization (suffixes, canonical cells) in the form.
			m.loadInputs()
		}
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Reload failed: %v", msg.err), true)
			return m, nil
		}
		barcode := m.CurrentBarcode()
		m.roster = msg.roster
		if m.teamIdx >= len(m.roster.Teams) {
			m.teamIdx = -1
		}
		m.rebuildVisible()
		if i := m.roster.FindByBarcode(barcode); i >= 0 {
			for vi, ri := range m.visible {
				if ri == i {
					m.pos = vi
					break
				}
			}
		}
		m.loadInputs()
		m.externalChange = false
		m.setStatus("Roster reloaded", false)
		return m, nil

	case backupDoneMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Backup failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Backup written: %s", msg.path), false)
		}
		return m, nil

	case fileChangedMsg:
		// Our own saves trip the watcher too, and the event can land either
		// side of savedMsg; consume one expected event per save before
		// treating anything as an outside write.
		if m.expectChange > 0 {
			m.expectChange--
		} else {
			m.externalChange = true
			m.setStatus("File changed outside the editor: ctrl+r to reload", true)
		}
		return m, m.waitForChange()

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press: command keys first, everything else to the
// focused input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && m.opts.Autosave && !m.saving {
			m.quitAfterSave = true
			return m, m.save()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.NextPlayer):
		return m, m.nav(1)

	case key.Matches(msg, m.keys.PrevPlayer):
		return m, m.nav(-1)

	case key.Matches(msg, m.keys.Team):
		return m, m.cycleTeam()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()

	case key.Matches(msg, m.keys.Backup):
		return m, m.backup()

	case key.Matches(msg, m.keys.Revert):
		m.loadInputs()
		m.setStatus("Edits reverted", false)
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.focusField((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	// Text entry into the focused input.
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.dirty = true
	}
	return m, cmd
}

func (m *Model) focusField(f field) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}
