package configfile

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestLoadNonexistent(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() returned error for missing metadata: %v", err)
	}
	if len(m.Recent) != 0 {
		t.Errorf("expected empty metadata, got %+v", m)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".mvsform")

	m := &Metadata{}
	m.Touch("/rosters/spring.csv", "1001")
	if err := m.Save(dir); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded.Recent) != 1 {
		t.Fatalf("got %d recent entries, want 1", len(loaded.Recent))
	}
	if loaded.Recent[0].LastBarcode != "1001" {
		t.Errorf("LastBarcode = %q, want 1001", loaded.Recent[0].LastBarcode)
	}
}

func TestTouchMovesToFront(t *testing.T) {
	m := &Metadata{}
	m.Touch("/a.csv", "1")
	m.Touch("/b.csv", "2")
	m.Touch("/a.csv", "3")

	if len(m.Recent) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.Recent))
	}
	if m.Recent[0].Path != "/a.csv" || m.Recent[0].LastBarcode != "3" {
		t.Errorf("front = %+v", m.Recent[0])
	}
	if m.Recent[1].Path != "/b.csv" {
		t.Errorf("back = %+v", m.Recent[1])
	}
}

func TestTouchPreservesBarcodeWhenEmpty(t *testing.T) {
	m := &Metadata{}
	m.Touch("/a.csv", "1001")
	m.Touch("/a.csv", "")

	if got := m.LastBarcode("/a.csv"); got != "1001" {
		t.Errorf("LastBarcode = %q, want 1001", got)
	}
}

func TestTouchCapsList(t *testing.T) {
	m := &Metadata{}
	for i := 0; i < maxRecent+5; i++ {
		m.Touch(fmt.Sprintf("/roster-%d.csv", i), "")
	}
	if len(m.Recent) != maxRecent {
		t.Errorf("got %d entries, want %d", len(m.Recent), maxRecent)
	}
}

func TestLastBarcodeUnknownPath(t *testing.T) {
	m := &Metadata{}
	if got := m.LastBarcode("/unknown.csv"); got != "" {
		t.Errorf("LastBarcode = %q, want empty", got)
	}
}
