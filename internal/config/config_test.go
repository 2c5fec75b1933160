package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirWithConfig creates a .mvsform dir in a temp tree and makes it the
// working directory, so walk-up discovery lands there instead of $HOME.
func chdirWithConfig(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(root)
	return dir
}

func TestDefaults(t *testing.T) {
	chdirWithConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.BackupsEnabled() {
		t.Error("backups should default on")
	}
	if !cfg.Autosave() {
		t.Error("autosave should default on")
	}
	if cfg.BackupDir() != "" {
		t.Errorf("BackupDir = %q, want empty", cfg.BackupDir())
	}
	if cfg.Theme() != "ayu" {
		t.Errorf("Theme = %q, want ayu", cfg.Theme())
	}
}

func TestWalkUpDiscovery(t *testing.T) {
	dir := chdirWithConfig(t)

	// Descend into a nested working directory; discovery walks up.
	nested := filepath.Join(filepath.Dir(dir), "season", "rosters")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), dir)
	}
}

func TestSetAndReload(t *testing.T) {
	dir := chdirWithConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Set(KeyBackupsEnabled, "false"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatalf("config.yaml not written: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.BackupsEnabled() {
		t.Error("backups.enabled = true after setting false")
	}
}

func TestSetUnknownKey(t *testing.T) {
	chdirWithConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Set("no.such.key", "x"); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestGet(t *testing.T) {
	chdirWithConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if val, ok := cfg.Get(KeyTheme); !ok || val != "ayu" {
		t.Errorf("Get(ui.theme) = %q, %v", val, ok)
	}
	if _, ok := cfg.Get("no.such.key"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestEnvOverride(t *testing.T) {
	chdirWithConfig(t)
	t.Setenv("MVSFORM_UI_THEME", "dracula")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme() != "dracula" {
		t.Errorf("Theme = %q, want env override dracula", cfg.Theme())
	}
}

func TestAllCoversKnownKeys(t *testing.T) {
	chdirWithConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	all := cfg.All()
	for _, k := range knownKeys {
		if _, ok := all[k]; !ok {
			t.Errorf("All() missing %s", k)
		}
	}
}

func TestMalformedConfig(t *testing.T) {
	dir := chdirWithConfig(t)
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("backups: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("malformed config.yaml should fail Load")
	}
}
