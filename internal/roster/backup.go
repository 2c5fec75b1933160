package roster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// backupTimestamp matches the original exporter's backup naming.
const backupTimestamp = "20060102_150405"

// Backup copies the roster to <stem>_backup_<timestamp>.<ext> before a
// destructive rewrite. dir overrides the destination directory; empty means
// alongside the original. Returns the backup path.
func Backup(path, dir string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", ErrFileAccess, path, err)
	}
	defer src.Close()

	if dir == "" {
		dir = filepath.Dir(path)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating backup dir %s: %v", ErrFileAccess, dir, err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".csv"
	}
	name := fmt.Sprintf("%s_backup_%s%s", stem, time.Now().Format(backupTimestamp), ext)
	dst := filepath.Join(dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("%w: creating backup %s: %v", ErrFileAccess, dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("%w: copying to %s: %v", ErrFileAccess, dst, err)
	}
	return dst, nil
}
