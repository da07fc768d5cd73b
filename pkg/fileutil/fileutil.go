// =============================================================================
// Triangle Accumulator - File Utilities
// =============================================================================
//
// This module provides the file helpers shared by the ingestion and emission
// collaborators, plus input archival.
//
// ARCHIVAL STRATEGY:
//   - Input files are copied (never moved) into the archive directory after
//     a successful run, under a timestamped name, so a re-run against the
//     same input remains possible
//   - Failed runs archive nothing
//
// =============================================================================

package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Suffixes returns every extension of the path's final component, in order.
// "claims.txt" has one suffix, "claims.tar.gz" has two, "claims" has none.
// A leading dot on a hidden file does not count as an extension separator.
func Suffixes(path string) []string {
	base := filepath.Base(path)
	base = strings.TrimPrefix(base, ".")

	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return nil
	}

	suffixes := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		suffixes = append(suffixes, "."+part)
	}
	return suffixes
}

// Exists reports whether a file or directory exists at the path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ArchiveCopy copies src into archiveDir under a timestamped name and
// returns the archived path. The archive directory is created if needed.
//
// NAMING:
//   input.txt archived at 2026-08-29 14:03:05 becomes
//   input_20260829-140305.txt
func ArchiveCopy(src, archiveDir string) (string, error) {
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory %s: %w", archiveDir, err)
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stamp := time.Now().Format("20060102-150405")
	dst := filepath.Join(archiveDir, fmt.Sprintf("%s_%s%s", stem, stamp, ext))

	if err := copyFile(src, dst); err != nil {
		return "", err
	}

	return dst, nil
}

// copyFile copies src to dst, failing if dst already exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return nil
}
