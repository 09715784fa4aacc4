// =============================================================================
// MAVLink Dialect Converter - File Manager Utility
// =============================================================================
//
// File-handling helpers shared by the convert, sync, and watch paths:
//   - Atomic output writes (write to a temp file, then rename)
//   - Input discovery by glob pattern
//   - Archival of the previous JSON mirror before it is replaced
//
// ATOMICITY:
//   The orchestrator contract requires that a failed conversion leaves no
//   partial or corrupt file behind. WriteFileAtomic writes to a uniquely
//   named temp file in the destination directory and renames it into place,
//   so readers only ever observe the old content or the complete new content.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes data to path without ever exposing a partial file.
// The temp file lives in the destination directory so the final rename stays
// on one filesystem.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move temp file into place: %w", err)
	}

	return nil
}

// =============================================================================
// INPUT DISCOVERY
// =============================================================================

// DiscoverFiles returns the files matching the glob pattern under root,
// sorted by path. Sorting keeps batch runs deterministic.
func DiscoverFiles(root, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchivePrevious moves an existing file at path into archiveDir under a
// timestamped name, returning the archive path. A missing file is not an
// error; there is simply nothing to archive.
func ArchivePrevious(path, archiveDir string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	dest := filepath.Join(archiveDir, fmt.Sprintf("%s.%s", filepath.Base(path), stamp))
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return dest, nil
}

// =============================================================================
// MISC HELPERS
// =============================================================================

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDirectories creates every listed directory that does not exist yet.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
