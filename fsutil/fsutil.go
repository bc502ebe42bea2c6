// Package fsutil provides filesystem glue shared across tools: path
// checks, unique temp paths, line filtering, atomic writes, and typed
// config-file loading.
package fsutil

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/natefinch/atomic"
)

// Exists reports whether path refers to an existing file or directory,
// following symlinks.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsSymlink reports whether path is a symbolic link. The link target is
// not followed and need not exist.
func IsSymlink(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// TempPath returns a unique path under dir with the given prefix,
// without creating anything at it. An empty dir means the system temp
// directory. The caller owns any race between generating the path and
// creating the file; use [TempDir] or os.CreateTemp when the entry
// must exist atomically.
func TempPath(dir, prefix string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	var b [8]byte
	// crypto/rand.Read does not fail on supported platforms.
	_, _ = rand.Read(b[:])
	return filepath.Join(dir, prefix+hex.EncodeToString(b[:]))
}

// TempDir creates a unique directory under the system temp directory
// and returns its path. The caller is responsible for removal.
func TempDir(prefix string) (string, error) {
	return os.MkdirTemp("", prefix)
}

// FilterLines reads r line by line and returns the lines matching re,
// in input order. No matches yield an empty result, not an error.
func FilterLines(r io.Reader, re *regexp.Regexp) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if re.MatchString(sc.Text()) {
			lines = append(lines, sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Grep returns the lines of the file at path matching re.
func Grep(path string, re *regexp.Regexp) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FilterLines(f, re)
}

// WriteAtomic writes data to path via a rename of a temp file, so
// readers never observe a partial write. If the atomic write fails
// (e.g. rename across filesystems), it falls back to a plain write and
// only reports an error when both fail.
func WriteAtomic(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		if werr := os.WriteFile(path, data, 0o666); werr != nil {
			return fmt.Errorf("write %s: %w (non-atomic retry: %v)", path, err, werr)
		}
	}
	return nil
}
