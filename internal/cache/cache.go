// Package cache locates the local boxtable cache.
package cache

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the boxtable cache directory.
//
// It uses os.UserCacheDir, which respects XDG_CACHE_HOME on Linux, uses
// ~/Library/Caches on macOS, and %LocalAppData% on Windows. If the user cache
// directory can't be determined it falls back to the system temp directory.
func Dir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "boxtable")
	}
	return filepath.Join(base, "boxtable")
}

// RepoDir returns the directory under dir that a clone of the supplied git
// URL should live in.
func RepoDir(dir, url string) string {
	name := strings.TrimSuffix(url, ".git")
	if i := strings.Index(name, "://"); i >= 0 {
		name = name[i+3:]
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return filepath.Join(dir, "repos", name)
}
