// Package userpath handles the portable "~" home marker used in stored paths.
package userpath

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeMarker is the portable stand-in for the user's home directory.
const HomeMarker = "~"

// Expand replaces a leading ~ with the current user's home directory.
// The path is returned unchanged when it has no marker or the home
// directory cannot be determined.
func Expand(path string) string {
	if path == "" || !strings.HasPrefix(path, HomeMarker) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == HomeMarker {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(home, path[2:])
	}
	// ~user forms are left alone.
	return path
}

// Shorten replaces the current user's home directory prefix with ~.
func Shorten(path string) string {
	if path == "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return HomeMarker
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return HomeMarker + strings.TrimPrefix(path, home)
	}
	return path
}
