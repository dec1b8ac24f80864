package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fyrsmithlabs/jbrecent/internal/userpath"
)

const (
	metadataDir = ".idea"
	nameFile    = ".name"
	iconPattern = "icon.*"
)

// Resolve builds the record for a single normalized project path.
//
// The name comes from <path>/.idea/.name when that file exists and is
// non-empty once trailing newlines are stripped, otherwise from the last
// path segment. The icon is the first <path>/.idea/icon.* file in lexical
// order. A leading ~ is expanded for these probes only; the returned Path is
// the value passed in.
//
// Missing metadata is not an error. Any other I/O failure is returned.
func Resolve(path string) (Project, error) {
	if path == "" {
		return Project{}, ErrEmptyProjectPath
	}

	root := userpath.Expand(path)

	name, err := readNameOverride(root)
	if err != nil {
		return Project{}, err
	}
	if name == "" {
		name = baseName(path)
	}

	icon, err := findIcon(root)
	if err != nil {
		return Project{}, err
	}

	return Project{
		Name:  name,
		Path:  path,
		Icon:  icon,
		Score: 0,
	}, nil
}

// readNameOverride returns the .idea/.name content, or "" if the file is absent.
func readNameOverride(root string) (string, error) {
	p := filepath.Join(root, metadataDir, nameFile)
	data, err := os.ReadFile(p)
	if err != nil {
		if isAbsent(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read project name file %s: %w", p, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// findIcon returns the first regular file matching .idea/icon.*, or nil.
func findIcon(root string) (*string, error) {
	dir := filepath.Join(root, metadataDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list project metadata directory %s: %w", dir, err)
	}

	// ReadDir returns entries sorted by name.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(iconPattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid icon pattern: %w", err)
		}
		if ok {
			icon := filepath.Join(dir, entry.Name())
			return &icon, nil
		}
	}
	return nil, nil
}

// isAbsent reports whether err means the probed file or one of its parents
// does not exist. A non-directory parent counts as absent.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// baseName returns the last segment of a path written with either separator,
// ignoring trailing separators. IDEs store Windows paths with forward slashes.
func baseName(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" {
		return p
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
