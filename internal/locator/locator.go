// Package locator finds JetBrains recent projects files on disk.
//
// JetBrains IDEs keep per-version settings under a shared config root:
//
//	<root>/GoLand2024.2/options/recentProjects.xml
//	<root>/PyCharmCE2023.3/options/recentProjectDirectories.xml
//
// The locator enumerates those directories, splits product from version,
// and returns the recent projects files that exist.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fyrsmithlabs/jbrecent/internal/userpath"
)

// RecentFiles are the option files that may hold recent projects, in the
// order they are reported.
var RecentFiles = []string{
	"recentProjects.xml",
	"recentProjectDirectories.xml",
}

// ErrNoConfigRoot is returned by DefaultRoots when the OS config directory is unknown.
var ErrNoConfigRoot = errors.New("cannot determine JetBrains config directory")

// Installation is one versioned IDE settings directory.
type Installation struct {
	// ID is the directory name, e.g. "GoLand2024.2".
	ID string
	// Product is the ID without its version, e.g. "GoLand".
	Product string
	Version *semver.Version
	// Dir is the absolute settings directory.
	Dir string
	// Files are the existing recent projects files, see RecentFiles.
	Files []string
}

// Options controls Locate.
type Options struct {
	// Roots are the config roots to scan. Empty means DefaultRoots.
	Roots []string
	// Products keeps installations whose product starts with any entry,
	// case-insensitively. Empty keeps all.
	Products []string
	// LatestOnly keeps only the highest version of each product.
	LatestOnly bool
}

// DefaultRoots returns the JetBrains config root for the current OS:
// $XDG_CONFIG_HOME/JetBrains (or ~/.config/JetBrains) on Linux,
// ~/Library/Application Support/JetBrains on macOS and
// %APPDATA%\JetBrains on Windows.
func DefaultRoots() ([]string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConfigRoot, err)
	}
	return []string{filepath.Join(dir, "JetBrains")}, nil
}

// Locate scans the configured roots. Missing roots are skipped. Results are
// ordered newest version first, then by product name.
func Locate(opts Options) ([]Installation, error) {
	roots := opts.Roots
	if len(roots) == 0 {
		var err error
		if roots, err = DefaultRoots(); err != nil {
			return nil, err
		}
	}

	var found []Installation
	seen := make(map[string]bool)
	for _, root := range roots {
		root = filepath.Clean(userpath.Expand(root))
		if seen[root] {
			continue
		}
		seen[root] = true

		installs, err := scanRoot(root, opts.Products)
		if err != nil {
			return nil, err
		}
		found = append(found, installs...)
	}

	if opts.LatestOnly {
		found = latestPerProduct(found)
	}

	slices.SortStableFunc(found, func(a, b Installation) int {
		if c := b.Version.Compare(a.Version); c != 0 {
			return c
		}
		return strings.Compare(a.Product, b.Product)
	})
	return found, nil
}

func scanRoot(root string, products []string) ([]Installation, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read JetBrains config root %s: %w", root, err)
	}

	var installs []Installation
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		product, version, ok := SplitDirName(entry.Name())
		if !ok || !matchesProduct(product, products) {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		files := existingRecentFiles(dir)
		if len(files) == 0 {
			continue
		}

		installs = append(installs, Installation{
			ID:      entry.Name(),
			Product: product,
			Version: version,
			Dir:     dir,
			Files:   files,
		})
	}
	return installs, nil
}

func existingRecentFiles(dir string) []string {
	var files []string
	for _, name := range RecentFiles {
		p := filepath.Join(dir, "options", name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			files = append(files, p)
		}
	}
	return files
}

// SplitDirName splits a settings directory name such as "IntelliJIdea2024.1"
// into its product and version. ok is false for directories that do not
// follow the <Product><Version> convention.
func SplitDirName(name string) (product string, version *semver.Version, ok bool) {
	if name == "" || isDigit(name[0]) {
		return "", nil, false
	}
	for i := 1; i < len(name); i++ {
		if !isDigit(name[i]) {
			continue
		}
		v, err := semver.NewVersion(name[i:])
		if err != nil {
			// The first digit starts the version.
			return "", nil, false
		}
		return name[:i], v, true
	}
	return "", nil, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func matchesProduct(product string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	lower := strings.ToLower(product)
	for _, f := range filters {
		if strings.HasPrefix(lower, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

// latestPerProduct keeps the highest version per product, case-insensitively.
func latestPerProduct(installs []Installation) []Installation {
	best := make(map[string]int)
	var out []Installation
	for _, in := range installs {
		key := strings.ToLower(in.Product)
		i, ok := best[key]
		if !ok {
			best[key] = len(out)
			out = append(out, in)
			continue
		}
		if in.Version.GreaterThan(out[i].Version) {
			out[i] = in
		}
	}
	return out
}
