package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkInstall creates root/id/options with the given recent files.
func mkInstall(t *testing.T, root, id string, files ...string) string {
	t.Helper()
	opts := filepath.Join(root, id, "options")
	require.NoError(t, os.MkdirAll(opts, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(opts, f), []byte("<application/>"), 0o644))
	}
	return filepath.Join(root, id)
}

func ids(installs []Installation) []string {
	out := make([]string, len(installs))
	for i, in := range installs {
		out[i] = in.ID
	}
	return out
}

func TestSplitDirName(t *testing.T) {
	tests := []struct {
		name        string
		wantProduct string
		wantVersion string
		wantOK      bool
	}{
		{"GoLand2024.2", "GoLand", "2024.2.0", true},
		{"IntelliJIdea2024.1", "IntelliJIdea", "2024.1.0", true},
		{"PyCharmCE2023.3", "PyCharmCE", "2023.3.0", true},
		{"Rider2024.2.1", "Rider", "2024.2.1", true},
		{"consentOptions", "", "", false},
		{"2024.1", "", "", false},
		{"GoLand2x", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, v, ok := SplitDirName(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantProduct, product)
			if tt.wantOK {
				require.NotNil(t, v)
				assert.Equal(t, tt.wantVersion, v.String())
			} else {
				assert.Nil(t, v)
			}
		})
	}
}

func TestLocate_FindsRecentFiles(t *testing.T) {
	root := t.TempDir()
	dir := mkInstall(t, root, "GoLand2024.2", "recentProjects.xml", "recentProjectDirectories.xml")

	got, err := Locate(Options{Roots: []string{root}})
	require.NoError(t, err)
	require.Len(t, got, 1)

	in := got[0]
	assert.Equal(t, "GoLand2024.2", in.ID)
	assert.Equal(t, "GoLand", in.Product)
	assert.Equal(t, "2024.2.0", in.Version.String())
	assert.Equal(t, dir, in.Dir)
	assert.Equal(t, []string{
		filepath.Join(dir, "options", "recentProjects.xml"),
		filepath.Join(dir, "options", "recentProjectDirectories.xml"),
	}, in.Files)
}

func TestLocate_SkipsUnrelatedEntries(t *testing.T) {
	root := t.TempDir()
	mkInstall(t, root, "GoLand2024.2", "recentProjects.xml")
	mkInstall(t, root, "WebStorm2024.1") // no recent files
	mkInstall(t, root, "consentOptions", "recentProjects.xml")
	require.NoError(t, os.WriteFile(filepath.Join(root, "PhpStorm2024.1"), nil, 0o644))

	// A directory in place of the file is not reported.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "CLion2024.1", "options", "recentProjects.xml"), 0o755))

	got, err := Locate(Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.Equal(t, []string{"GoLand2024.2"}, ids(got))
}

func TestLocate_Ordering(t *testing.T) {
	root := t.TempDir()
	mkInstall(t, root, "GoLand2023.3", "recentProjects.xml")
	mkInstall(t, root, "PyCharm2024.2", "recentProjects.xml")
	mkInstall(t, root, "GoLand2024.2", "recentProjects.xml")
	mkInstall(t, root, "CLion2024.2", "recentProjects.xml")

	got, err := Locate(Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.Equal(t, []string{"CLion2024.2", "GoLand2024.2", "PyCharm2024.2", "GoLand2023.3"}, ids(got))
}

func TestLocate_ProductFilter(t *testing.T) {
	root := t.TempDir()
	mkInstall(t, root, "GoLand2024.2", "recentProjects.xml")
	mkInstall(t, root, "PyCharm2024.2", "recentProjects.xml")
	mkInstall(t, root, "PyCharmCE2024.1", "recentProjects.xml")

	tests := []struct {
		name     string
		products []string
		want     []string
	}{
		{"no filter", nil, []string{"GoLand2024.2", "PyCharm2024.2", "PyCharmCE2024.1"}},
		{"exact", []string{"GoLand"}, []string{"GoLand2024.2"}},
		{"case insensitive prefix", []string{"pycharm"}, []string{"PyCharm2024.2", "PyCharmCE2024.1"}},
		{"several", []string{"go", "pycharmce"}, []string{"GoLand2024.2", "PyCharmCE2024.1"}},
		{"no match", []string{"rider"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(Options{Roots: []string{root}, Products: tt.products})
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestLocate_LatestOnly(t *testing.T) {
	root := t.TempDir()
	mkInstall(t, root, "GoLand2023.3", "recentProjects.xml")
	mkInstall(t, root, "GoLand2024.2", "recentProjects.xml")
	mkInstall(t, root, "GoLand2024.1", "recentProjects.xml")
	mkInstall(t, root, "PyCharm2022.1", "recentProjects.xml")

	got, err := Locate(Options{Roots: []string{root}, LatestOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"GoLand2024.2", "PyCharm2022.1"}, ids(got))

	all, err := Locate(Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLocate_MultipleRoots(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	mkInstall(t, a, "GoLand2024.1", "recentProjects.xml")
	mkInstall(t, b, "GoLand2024.2", "recentProjects.xml")

	got, err := Locate(Options{Roots: []string{a, b, a, filepath.Join(a, "missing")}})
	require.NoError(t, err)
	assert.Equal(t, []string{"GoLand2024.2", "GoLand2024.1"}, ids(got))

	latest, err := Locate(Options{Roots: []string{a, b}, LatestOnly: true})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, filepath.Join(b, "GoLand2024.2"), latest[0].Dir)
}

func TestLocate_MissingRootIsEmpty(t *testing.T) {
	got, err := Locate(Options{Roots: []string{filepath.Join(t.TempDir(), "nope")}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocate_RootIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, nil, 0o644))

	_, err := Locate(Options{Roots: []string{f}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read JetBrains config root")
}

func TestLocate_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	mkInstall(t, filepath.Join(home, "jb"), "Rider2024.2", "recentProjectDirectories.xml")

	got, err := Locate(Options{Roots: []string{"~/jb"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(home, "jb", "Rider2024.2"), got[0].Dir)
}

func TestDefaultRoots(t *testing.T) {
	cfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", cfg)

	roots, err := DefaultRoots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "JetBrains", filepath.Base(roots[0]))
}
