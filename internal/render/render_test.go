package render

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/fyrsmithlabs/jbrecent/internal/locator"
	"github.com/fyrsmithlabs/jbrecent/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string { return &s }

func sampleProjects() []project.Project {
	return []project.Project{
		{Name: "api", Path: "~/code/api", Icon: strPtr("/tmp/api/.idea/icon.svg")},
		{Name: "web", Path: "/srv/web"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", Table, false},
		{"JSON", JSON, false},
		{" yaml ", YAML, false},
		{"Toml", TOML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, JSON, sampleProjects()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "api", got[0]["name"])
	assert.Equal(t, "~/code/api", got[0]["path"])
	assert.Equal(t, "/tmp/api/.idea/icon.svg", got[0]["icon"])
	assert.EqualValues(t, 0, got[0]["score"])

	icon, present := got[1]["icon"]
	assert.True(t, present, "icon key must be present")
	assert.Nil(t, icon)
	assert.True(t, strings.Contains(buf.String(), "\n  {"), "output should be indented")
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, JSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, YAML, sampleProjects()))

	var got []project.Project
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "api", got[0].Name)
	require.NotNil(t, got[0].Icon)
	assert.Equal(t, "/tmp/api/.idea/icon.svg", *got[0].Icon)
	assert.Nil(t, got[1].Icon)
	assert.Contains(t, buf.String(), "icon: null")
}

func TestRender_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, TOML, sampleProjects()))

	var got struct {
		Projects []project.Project `toml:"projects"`
	}
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err, buf.String())
	require.Len(t, got.Projects, 2)
	assert.Equal(t, "api", got.Projects[0].Name)
	require.NotNil(t, got.Projects[0].Icon)
	assert.Equal(t, "/tmp/api/.idea/icon.svg", *got.Projects[0].Icon)
	assert.Equal(t, "/srv/web", got.Projects[1].Path)
	assert.Nil(t, got.Projects[1].Icon)
	assert.Contains(t, buf.String(), "[[projects]]")
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Table, sampleProjects()))

	out := buf.String()
	for _, want := range []string{"NAME", "PATH", "ICON", "api", "~/code/api", "icon.svg", "web", "/srv/web"} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var webLine string
	for _, l := range lines {
		if strings.Contains(l, "/srv/web") {
			webLine = l
		}
	}
	require.NotEmpty(t, webLine)
	assert.Contains(t, webLine, noIcon)
}

func TestRender_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Table, []project.Project{}))
	assert.Equal(t, "No recent projects found\n", buf.String())
}

func TestRender_TableShortensIcon(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	icon := filepath.Join(home, "code", "api", ".idea", "icon.png")
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Table, []project.Project{{Name: "api", Path: "~/code/api", Icon: &icon}}))
	assert.NotContains(t, buf.String(), home)
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("csv"), sampleProjects())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}

func sampleInstallations() []locator.Installation {
	return []locator.Installation{
		{
			ID:      "GoLand2024.2",
			Product: "GoLand",
			Version: semver.MustParse("2024.2"),
			Dir:     "/cfg/GoLand2024.2",
			Files: []string{
				"/cfg/GoLand2024.2/options/recentProjects.xml",
				"/cfg/GoLand2024.2/options/recentProjectDirectories.xml",
			},
		},
	}
}

func TestInstallations_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Installations(&buf, JSON, sampleInstallations()))

	var got []installationView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "GoLand2024.2", got[0].ID)
	assert.Equal(t, "GoLand", got[0].Product)
	assert.Equal(t, "2024.2", got[0].Version)
	assert.Len(t, got[0].Files, 2)
}

func TestInstallations_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Installations(&buf, YAML, sampleInstallations()))
	assert.Contains(t, buf.String(), "product: GoLand")
	assert.Contains(t, buf.String(), `version: "2024.2"`)
}

func TestInstallations_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Installations(&buf, TOML, sampleInstallations()))
	assert.Contains(t, buf.String(), "[[installations]]")
	assert.Contains(t, buf.String(), `product = "GoLand"`)
}

func TestInstallations_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Installations(&buf, Table, sampleInstallations()))

	out := buf.String()
	assert.Contains(t, out, "PRODUCT")
	assert.Contains(t, out, "recentProjects.xml")
	assert.Contains(t, out, "recentProjectDirectories.xml")
	assert.Contains(t, out, "2024.2")
}

func TestInstallations_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Installations(&buf, Table, nil))
	assert.Equal(t, "No JetBrains installations found\n", buf.String())

	buf.Reset()
	require.NoError(t, Installations(&buf, JSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}
