// Package render writes projects and installations as a table, JSON, YAML or TOML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fyrsmithlabs/jbrecent/internal/config"
	"github.com/fyrsmithlabs/jbrecent/internal/locator"
	"github.com/fyrsmithlabs/jbrecent/internal/project"
	"github.com/fyrsmithlabs/jbrecent/internal/userpath"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	Table Format = config.FormatTable
	JSON  Format = config.FormatJSON
	YAML  Format = config.FormatYAML
	TOML  Format = config.FormatTOML
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Table, JSON, YAML, TOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, yaml or toml)", s)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const noIcon = "-"

// Render writes projects to w.
func Render(w io.Writer, format Format, projects []project.Project) error {
	if projects == nil {
		projects = []project.Project{}
	}

	switch format {
	case JSON:
		return writeJSON(w, projects)
	case YAML:
		return writeYAML(w, projects)
	case TOML:
		// TOML documents are tables, so the list needs a key.
		return writeTOML(w, map[string]any{"projects": projects})
	case Table:
		if len(projects) == 0 {
			_, err := fmt.Fprintln(w, "No recent projects found")
			return err
		}
		rows := make([][]string, 0, len(projects))
		for _, p := range projects {
			icon := noIcon
			if p.Icon != nil {
				icon = userpath.Shorten(*p.Icon)
			}
			rows = append(rows, []string{p.Name, p.Path, icon})
		}
		return writeTable(w, []string{"NAME", "PATH", "ICON"}, rows, 2)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// installationView is the serialized form of a locator.Installation.
type installationView struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Product string   `json:"product" yaml:"product" toml:"product"`
	Version string   `json:"version" yaml:"version" toml:"version"`
	Dir     string   `json:"dir" yaml:"dir" toml:"dir"`
	Files   []string `json:"files" yaml:"files" toml:"files"`
}

// Installations writes discovered IDE installations to w.
func Installations(w io.Writer, format Format, installs []locator.Installation) error {
	views := make([]installationView, 0, len(installs))
	for _, in := range installs {
		v := installationView{
			ID:      in.ID,
			Product: in.Product,
			Dir:     in.Dir,
			Files:   in.Files,
		}
		if in.Version != nil {
			v.Version = in.Version.Original()
		}
		if v.Files == nil {
			v.Files = []string{}
		}
		views = append(views, v)
	}

	switch format {
	case JSON:
		return writeJSON(w, views)
	case YAML:
		return writeYAML(w, views)
	case TOML:
		return writeTOML(w, map[string]any{"installations": views})
	case Table:
		if len(views) == 0 {
			_, err := fmt.Fprintln(w, "No JetBrains installations found")
			return err
		}
		var rows [][]string
		for _, v := range views {
			for _, f := range v.Files {
				rows = append(rows, []string{v.Product, v.Version, userpath.Shorten(f)})
			}
		}
		return writeTable(w, []string{"PRODUCT", "VERSION", "FILE"}, rows, -1)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeTable renders rows with a header. dimCol, when >= 0, is drawn muted.
func writeTable(w io.Writer, headers []string, rows [][]string, dimCol int) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == dimCol:
				return dimStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func writeTOML(w io.Writer, v any) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}
