package project

import (
	"strings"
)

// Component names that have held recent project paths across IDE releases.
const (
	// ComponentRecentProjects is the current manager component.
	ComponentRecentProjects = "RecentProjectsManager"

	// ComponentRecentDirectoryProjects is the older manager used by directory-based IDEs.
	ComponentRecentDirectoryProjects = "RecentDirectoryProjectsManager"
)

// HomePlaceholder is the token IDEs write in place of the user's home directory.
const HomePlaceholder = "$USER_HOME$"

// Shape is the storage layout a component uses for its paths.
type Shape string

const (
	// ShapeList stores paths as option/@value under option[@name=recentPaths]/list.
	ShapeList Shape = "list"

	// ShapeMap stores paths as entry/@key under option[@name=additionalInfo]/map.
	ShapeMap Shape = "map"
)

// Source is one location inside a recent projects file that may hold paths.
type Source struct {
	Component string
	Shape     Shape
}

// Sources lists every probed location in precedence order: list storage
// before map storage, and within each shape the current manager before the
// older one. New schema variants are added here.
var Sources = []Source{
	{Component: ComponentRecentProjects, Shape: ShapeList},
	{Component: ComponentRecentDirectoryProjects, Shape: ShapeList},
	{Component: ComponentRecentProjects, Shape: ShapeMap},
	{Component: ComponentRecentDirectoryProjects, Shape: ShapeMap},
}

// String returns e.g. "RecentProjectsManager/list".
func (s Source) String() string {
	return s.Component + "/" + string(s.Shape)
}

// layout returns the option name, container element and item element for the shape.
func (s Source) layout() (option, container, item string) {
	if s.Shape == ShapeMap {
		return "additionalInfo", "map", "entry"
	}
	return "recentPaths", "list", "option"
}

// collect returns the raw paths stored at this source, in document order.
// Only the first component with a matching name is consulted.
func (s Source) collect(root *xmlNode) []string {
	component := root.findDescendant("component", s.Component)
	if component == nil {
		return nil
	}

	optionName, container, item := s.layout()

	var paths []string
	for _, opt := range component.childrenNamed("option") {
		if v, _ := opt.attr("name"); v != optionName {
			continue
		}
		for _, c := range opt.childrenNamed(container) {
			for _, it := range c.childrenNamed(item) {
				if p, ok := it.pathAttr(); ok {
					paths = append(paths, p)
				}
			}
		}
	}
	return paths
}

// normalizePath replaces the IDE home placeholder with the portable ~ marker.
func normalizePath(raw string) string {
	return strings.ReplaceAll(raw, HomePlaceholder, "~")
}

// uniquePaths collapses paths to their first occurrences, preserving order.
func uniquePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))

	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}

	return result
}
