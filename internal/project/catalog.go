package project

import (
	"sync"
)

// Catalog merges projects extracted from several recent projects files.
//
// Projects are keyed by Path: the first record added for a path wins and
// later ones are dropped. List returns projects in insertion order.
type Catalog struct {
	mu       sync.RWMutex
	projects []Project
	byPath   map[string]int // path -> index into projects
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byPath: make(map[string]int),
	}
}

// Add appends projects whose paths are not yet present and returns how
// many were added.
func (c *Catalog) Add(projects ...Project) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, p := range projects {
		if p.Path == "" {
			continue
		}
		if _, ok := c.byPath[p.Path]; ok {
			continue
		}
		c.byPath[p.Path] = len(c.projects)
		c.projects = append(c.projects, p)
		added++
	}
	return added
}

// Get returns the project stored for path.
func (c *Catalog) Get(path string) (Project, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byPath[path]
	if !ok {
		return Project{}, false
	}
	return c.projects[i], true
}

// List returns a copy of all projects in insertion order.
func (c *Catalog) List() []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Len returns the number of distinct projects.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.projects)
}
