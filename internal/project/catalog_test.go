package project

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_FirstWins(t *testing.T) {
	c := NewCatalog()

	added := c.Add(
		Project{Name: "api", Path: "~/api"},
		Project{Name: "web", Path: "~/web"},
	)
	assert.Equal(t, 2, added)

	added = c.Add(
		Project{Name: "API (renamed)", Path: "~/api"},
		Project{Name: "cli", Path: "~/cli"},
		Project{Name: "nameless"},
	)
	assert.Equal(t, 1, added)

	assert.Equal(t, 3, c.Len())
	got, ok := c.Get("~/api")
	assert.True(t, ok)
	assert.Equal(t, "api", got.Name)

	_, ok = c.Get("~/missing")
	assert.False(t, ok)

	list := c.List()
	assert.Equal(t, []string{"~/api", "~/web", "~/cli"}, paths(list))

	// List returns a copy
	list[0].Name = "mutated"
	got, _ = c.Get("~/api")
	assert.Equal(t, "api", got.Name)
}

func TestCatalog_ConcurrentAdd(t *testing.T) {
	c := NewCatalog()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Add(Project{Path: fmt.Sprintf("/p/%d", j)})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
