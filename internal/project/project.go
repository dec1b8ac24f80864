package project

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrParse matches any *ParseError via errors.Is.
	ErrParse = errors.New("malformed recent projects file")

	ErrEmptyProjectPath = errors.New("project path cannot be empty")
)

// Project is one entry of an IDE's recently opened projects.
type Project struct {
	// Name is the display label: the .idea/.name override or the last path segment.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Path is the project root as stored by the IDE, with $USER_HOME$ replaced by ~.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Icon is the first .idea/icon.* file, or nil when the project has none.
	Icon *string `json:"icon" yaml:"icon" toml:"icon,omitempty"`

	// Score is reserved for consumer-side ranking and is always created as 0.
	Score int `json:"score" yaml:"score" toml:"score"`
}

// HasIcon reports whether an icon file was found.
func (p Project) HasIcon() bool {
	return p.Icon != nil
}

// ParseError reports a recent projects file that exists but is not
// well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse recent projects file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
