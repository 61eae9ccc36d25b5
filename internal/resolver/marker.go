// Where: internal/resolver/marker.go
// What: Marker definitions for directory resolution.
// Why: Treat exact file names and glob patterns through one matching contract.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidMarker is returned when a marker cannot be evaluated.
var ErrInvalidMarker = errors.New("invalid marker")

// MarkerKind selects how a Marker is tested against a directory.
type MarkerKind int

const (
	// MarkerFile tests for an entry with an exact name.
	MarkerFile MarkerKind = iota
	// MarkerGlob tests for at least one entry matching a pattern.
	MarkerGlob
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerFile:
		return "file"
	case MarkerGlob:
		return "glob"
	default:
		return fmt.Sprintf("MarkerKind(%d)", int(k))
	}
}

// Marker signals that a directory is a meaningful root.
type Marker struct {
	Kind    MarkerKind
	Pattern string
}

// File returns a marker satisfied by an entry named name.
func File(name string) Marker {
	return Marker{Kind: MarkerFile, Pattern: name}
}

// Glob returns a marker satisfied by any entry of the directory itself
// matching pattern. Patterns never reach into subdirectories, so `**` and
// path separators are rejected by Validate.
func Glob(pattern string) Marker {
	return Marker{Kind: MarkerGlob, Pattern: pattern}
}

// ParseMarker builds a marker from user input. Input containing glob
// meta characters becomes a glob marker.
func ParseMarker(value string) (Marker, error) {
	value = strings.TrimSpace(value)
	var marker Marker
	if strings.ContainsAny(value, "*?[{") {
		marker = Glob(value)
	} else {
		marker = File(value)
	}
	if err := marker.Validate(); err != nil {
		return Marker{}, err
	}
	return marker, nil
}

// Validate reports whether the marker can be evaluated.
func (m Marker) Validate() error {
	if strings.TrimSpace(m.Pattern) == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidMarker)
	}
	if strings.ContainsRune(m.Pattern, '/') || strings.ContainsRune(m.Pattern, filepath.Separator) {
		return fmt.Errorf("%w: %q must name a single directory entry", ErrInvalidMarker, m.Pattern)
	}
	switch m.Kind {
	case MarkerFile:
		if m.Pattern == "." || m.Pattern == ".." {
			return fmt.Errorf("%w: %q is not a file name", ErrInvalidMarker, m.Pattern)
		}
		return nil
	case MarkerGlob:
		if strings.Contains(m.Pattern, "**") {
			return fmt.Errorf("%w: %q matches below the directory", ErrInvalidMarker, m.Pattern)
		}
		if !doublestar.ValidatePattern(m.Pattern) {
			return fmt.Errorf("%w: bad glob pattern %q", ErrInvalidMarker, m.Pattern)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidMarker, m.Kind)
	}
}

func (m Marker) String() string {
	return fmt.Sprintf("%s %q", m.Kind, m.Pattern)
}

// Matches tests dir against the marker. For globs the lexically first match
// is returned as entry.
func (m Marker) Matches(dir string) (string, bool, error) {
	switch m.Kind {
	case MarkerFile:
		if _, err := os.Stat(filepath.Join(dir, m.Pattern)); err == nil {
			return m.Pattern, true, nil
		}
		return "", false, nil
	case MarkerGlob:
		matches, err := doublestar.Glob(os.DirFS(dir), m.Pattern)
		if err != nil {
			return "", false, fmt.Errorf("%w: %v", ErrInvalidMarker, err)
		}
		if len(matches) == 0 {
			return "", false, nil
		}
		first := matches[0]
		for _, match := range matches[1:] {
			if match < first {
				first = match
			}
		}
		return first, true, nil
	default:
		return "", false, fmt.Errorf("%w: unknown kind %s", ErrInvalidMarker, m.Kind)
	}
}
