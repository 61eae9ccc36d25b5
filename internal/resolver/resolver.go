// Where: internal/resolver/resolver.go
// What: Upward directory search anchored on a marker.
// Why: Share one walk between every caller that needs a root directory.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMarkerNotFound is returned when the filesystem root was reached
// without any directory satisfying the marker.
var ErrMarkerNotFound = errors.New("marker not found")

// NotFoundError describes a failed resolution.
type NotFoundError struct {
	Start  string
	Marker Marker
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s in %s or any parent directory", ErrMarkerNotFound, e.Marker, e.Start)
}

func (e *NotFoundError) Unwrap() error {
	return ErrMarkerNotFound
}

// Match is a directory that satisfied a marker.
type Match struct {
	Dir   string
	Entry string
}

// Path returns the absolute path of the matched entry.
func (m Match) Path() string {
	return filepath.Join(m.Dir, m.Entry)
}

// Resolve returns the nearest directory at or above start that satisfies
// marker.
func Resolve(start string, marker Marker) (string, error) {
	match, err := Find(start, marker)
	if err != nil {
		return "", err
	}
	return match.Dir, nil
}

// Find walks upward from start and returns the first directory satisfying
// marker together with the matched entry.
func Find(start string, marker Marker) (Match, error) {
	if err := marker.Validate(); err != nil {
		return Match{}, err
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return Match{}, fmt.Errorf("resolve start directory %s: %w", start, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return Match{}, fmt.Errorf("start directory: %w", err)
	}

	dir := filepath.Clean(abs)
	for {
		entry, ok, err := marker.Matches(dir)
		if err != nil {
			return Match{}, err
		}
		if ok {
			return Match{Dir: dir, Entry: entry}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Match{}, &NotFoundError{Start: abs, Marker: marker}
}
