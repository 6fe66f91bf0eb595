// Package version parses and renders the HTTP/MAJOR.MINOR version token.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the decimal major.minor pair carried by every request and
// status line. Kept as two ints rather than a float so the "one
// fractional digit" shape survives round-tripping exactly.
type Version struct {
	Major int
	Minor int
}

// HTTP11 is the only version this engine speaks.
var HTTP11 = Version{1, 1}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Parse accepts either "HTTP/1.1" or the bare "1.1" form.
func Parse(s string) (Version, error) {
	s = strings.TrimPrefix(s, "HTTP/")

	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, fmt.Errorf("malformed http version %q", s)
	}

	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("malformed http version %q: %w", s, err)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, fmt.Errorf("malformed http version %q: %w", s, err)
	}

	return Version{Major: maj, Minor: min}, nil
}
