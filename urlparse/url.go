// Package urlparse implements the narrow http://host:port/path grammar
// the stub client needs (spec §4.10) — not a general URL parser.
package urlparse

import (
	"fmt"
	"net"
	"strings"
)

// URL is a resolved host:port address plus the request path.
type URL struct {
	Address string // "host:port", ready for net.Dial
	Path    string
}

const scheme = "http://"

// Parse accepts "http://host:port" or "http://host:port/path...". Any
// other scheme, or a missing host/port, is rejected.
func Parse(s string) (URL, error) {
	if !strings.HasPrefix(strings.ToLower(s), scheme) {
		return URL{}, fmt.Errorf("expected url to begin with %q", scheme)
	}
	rest := s[len(scheme):]

	hostPort, path, _ := strings.Cut(rest, "/")
	if hostPort == "" {
		return URL{}, fmt.Errorf("invalid address passed, expected host:port")
	}

	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return URL{}, fmt.Errorf("invalid address passed: %w", err)
	}
	if host == "" || port == "" {
		return URL{}, fmt.Errorf("invalid address passed, expected host:port")
	}

	if path == "" {
		path = "/"
	} else {
		path = "/" + path
	}

	return URL{Address: hostPort, Path: path}, nil
}
