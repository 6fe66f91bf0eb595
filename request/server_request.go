package request

import "strings"

// ServerRequest wraps a parsed Request with the route pattern that
// matched it and the connection's peer address, so handlers can pull
// named path segments and client info without threading extra
// parameters through every signature.
type ServerRequest struct {
	Request      *Request
	RoutePattern string
	PeerAddr     string
}

// Param extracts the value of a named wildcard segment ("{name}") from
// the request target, by walking RoutePattern and the target in lock
// step. Returns ok=false if name isn't a wildcard segment of the
// matched route.
func (sr ServerRequest) Param(name string) (value string, ok bool) {
	pattern := strings.Split(sr.RoutePattern, "/")
	target := strings.Split(sr.Request.Header.RequestLine.Target, "/")

	if len(pattern) != len(target) {
		return "", false
	}

	want := "{" + name + "}"
	for i, seg := range pattern {
		if seg == want {
			return target[i], true
		}
	}
	return "", false
}
