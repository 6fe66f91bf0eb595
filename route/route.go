// Package route implements the route table and its wildcard-aware
// matching (spec §4.6).
package route

import (
	"strings"

	"httpengine/method"
	"httpengine/request"
	"httpengine/response"
)

// Handler is a function taking a ServerRequest and producing anything
// convertible to a Response.
type Handler func(request.ServerRequest) response.Responder

// Key is a route pattern split into its '/'-separated segments. A
// segment of the form "{name}" is a wildcard matching any single
// non-empty segment.
type Key struct {
	Pattern  string
	segments []string
}

// NewKey splits pattern on '/' up front so Equal doesn't re-split on
// every comparison.
func NewKey(pattern string) Key {
	return Key{Pattern: pattern, segments: strings.Split(pattern, "/")}
}

func isWildcard(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// Equal implements §4.6's RouteKey equality: segment counts must match;
// aligned segments match if either is a wildcard and the other is
// non-empty, else they must be case-insensitively equal literals.
func (k Key) Equal(other Key) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}
	for i, seg := range k.segments {
		o := other.segments[i]
		if isWildcard(seg) || isWildcard(o) {
			if seg == "" || o == "" {
				return false
			}
			continue
		}
		if !strings.EqualFold(seg, o) {
			return false
		}
	}
	return true
}

type binding struct {
	key      Key
	handlers map[method.Method]Handler
}

// Map is an ordered sequence of (Key, method->Handler) bindings. An
// ordered container rather than a hash map because Key equality is
// semantic (wildcard-aware), not syntactic; first match wins.
type Map struct {
	routes []*binding
}

// NewMap returns an empty route table.
func NewMap() *Map { return &Map{} }

// Insert appends (pattern, {method: handler}) if pattern is new,
// otherwise adds the method binding to the existing entry.
func (m *Map) Insert(pattern string, meth method.Method, h Handler) {
	key := NewKey(pattern)

	for _, b := range m.routes {
		if b.key.Equal(key) {
			b.handlers[meth] = h
			return
		}
	}

	m.routes = append(m.routes, &binding{
		key:      key,
		handlers: map[method.Method]Handler{meth: h},
	})
}

// Lookup does a linear, first-match-wins scan for the route whose Key
// matches target.
func (m *Map) Lookup(target string) (Key, map[method.Method]Handler, bool) {
	key := NewKey(target)
	for _, b := range m.routes {
		if b.key.Equal(key) {
			return b.key, b.handlers, true
		}
	}
	return Key{}, nil, false
}
