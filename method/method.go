// Package method defines the fixed set of HTTP/1.1 request methods this
// engine understands.
package method

import "fmt"

// Method is one of the nine request methods the parser accepts. Anything
// else fails to parse.
type Method string

const (
	GET     Method = "GET"
	HEAD    Method = "HEAD"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	CONNECT Method = "CONNECT"
	OPTIONS Method = "OPTIONS"
	TRACE   Method = "TRACE"
	PATCH   Method = "PATCH"
)

var known = map[Method]struct{}{
	GET: {}, HEAD: {}, POST: {}, PUT: {}, DELETE: {},
	CONNECT: {}, OPTIONS: {}, TRACE: {}, PATCH: {},
}

// Parse validates s against the supported method token set.
func Parse(s string) (Method, error) {
	m := Method(s)
	if _, ok := known[m]; !ok {
		return "", fmt.Errorf("unknown http method %q", s)
	}
	return m, nil
}

func (m Method) String() string { return string(m) }
