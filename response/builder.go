package response

import (
	"strconv"

	"httpengine/body"
	"httpengine/headers"
	"httpengine/status"
	"httpengine/version"
)

// Builder constructs a Response while enforcing the invariant in §4.5:
// every response carries Content-Length == len(body), except 204 No
// Content, which carries neither a body nor that header.
type Builder struct {
	status  status.Status
	headers headers.Headers
	body    []byte
}

// NewBuilder starts from the default 200 OK header with an empty body.
func NewBuilder() *Builder {
	return &Builder{status: status.OK, headers: headers.New()}
}

func (b *Builder) Status(s status.Status) *Builder {
	b.status = s
	return b
}

func (b *Builder) Header(name, value string) *Builder {
	b.headers.Set(name, value)
	return b
}

func (b *Builder) Body(content []byte) *Builder {
	b.body = content
	return b
}

// Build finalizes the Response, setting or omitting Content-Length per
// the §4.5 invariant.
func (b *Builder) Build() Response {
	h := b.headers
	content := b.body

	if b.status.Code == status.NoContent.Code {
		h.Delete("Content-Length")
		content = nil
	} else {
		h.Override("Content-Length", strconv.Itoa(len(content)))
	}

	if content == nil {
		content = []byte{}
	}

	return Response{
		Header: ResponseHeader{Version: version.HTTP11, Status: b.status, Headers: h},
		Body:   body.New(content),
	}
}
