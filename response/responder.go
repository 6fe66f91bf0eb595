package response

import "httpengine/status"

// Responder is anything a handler can return. §4.9 lists the supported
// shapes; rather than modeling them as a closed sum type, each shape
// gets its own small Responder implementation and handlers are written
// against the free helpers below (the alternative §9 explicitly
// sanctions: "require handlers to return Response directly and provide
// free helpers text(...), bytes(...), empty()").
type Responder interface {
	IntoResponse() (Response, error)
}

// IntoResponse makes Response itself a Responder (the identity case).
func (r Response) IntoResponse() (Response, error) { return r, nil }

// Text wraps a string body with status 200 and Content-Type text/plain.
type Text string

func (t Text) IntoResponse() (Response, error) {
	return NewBuilder().Header("Content-Type", "text/plain").Body([]byte(t)).Build(), nil
}

// Bytes wraps a raw body with status 200.
type Bytes []byte

func (b Bytes) IntoResponse() (Response, error) {
	return NewBuilder().Body(b).Build(), nil
}

// EmptyResponder produces the documented default: 200 OK, empty body,
// Content-Length: 0.
type EmptyResponder struct{}

// Empty is the unit return shape: empty body, default status.
func Empty() EmptyResponder { return EmptyResponder{} }

func (EmptyResponder) IntoResponse() (Response, error) {
	return NewBuilder().Build(), nil
}

// Result wraps a fallible byte body: on success it behaves like Bytes;
// on failure it becomes a 400 with the error's message as the body,
// per §4.9 and §7's default handler-return adaptor.
type Result struct {
	Value []byte
	Err   error
}

// FromResult builds a Result responder from a (bytes, error) pair, the
// fallible-bytes handler return shape.
func FromResult(value []byte, err error) Result {
	return Result{Value: value, Err: err}
}

func (r Result) IntoResponse() (Response, error) {
	if r.Err != nil {
		return NewBuilder().Status(status.BadRequest).Body([]byte(r.Err.Error())).Build(), nil
	}
	return NewBuilder().Body(r.Value).Build(), nil
}
