package route

import "httpengine/method"

// Builder is returned by Server.At(pattern) and lets call sites attach
// one handler per method, chained.
type Builder struct {
	routes  *Map
	pattern string
}

// NewBuilder returns a Builder that registers handlers for pattern into
// routes.
func NewBuilder(routes *Map, pattern string) *Builder {
	return &Builder{routes: routes, pattern: pattern}
}

func (b *Builder) on(m method.Method, h Handler) *Builder {
	b.routes.Insert(b.pattern, m, h)
	return b
}

func (b *Builder) Get(h Handler) *Builder     { return b.on(method.GET, h) }
func (b *Builder) Head(h Handler) *Builder    { return b.on(method.HEAD, h) }
func (b *Builder) Post(h Handler) *Builder    { return b.on(method.POST, h) }
func (b *Builder) Put(h Handler) *Builder     { return b.on(method.PUT, h) }
func (b *Builder) Delete(h Handler) *Builder  { return b.on(method.DELETE, h) }
func (b *Builder) Connect(h Handler) *Builder { return b.on(method.CONNECT, h) }
func (b *Builder) Options(h Handler) *Builder { return b.on(method.OPTIONS, h) }
func (b *Builder) Trace(h Handler) *Builder   { return b.on(method.TRACE, h) }
func (b *Builder) Patch(h Handler) *Builder   { return b.on(method.PATCH, h) }
