package archive

import "reflect"

// contextKey identifies a virtual base within one top-level call
type contextKey struct {
	call uint64
	base any
	typ  reflect.Type
}

// Context records which virtual bases were already processed during a
// top-level serialize or deserialize call. Pass it to NewContextSerializer /
// NewContextDeserializer; every call starts with no recorded bases. Not safe
// for concurrent use.
type Context struct {
	root    any
	call    uint64 // incremented for every top-level call
	visited map[contextKey]struct{}
}

// NewContext creates an empty context
func NewContext() *Context {
	return &Context{visited: make(map[contextKey]struct{})}
}

// Root returns the top-level object of the current call
func (c *Context) Root() any { return c.root }

// Visit records base as processed for the current call. It reports true if
// base was not recorded before, i.e. if the caller has to transfer it.
// base must be a pointer to the single storage location of the base.
func (c *Context) Visit(base any) bool {
	k := contextKey{call: c.call, base: base, typ: reflect.TypeOf(base)}
	if _, ok := c.visited[k]; ok {
		return false
	}
	c.visited[k] = struct{}{}
	return true
}

// Visited reports whether base was already processed for the current call
func (c *Context) Visited(base any) bool {
	_, ok := c.visited[contextKey{call: c.call, base: base, typ: reflect.TypeOf(base)}]
	return ok
}

// Len returns the number of recorded bases
func (c *Context) Len() int { return len(c.visited) }

// Reset forgets all recorded bases
func (c *Context) Reset() {
	c.root = nil
	clear(c.visited)
}

// begin starts a top-level call for root. Records of earlier calls never
// match the new call, the root value itself is not part of the key.
func (c *Context) begin(root any) {
	if c.visited == nil {
		c.visited = make(map[contextKey]struct{})
	}
	c.root = root
	c.call++
}
