// Package frame implements the lexical environment model: a binding
// map with an optional parent, walked on lookup and written to only
// locally on Set. Frames are plain pointer-linked structs — Go's GC
// reclaims one as soon as nothing (no closure, no live call) still
// references it.
package frame

import "github.com/vellum-lang/vellum/internal/core"

// Frame is a mutable binding scope, parented to the frame that was
// current when it was created (for functions, the frame captured at
// definition time; for calls, a fresh child of that closure frame).
type Frame struct {
	bindings map[string]core.Value
	parent   *Frame
}

// New creates a frame with no parent — the root of a frame chain.
func New() *Frame {
	return &Frame{bindings: make(map[string]core.Value)}
}

// NewChild creates a frame parented at parent.
func NewChild(parent *Frame) *Frame {
	return &Frame{bindings: make(map[string]core.Value), parent: parent}
}

// Get walks this frame and its ancestors, returning the nearest
// binding for symbol.
func (f *Frame) Get(symbol string) (core.Value, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.bindings[symbol]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds symbol in THIS frame only: defining a name never reaches
// into an enclosing frame, and rebinding an existing local simply
// overwrites it.
func (f *Frame) Set(symbol string, v core.Value) {
	f.bindings[symbol] = v
}

// Parent returns the enclosing frame, or nil at the root.
func (f *Frame) Parent() core.Frame {
	if f.parent == nil {
		return nil
	}
	return f.parent
}
