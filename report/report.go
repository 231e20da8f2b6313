// Package report collects diagnostics during a parse. User-level mistakes are
// accumulated here so one pass over a file surfaces every problem; nothing in
// this package aborts anything.
package report

import (
	"fmt"

	"asm68k/token"
)

// Error is one diagnostic with the source position it refers to.
type Error struct {
	Pos     token.Location
	Message string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Errorf builds a located diagnostic.
func Errorf(pos token.Location, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Collector accumulates diagnostics in order of arrival. Append-only,
// single-writer.
type Collector struct {
	errs []*Error
}

// Add records an error. Plain errors are adopted without a position.
func (c *Collector) Add(err error) {
	if err == nil {
		return
	}
	if e, ok := err.(*Error); ok {
		c.errs = append(c.errs, e)
		return
	}
	c.errs = append(c.errs, &Error{Pos: token.None, Message: err.Error()})
}

// Errorf records a located diagnostic.
func (c *Collector) Errorf(pos token.Location, format string, args ...any) {
	c.errs = append(c.errs, Errorf(pos, format, args...))
}

// Errors returns all collected diagnostics in arrival order.
func (c *Collector) Errors() []*Error {
	return c.errs
}

// HasErrors reports whether anything was collected.
func (c *Collector) HasErrors() bool {
	return len(c.errs) > 0
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.errs)
}
