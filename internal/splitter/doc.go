// Package splitter decides whether pressing Enter should split a quoted
// string literal in two, and computes the text that does it.
//
// The package never parses source code. It reads the scope stacks a grammar
// assigns to the cursor position and to the column just before it:
//
//	foo = 'bar|baz'
//
// becomes
//
//	foo = 'bar' +
//	  'baz'
//
// Eligibility requires both columns to sit inside the same kind of quoted
// string, the cursor to be strictly inside the line, and no suppressing
// scope (JSON documents, JSX attribute values) to be active.
//
// # JSX heuristics
//
// JSX attribute strings are detected by comparing the last index of a tag
// marker scope with the last index of the enclosing source scope. This is an
// approximation: a component passed as a prop of another component is not
// classified correctly.
//
// All functions are pure. Configuration arrives as a Config value resolved
// fresh for each invocation.
package splitter
