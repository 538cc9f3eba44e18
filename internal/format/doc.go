// Package format turns a normalized chunk stream back into text. The
// emitter is a passthrough: real chunks are copied from the original source
// together with the whitespace between them, virtual chunks are zero-width
// and produce nothing unless semicolon materialization is enabled.
package format
