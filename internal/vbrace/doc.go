// Package vbrace normalizes brace-and-semicolon-optional source into a
// fully delimited chunk stream. It synthesizes zero-width virtual braces
// around unbraced function and control-construct bodies and virtual
// semicolons at layout-implied statement ends, so every later formatting
// pass can assume explicit delimiters everywhere.
//
// Passes, in order: Prescan marks unbraced function bodies, Insert walks
// the stream adding virtual delimiters, ScrubVSemis marks the spurious
// virtual semicolons inert. All passes are forward-only and insertion-only;
// no chunk is ever removed.
package vbrace
