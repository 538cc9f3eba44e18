package vbrace

import (
	"pawnfmt/internal/chunk"
)

// record is one open virtual brace on the level stack.
type record struct {
	level  uint32       // Level carried by the opening chunk
	open   *chunk.Chunk // the VBraceOpen chunk
	parent chunk.Parent
	col    uint32 // line-start column of the construct that opened the region
}

// levelStack tracks currently open virtual braces at the scan cursor.
// An explicit slice stack instead of recursion keeps the scan robust
// against arbitrarily deep or malformed nesting.
type levelStack struct {
	recs []record
}

func (s *levelStack) push(r record) {
	s.recs = append(s.recs, r)
}

func (s *levelStack) pop() (record, bool) {
	if len(s.recs) == 0 {
		return record{}, false
	}
	r := s.recs[len(s.recs)-1]
	s.recs = s.recs[:len(s.recs)-1]
	return r, true
}

// top returns a pointer to the innermost record, or nil when empty.
func (s *levelStack) top() *record {
	if len(s.recs) == 0 {
		return nil
	}
	return &s.recs[len(s.recs)-1]
}

func (s *levelStack) depth() int {
	return len(s.recs)
}
