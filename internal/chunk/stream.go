package chunk

// Stream is the ordered chunk sequence every pass reads and extends in
// place. Insertion is O(1) at any cursor; chunks are never removed, so
// stream positions observed by one pass stay valid for the next.
type Stream struct {
	head, tail *Chunk
	n          int
}

// NewStream creates an empty stream.
func NewStream() *Stream {
	return &Stream{}
}

// First returns the head chunk, or nil for an empty stream.
func (s *Stream) First() *Chunk { return s.head }

// Last returns the tail chunk, or nil for an empty stream.
func (s *Stream) Last() *Chunk { return s.tail }

// Len returns the number of chunks in the stream.
func (s *Stream) Len() int { return s.n }

// Append links c at the end of the stream and returns it.
func (s *Stream) Append(c *Chunk) *Chunk {
	c.prev = s.tail
	c.next = nil
	if s.tail != nil {
		s.tail.next = c
	} else {
		s.head = c
	}
	s.tail = c
	s.n++
	return c
}

// InsertAfter links c immediately after ref and returns c. All four link
// updates complete before the method returns; the engine is single-threaded,
// so no pass can observe a half-linked stream.
func (s *Stream) InsertAfter(ref, c *Chunk) *Chunk {
	c.prev = ref
	c.next = ref.next
	if ref.next != nil {
		ref.next.prev = c
	} else {
		s.tail = c
	}
	ref.next = c
	s.n++
	return c
}

// InsertBefore links c immediately before ref and returns c.
func (s *Stream) InsertBefore(ref, c *Chunk) *Chunk {
	c.next = ref
	c.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = c
	} else {
		s.head = c
	}
	ref.prev = c
	s.n++
	return c
}
