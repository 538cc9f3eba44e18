// Package chunk defines the token stream shared by every formatting pass.
// Invariants:
//   - Chunk.Text is a slice of the original source for real chunks and ""
//     for virtual ones (virtual chunks are zero-width and never emitted).
//   - Chunk.Span matches Text exactly for real chunks; virtual chunks carry
//     an empty span anchored at their insertion point.
//   - The stream is a strictly ordered doubly linked sequence; chunks are
//     inserted but never removed, so references held by later passes stay
//     valid across the delimiter-insertion passes.
//   - Chunk.Level counts real plus virtual braces, parens and brackets;
//     Chunk.BraceLevel counts braces only.
package chunk
