package vbrace

import (
	"pawnfmt/internal/chunk"
)

// checkVSemicolon decides whether the statement running up to this newline
// needs a virtual semicolon, and inserts one after the last significant
// chunk if so. Returns the inserted chunk or nil.
//
// No terminator is inserted while a grouping is open or a control keyword
// still awaits its body: an open '(' or '[' always outranks any line-based
// signal, so multi-line conditions and argument lists flow through freely.
// Outside every virtual region only one case fires: the chunk before the
// newline is the close of an if/else/switch/case region, whose construct
// still needs the terminator the scrubber later hides.
func (in *inserter) checkVSemicolon(nl *chunk.Chunk) *chunk.Chunk {
	if nl.InPreproc() || in.groupDepth > 0 || in.pending != nil {
		return nil
	}
	prev := nl.PrevSignificant()
	if prev == nil || prev.EndsStatement() || prev.Kind == chunk.VBraceOpen || prev.ContinuesExpr() {
		return nil
	}
	if prev.Kind == chunk.VBraceClose {
		// A close already terminates its construct; only the if/else/
		// switch/case family carries the extra terminator the scrubber
		// hides. Loop and function closes get nothing, at any depth.
		if !scrubParent(prev.Parent) {
			return nil
		}
	} else if in.stack.depth() == 0 {
		return nil
	}
	nx := nl.NextSignificant()
	if nx != nil && (nx.Kind == chunk.RBrace || nx.Kind == chunk.Semicolon) {
		return nil
	}
	if prev.IsCloseBrace() && nx != nil {
		if prev.Parent == chunk.ParentIf && nx.Kind == chunk.KwElse {
			return nil
		}
		if prev.Parent == chunk.ParentDo && nx.Kind == chunk.KwWhile {
			return nil
		}
	}
	return AddVSemiAfter(in.stream, prev, in.topParent())
}

func (in *inserter) topParent() chunk.Parent {
	if top := in.stack.top(); top != nil {
		return top.parent
	}
	return chunk.ParentNone
}
