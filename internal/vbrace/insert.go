package vbrace

import (
	"fmt"

	"pawnfmt/internal/chunk"
	"pawnfmt/internal/diag"
	"pawnfmt/internal/source"
)

// Normalize runs the full delimiter pipeline on the stream: function body
// detection, virtual brace and semicolon insertion, then the scrub pass
// that hides semicolons made redundant by block structure.
func Normalize(s *chunk.Stream, rep diag.Reporter) {
	Prescan(s)
	Insert(s, rep)
	ScrubVSemis(s)
}

// pendingCtrl tracks a control keyword whose body has not started yet.
// For if/for/while/switch the body begins at the first chunk after the
// condition's closing ')'; for else/do it begins at the very next chunk.
type pendingCtrl struct {
	kw        *chunk.Chunk
	parent    chunk.Parent
	parenless bool
	sawParen  bool
	base      int // groupDepth at the keyword
}

type inserter struct {
	stream *chunk.Stream
	rep    diag.Reporter

	stack      levelStack
	groupDepth int
	pending    *pendingCtrl

	braceParents []chunk.Parent
	pendingBrace chunk.Parent
	caseLabel    bool
	atLineStart  bool
}

// Insert synthesizes virtual braces around unbraced bodies and virtual
// semicolons at statement-ending newlines, adjusting Level and BraceLevel
// of every real chunk to include the virtual regions it sits in.
func Insert(s *chunk.Stream, rep diag.Reporter) {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	in := &inserter{stream: s, rep: rep, atLineStart: true}
	for c := s.First(); c != nil; c = c.Next() {
		if c.IsVirtual() {
			continue
		}
		if c.InPreproc() {
			in.bump(c)
			continue
		}
		in.visit(c)
	}
}

// bump folds the open virtual regions into the chunk's levels.
func (in *inserter) bump(c *chunk.Chunk) {
	d := uint32(in.stack.depth())
	c.Level += d
	c.BraceLevel += d
}

func (in *inserter) visit(c *chunk.Chunk) {
	switch c.Kind {
	case chunk.EOF:
		in.finish(c)
		return
	case chunk.Newline:
		in.onNewline(c)
		return
	case chunk.Comment, chunk.Invalid, chunk.Preproc:
		in.bump(c)
		return
	}

	if c.Kind == chunk.RBrace {
		in.terminateBeforeBrace(c)
	}
	if in.atLineStart {
		in.atLineStart = false
		in.dedentClose(c)
	}
	if in.pendingBrace != chunk.ParentNone && c.Kind != chunk.LBrace {
		in.pendingBrace = chunk.ParentNone
	}
	if c.Flags&chunk.FlagUnbracedBody != 0 {
		in.openVirtual(c, chunk.ParentFunc, in.funcStartCol(c))
	}
	if p := in.pending; p != nil {
		switch {
		case !p.sawParen && c.Kind == chunk.LParen:
			p.sawParen = true
		case p.sawParen && in.groupDepth == p.base && c.Kind != chunk.RParen:
			in.pending = nil
			in.beginBody(p, c)
		case p.parenless:
			in.pending = nil
			in.beginBody(p, c)
		}
	}

	in.bump(c)

	switch c.Kind {
	case chunk.KwIf:
		in.pending = &pendingCtrl{kw: c, parent: chunk.ParentIf, base: in.groupDepth}
	case chunk.KwFor:
		in.pending = &pendingCtrl{kw: c, parent: chunk.ParentFor, base: in.groupDepth}
	case chunk.KwSwitch:
		in.pending = &pendingCtrl{kw: c, parent: chunk.ParentSwitch, base: in.groupDepth}
	case chunk.KwWhile:
		prev := c.PrevSignificant()
		if prev != nil && prev.IsCloseBrace() && prev.Parent == chunk.ParentDo {
			break // tail of do..while, the condition is not a new body
		}
		in.pending = &pendingCtrl{kw: c, parent: chunk.ParentWhile, base: in.groupDepth}
	case chunk.KwElse:
		in.pending = &pendingCtrl{kw: c, parent: chunk.ParentElse, parenless: true}
	case chunk.KwDo:
		in.pending = &pendingCtrl{kw: c, parent: chunk.ParentDo, parenless: true}
	case chunk.KwCase, chunk.KwDefault:
		in.caseLabel = true
	case chunk.Colon:
		if in.caseLabel {
			in.caseLabel = false
			in.pendingBrace = chunk.ParentCase
		}
	case chunk.LParen, chunk.LBracket:
		in.groupDepth++
	case chunk.RParen, chunk.RBracket:
		if in.groupDepth > 0 {
			in.groupDepth--
		}
	case chunk.LBrace:
		c.Parent = in.pendingBrace
		in.braceParents = append(in.braceParents, in.pendingBrace)
		in.pendingBrace = chunk.ParentNone
	case chunk.RBrace:
		if n := len(in.braceParents); n > 0 {
			c.Parent = in.braceParents[n-1]
			in.braceParents = in.braceParents[:n-1]
		} else {
			in.rep.Report(diag.DelimUnbalancedBraces, diag.SevError, c.Span,
				"'}' without matching '{'", nil)
		}
		in.closeAfterStatement(c)
	case chunk.Semicolon:
		if in.groupDepth == 0 {
			in.closeAfterStatement(c)
		}
	}
}

// beginBody decides how the body of a resolved control keyword starts.
func (in *inserter) beginBody(p *pendingCtrl, c *chunk.Chunk) {
	switch {
	case c.Kind == chunk.LBrace:
		in.pendingBrace = p.parent
	case c.Kind == chunk.Semicolon:
		// empty body, nothing to wrap
	case c.Kind == chunk.KwIf && p.parent == chunk.ParentElse:
		// "else if" chains share the region of the trailing if
	default:
		in.openVirtual(c, p.parent, lineStartCol(p.kw))
	}
}

// openVirtual inserts a VBraceOpen before the body chunk and pushes its
// region. The open brace carries the level outside the new block; the body
// chunk itself is bumped later with the region included.
func (in *inserter) openVirtual(body *chunk.Chunk, parent chunk.Parent, col uint32) {
	d := uint32(in.stack.depth())
	vo := &chunk.Chunk{
		Kind:       chunk.VBraceOpen,
		Span:       source.At(body.Span.File, body.Span.Start),
		Line:       body.Line,
		Col:        body.Col,
		Level:      body.Level + d,
		BraceLevel: body.BraceLevel + d,
		Parent:     parent,
		Flags:      chunk.FlagVirtual,
	}
	in.stream.InsertBefore(body, vo)
	in.stack.push(record{level: vo.Level, open: vo, parent: parent, col: col})
}

// closeVirtual inserts a VBraceClose after the given chunk, pops the top
// region and returns the new close chunk.
func (in *inserter) closeVirtual(after *chunk.Chunk) *chunk.Chunk {
	top := in.stack.top()
	vc := &chunk.Chunk{
		Kind:       chunk.VBraceClose,
		Span:       source.At(after.Span.File, after.Span.End),
		Line:       after.Line,
		Col:        after.Col + textWidth(after.Text),
		Level:      top.open.Level,
		BraceLevel: top.open.BraceLevel,
		Parent:     top.parent,
		Flags:      chunk.FlagVirtual,
	}
	in.stream.InsertAfter(after, vc)
	in.stack.pop()
	return vc
}

// closeAfterStatement closes every control region above the nearest
// function region, since an unbraced control body holds exactly one
// statement. Cascading stops before an 'else' and before the 'while' of a
// do..while, which continue the construct that just closed.
func (in *inserter) closeAfterStatement(term *chunk.Chunk) bool {
	closed := false
	for {
		top := in.stack.top()
		if top == nil || top.parent == chunk.ParentFunc {
			break
		}
		parent := top.parent
		term = in.closeVirtual(term)
		closed = true
		nx := term.NextSignificant()
		if nx == nil {
			continue
		}
		if nx.Kind == chunk.KwElse {
			break
		}
		if nx.Kind == chunk.KwWhile && parent == chunk.ParentDo {
			break
		}
	}
	return closed
}

// terminateBeforeBrace ends any statement still running inside open virtual
// regions when a real '}' arrives. The newline resolver defers to this: a
// line followed by '}' inserts nothing at the newline, the brace itself
// terminates. Cascading here is what leaves a semicolon after the closed
// region's VBraceClose for the scrubber to hide.
func (in *inserter) terminateBeforeBrace(rb *chunk.Chunk) {
	for {
		if in.groupDepth > 0 || in.pending != nil {
			return
		}
		prev := rb.PrevSignificant()
		if prev == nil || prev.EndsStatement() || prev.ContinuesExpr() ||
			prev.Kind == chunk.VBraceOpen || prev.Kind == chunk.LBrace {
			return
		}
		if prev.Kind == chunk.VBraceClose {
			if !scrubParent(prev.Parent) {
				return
			}
		} else if in.stack.depth() == 0 {
			return
		}
		vs := AddVSemiAfter(in.stream, prev, in.topParent())
		if !in.closeAfterStatement(vs) {
			return
		}
	}
}

func (in *inserter) onNewline(nl *chunk.Chunk) {
	for {
		vs := in.checkVSemicolon(nl)
		if vs == nil {
			break
		}
		if !in.closeAfterStatement(vs) {
			break
		}
	}
	in.bump(nl)
	in.atLineStart = true
}

// dedentClose closes open regions whose construct started at a column at or
// past the first chunk of the new line. An unfinished statement inside such
// a region is left unterminated and reported; closing too little is safer
// than inventing a terminator.
func (in *inserter) dedentClose(c *chunk.Chunk) {
	if in.groupDepth > 0 || in.pending != nil {
		return
	}
	for {
		top := in.stack.top()
		if top == nil || c.Col > top.col {
			return
		}
		last := c.PrevSignificant()
		if last == nil {
			return
		}
		if !last.EndsStatement() && !last.IsCloseBrace() {
			in.rep.Report(diag.DelimForcedClose, diag.SevWarning, last.Span,
				fmt.Sprintf("block implicitly closed before %q at lower indentation", c.Text), nil)
		}
		in.closeVirtual(last)
	}
}

// finish closes everything still open when the stream ends.
func (in *inserter) finish(eof *chunk.Chunk) {
	last := eof.PrevSignificant()
	for in.stack.depth() > 0 && last != nil {
		top := in.stack.top()
		if !last.EndsStatement() && !last.IsCloseBrace() {
			if in.groupDepth == 0 && in.pending == nil && !last.ContinuesExpr() {
				last = AddVSemiAfter(in.stream, last, top.parent)
			} else {
				in.rep.Report(diag.DelimForcedClose, diag.SevWarning, last.Span,
					"block implicitly closed at end of file", nil)
			}
		}
		last = in.closeVirtual(last)
	}
	if in.groupDepth > 0 {
		in.rep.Report(diag.DelimUnclosedGrouping, diag.SevError, eof.Span,
			"unclosed '(' or '[' at end of file", nil)
	}
	if in.pending != nil {
		in.rep.Report(diag.DelimDanglingConstruct, diag.SevError, in.pending.kw.Span,
			fmt.Sprintf("%q has no body at end of file", in.pending.kw.Text), nil)
	}
}

// lineStartCol returns the column of the first significant chunk on the
// same line as c.
func lineStartCol(c *chunk.Chunk) uint32 {
	col := c.Col
	for p := c.PrevSignificant(); p != nil && p.Line == c.Line; p = p.PrevSignificant() {
		if p.Col < col {
			col = p.Col
		}
	}
	return col
}

// funcStartCol finds the column where the definition owning an unbraced
// function body starts: the line of the name before the parameter list.
func (in *inserter) funcStartCol(body *chunk.Chunk) uint32 {
	rp := body.PrevSignificant()
	if rp == nil || rp.Kind != chunk.RParen {
		return 1
	}
	var lp *chunk.Chunk
	depth := 0
	for p := rp; p != nil; p = p.PrevSignificant() {
		if p.Kind == chunk.RParen {
			depth++
		} else if p.Kind == chunk.LParen {
			depth--
			if depth == 0 {
				lp = p
				break
			}
		}
	}
	if lp == nil {
		return 1
	}
	name := lp.PrevSignificant()
	if name == nil {
		return 1
	}
	return lineStartCol(name)
}
