package chunk

// Kind represents the category of a chunk in the stream.
type Kind uint8

const (
	// Invalid indicates an erroneous chunk.
	Invalid Kind = iota
	// EOF marks the end of the stream.
	EOF

	// Newline represents a line break in the source.
	Newline
	// Comment represents a line or block comment.
	Comment
	// Preproc represents a preprocessor directive introducer ('#' plus the
	// directive word).
	Preproc

	// Ident represents an identifier chunk.
	Ident
	// Number represents a numeric literal chunk.
	Number
	// String represents a string literal chunk.
	String
	// Char represents a character literal chunk.
	Char

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwDecl represents the 'decl' keyword.
	KwDecl // decl
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwStock represents the 'stock' keyword.
	KwStock // stock
	// KwForward represents the 'forward' keyword.
	KwForward // forward
	// KwNative represents the 'native' keyword.
	KwNative // native
	// KwSizeof represents the 'sizeof' keyword.
	KwSizeof // sizeof

	// LParen represents the left parenthesis chunk.
	LParen // (
	// RParen represents the right parenthesis chunk.
	RParen // )
	// LBrace represents the left brace chunk.
	LBrace // {
	// RBrace represents the right brace chunk.
	RBrace // }
	// LBracket represents the left bracket chunk.
	LBracket // [
	// RBracket represents the right bracket chunk.
	RBracket // ]
	// Semicolon represents the semicolon chunk.
	Semicolon // ;
	// Comma represents the comma chunk.
	Comma // ,
	// Colon represents the colon chunk.
	Colon // :
	// Operator represents any other operator chunk; Text holds the spelling.
	Operator

	// VSemicolon represents a synthesized zero-width statement terminator.
	VSemicolon
	// VBraceOpen represents a synthesized zero-width block opener.
	VBraceOpen
	// VBraceClose represents a synthesized zero-width block closer.
	VBraceClose
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Newline:     "Newline",
	Comment:     "Comment",
	Preproc:     "Preproc",
	Ident:       "Ident",
	Number:      "Number",
	String:      "String",
	Char:        "Char",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwFor:       "KwFor",
	KwWhile:     "KwWhile",
	KwDo:        "KwDo",
	KwSwitch:    "KwSwitch",
	KwCase:      "KwCase",
	KwDefault:   "KwDefault",
	KwReturn:    "KwReturn",
	KwBreak:     "KwBreak",
	KwContinue:  "KwContinue",
	KwGoto:      "KwGoto",
	KwNew:       "KwNew",
	KwDecl:      "KwDecl",
	KwConst:     "KwConst",
	KwStatic:    "KwStatic",
	KwEnum:      "KwEnum",
	KwPublic:    "KwPublic",
	KwStock:     "KwStock",
	KwForward:   "KwForward",
	KwNative:    "KwNative",
	KwSizeof:    "KwSizeof",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Colon:       "Colon",
	Operator:    "Operator",
	VSemicolon:  "VSemicolon",
	VBraceOpen:  "VBraceOpen",
	VBraceClose: "VBraceClose",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Parent is the syntactic role assigned to a chunk by context resolution:
// the construct a brace pair or virtual region belongs to.
type Parent uint8

const (
	// ParentNone means no construct has claimed the chunk.
	ParentNone Parent = iota
	// ParentFunc marks a function body.
	ParentFunc
	// ParentIf marks an 'if' body.
	ParentIf
	// ParentElse marks an 'else' body.
	ParentElse
	// ParentWhile marks a 'while' body.
	ParentWhile
	// ParentFor marks a 'for' body.
	ParentFor
	// ParentDo marks a 'do' body.
	ParentDo
	// ParentSwitch marks a 'switch' body.
	ParentSwitch
	// ParentCase marks a 'case' arm body.
	ParentCase
)

var parentNames = [...]string{
	ParentNone:   "none",
	ParentFunc:   "func",
	ParentIf:     "if",
	ParentElse:   "else",
	ParentWhile:  "while",
	ParentFor:    "for",
	ParentDo:     "do",
	ParentSwitch: "switch",
	ParentCase:   "case",
}

func (p Parent) String() string {
	if int(p) < len(parentNames) {
		return parentNames[p]
	}
	return "parent(?)"
}

// Flags encodes per-chunk attributes.
type Flags uint8

const (
	// FlagVirtual marks a chunk synthesized by the delimiter engine rather
	// than present in the source text.
	FlagVirtual Flags = 1 << iota
	// FlagInvisible marks a virtual semicolon that downstream passes must
	// treat as whitespace.
	FlagInvisible
	// FlagInPreproc marks a chunk inside a preprocessor region.
	FlagInPreproc
	// FlagUnbracedBody marks the first chunk of a function body that needs
	// virtual bracing. Set by the prescan, consumed by the inserter.
	FlagUnbracedBody
)
