package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004

	// I/O
	IOLoadFile Code = 2001

	// Delimiter normalization
	DelimInfo              Code = 3000
	DelimUnbalancedBraces  Code = 3001
	DelimForcedClose       Code = 3002
	DelimUnclosedGrouping  Code = 3003
	DelimDanglingConstruct Code = 3004
)

var codeIDs = map[Code]string{
	UnknownCode:                 "unknown",
	LexInfo:                     "lex-info",
	LexUnknownChar:              "lex-unknown-char",
	LexUnterminatedString:       "lex-unterminated-string",
	LexUnterminatedBlockComment: "lex-unterminated-block-comment",
	LexUnterminatedChar:         "lex-unterminated-char",
	IOLoadFile:                  "io-load-file",
	DelimInfo:                   "delim-info",
	DelimUnbalancedBraces:       "delim-unbalanced-braces",
	DelimForcedClose:            "delim-forced-close",
	DelimUnclosedGrouping:       "delim-unclosed-grouping",
	DelimDanglingConstruct:      "delim-dangling-construct",
}

// ID returns the stable machine-readable identifier of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("code-%04d", uint16(c))
}

func (c Code) String() string {
	return fmt.Sprintf("PF%04d", uint16(c))
}
