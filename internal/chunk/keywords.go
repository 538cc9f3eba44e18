package chunk

var keywords = map[string]Kind{
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"do":       KwDo,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"goto":     KwGoto,
	"new":      KwNew,
	"decl":     KwDecl,
	"const":    KwConst,
	"static":   KwStatic,
	"enum":     KwEnum,
	"public":   KwPublic,
	"stock":    KwStock,
	"forward":  KwForward,
	"native":   KwNative,
	"sizeof":   KwSizeof,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsModifier reports whether the kind is a function/declaration modifier
// that may precede a function name at file scope.
func IsModifier(k Kind) bool {
	switch k {
	case KwPublic, KwStock, KwStatic, KwForward, KwNative:
		return true
	default:
		return false
	}
}
