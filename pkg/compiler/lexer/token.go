package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindIllegal
	KindIdent
	KindInt
	KindAssign    // =
	KindPlus      // +
	KindMinus     // -
	KindBang      // !
	KindAsterisk  // *
	KindSlash     // /
	KindLT        // <
	KindGT        // >
	KindEq        // ==
	KindNotEq     // !=
	KindComma     // ,
	KindSemicolon // ;
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }
	KindFunction  // fn
	KindLet       // let
	KindTrue      // true
	KindFalse     // false
	KindIf        // if
	KindElse      // else
	KindReturn    // return
)

// Token is a single lexical unit. Literal carries the matched text for
// identifiers and integer literals and the offending byte for illegal
// tokens; every other kind is fully described by Kind alone.
type Token struct {
	Kind    Kind
	Literal string
}

var keywords = map[string]Kind{
	"fn":     KindFunction,
	"let":    KindLet,
	"true":   KindTrue,
	"false":  KindFalse,
	"if":     KindIf,
	"else":   KindElse,
	"return": KindReturn,
}

// LookupKind classifies a scanned identifier, returning the keyword
// kind on an exact case-sensitive match and KindIdent otherwise.
func LookupKind(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return KindIdent
}

var kindNames = [...]string{
	KindEOF:       "EOF",
	KindIllegal:   "Illegal",
	KindIdent:     "Ident",
	KindInt:       "Int",
	KindAssign:    "Assign",
	KindPlus:      "Plus",
	KindMinus:     "Minus",
	KindBang:      "Bang",
	KindAsterisk:  "Asterisk",
	KindSlash:     "Slash",
	KindLT:        "LessThan",
	KindGT:        "GreaterThan",
	KindEq:        "Equal",
	KindNotEq:     "NotEqual",
	KindComma:     "Comma",
	KindSemicolon: "Semicolon",
	KindLParen:    "LParen",
	KindRParen:    "RParen",
	KindLBrace:    "LBrace",
	KindRBrace:    "RBrace",
	KindFunction:  "Function",
	KindLet:       "Let",
	KindTrue:      "True",
	KindFalse:     "False",
	KindIf:        "If",
	KindElse:      "Else",
	KindReturn:    "Return",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
