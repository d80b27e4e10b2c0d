package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// RawIdent represents a raw identifier such as r#match.
	RawIdent
	// Lifetime represents a lifetime or loop label such as 'a.
	Lifetime
	// Underscore represents the '_' placeholder.
	Underscore // _

	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwCrate represents the 'crate' keyword.
	KwCrate // crate
	// KwDyn represents the 'dyn' keyword.
	KwDyn // dyn
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwMove represents the 'move' keyword.
	KwMove // move
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwRef represents the 'ref' keyword.
	KwRef // ref
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSelfValue represents the 'self' keyword.
	KwSelfValue // self
	// KwSelfType represents the 'Self' keyword.
	KwSelfType // Self
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwType represents the 'type' keyword.
	KwType // type
	// KwUnion represents the contextual 'union' keyword. Lexed as Ident; kept for tooling.
	KwUnion // union
	// KwUnsafe represents the 'unsafe' keyword.
	KwUnsafe // unsafe
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwYield represents the reserved 'yield' keyword.
	KwYield // yield

	// IntLit represents an integer literal, suffix included.
	IntLit
	// FloatLit represents a float literal, suffix included.
	FloatLit
	// CharLit represents a character literal.
	CharLit
	// ByteLit represents a byte literal (b'x').
	ByteLit
	// StringLit represents a string literal.
	StringLit
	// ByteStringLit represents a byte string literal (b"...").
	ByteStringLit
	// CStringLit represents a C string literal (c"...").
	CStringLit
	// RawStringLit represents a raw string literal (r#"..."#), including br and cr forms.
	RawStringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the caret operator token.
	Caret // ^
	// Bang represents the bang operator token.
	Bang // !
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// Shl represents the shl operator token.
	Shl // <<
	// Shr represents the shr operator token.
	Shr // >>
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Gt represents the gt operator token.
	Gt // >
	// Lt represents the lt operator token.
	Lt // <
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// At represents the at operator token.
	At // @
	// Dot represents the dot operator token.
	Dot // .
	// DotDot represents the dot dot operator token.
	DotDot // ..
	// DotDotDot represents the dot dot dot operator token.
	DotDotDot // ...
	// DotDotEq represents the dot dot eq operator token.
	DotDotEq // ..=
	// Comma represents the comma operator token.
	Comma // ,
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Colon represents the colon operator token.
	Colon // :
	// ColonColon represents the colon colon operator token.
	ColonColon // ::
	// Arrow represents the arrow operator token.
	Arrow // ->
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// Pound represents the pound token that opens attributes.
	Pound // #
	// Dollar represents the dollar token used by macro_rules.
	Dollar // $
	// Question represents the question operator token.
	Question // ?
	// Tilde represents the tilde token (reserved, still lexed).
	Tilde // ~
	// LParen represents the left parenthesis operator token.
	LParen // (
	// RParen represents the right parenthesis operator token.
	RParen // )
	// LBrace represents the left brace operator token.
	LBrace // {
	// RBrace represents the right brace operator token.
	RBrace // }
	// LBracket represents the left bracket operator token.
	LBracket // [
	// RBracket represents the right bracket operator token.
	RBracket // ]

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	RawIdent:      "RawIdent",
	Lifetime:      "Lifetime",
	Underscore:    "Underscore",
	KwAs:          "KwAs",
	KwAsync:       "KwAsync",
	KwAwait:       "KwAwait",
	KwBreak:       "KwBreak",
	KwConst:       "KwConst",
	KwContinue:    "KwContinue",
	KwCrate:       "KwCrate",
	KwDyn:         "KwDyn",
	KwElse:        "KwElse",
	KwEnum:        "KwEnum",
	KwExtern:      "KwExtern",
	KwFalse:       "KwFalse",
	KwFn:          "KwFn",
	KwFor:         "KwFor",
	KwIf:          "KwIf",
	KwImpl:        "KwImpl",
	KwIn:          "KwIn",
	KwLet:         "KwLet",
	KwLoop:        "KwLoop",
	KwMatch:       "KwMatch",
	KwMod:         "KwMod",
	KwMove:        "KwMove",
	KwMut:         "KwMut",
	KwPub:         "KwPub",
	KwRef:         "KwRef",
	KwReturn:      "KwReturn",
	KwSelfValue:   "KwSelfValue",
	KwSelfType:    "KwSelfType",
	KwStatic:      "KwStatic",
	KwStruct:      "KwStruct",
	KwSuper:       "KwSuper",
	KwTrait:       "KwTrait",
	KwTrue:        "KwTrue",
	KwType:        "KwType",
	KwUnion:       "KwUnion",
	KwUnsafe:      "KwUnsafe",
	KwUse:         "KwUse",
	KwWhere:       "KwWhere",
	KwWhile:       "KwWhile",
	KwYield:       "KwYield",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	CharLit:       "CharLit",
	ByteLit:       "ByteLit",
	StringLit:     "StringLit",
	ByteStringLit: "ByteStringLit",
	CStringLit:    "CStringLit",
	RawStringLit:  "RawStringLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Caret:         "Caret",
	Bang:          "Bang",
	Amp:           "Amp",
	Pipe:          "Pipe",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Shl:           "Shl",
	Shr:           "Shr",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	CaretAssign:   "CaretAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	ShlAssign:     "ShlAssign",
	ShrAssign:     "ShrAssign",
	Assign:        "Assign",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	Gt:            "Gt",
	Lt:            "Lt",
	GtEq:          "GtEq",
	LtEq:          "LtEq",
	At:            "At",
	Dot:           "Dot",
	DotDot:        "DotDot",
	DotDotDot:     "DotDotDot",
	DotDotEq:      "DotDotEq",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	Colon:         "Colon",
	ColonColon:    "ColonColon",
	Arrow:         "Arrow",
	FatArrow:      "FatArrow",
	Pound:         "Pound",
	Dollar:        "Dollar",
	Question:      "Question",
	Tilde:         "Tilde",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KwAs && k <= KwYield }

// IsLiteral reports whether the kind is a literal, booleans included.
func (k Kind) IsLiteral() bool {
	return (k >= IntLit && k <= RawStringLit) || k == KwTrue || k == KwFalse
}

// IsPunct reports whether the kind is punctuation, an operator or a delimiter.
func (k Kind) IsPunct() bool { return k >= Plus && k <= RBracket }
