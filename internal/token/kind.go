package token

// Kind represents the category of a preprocessing token.
type Kind uint8

const (
	// Unknown indicates a byte sequence that forms no valid token.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier (including would-be keywords).
	Ident
	// PpNumber represents a preprocessing number (C translation phase 3).
	PpNumber
	// CharConst represents a character constant, prefix included.
	CharConst
	// StringLiteral represents a string literal, prefix included.
	StringLiteral
	// HeaderName represents a <...> or "..." header name (include context only).
	HeaderName

	// Whitespace is a run of non-newline whitespace bytes.
	Whitespace
	// Newline is a single '\n' byte.
	Newline
	// Comment is a line or block comment.
	Comment

	Hash     // #
	HashHash // ##

	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Comma    // ,
	Semi     // ;
	Colon    // :
	Ellipsis // ...
	Dot      // .
	Arrow    // ->
	Question // ?
	Tilde    // ~

	Plus          // +
	PlusPlus      // ++
	PlusAssign    // +=
	Minus         // -
	MinusMinus    // --
	MinusAssign   // -=
	Star          // *
	StarAssign    // *=
	Slash         // /
	SlashAssign   // /=
	Percent       // %
	PercentAssign // %=

	Assign // =
	Eq     // ==
	Not    // !
	Ne     // !=
	Lt     // <
	Le     // <=
	Gt     // >
	Ge     // >=

	Shl       // <<
	ShlAssign // <<=
	Shr       // >>
	ShrAssign // >>=

	Amp         // &
	And         // &&
	AmpAssign   // &=
	Pipe        // |
	Or          // ||
	PipeAssign  // |=
	Caret       // ^
	CaretAssign // ^=
)

var kindNames = map[Kind]string{
	Unknown:       "Unknown",
	EOF:           "EOF",
	Ident:         "Ident",
	PpNumber:      "PpNumber",
	CharConst:     "CharConst",
	StringLiteral: "StringLiteral",
	HeaderName:    "HeaderName",
	Whitespace:    "Whitespace",
	Newline:       "Newline",
	Comment:       "Comment",
	Hash:          "Hash",
	HashHash:      "HashHash",
	LParen:        "LParen",
	RParen:        "RParen",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Comma:         "Comma",
	Semi:          "Semi",
	Colon:         "Colon",
	Ellipsis:      "Ellipsis",
	Dot:           "Dot",
	Arrow:         "Arrow",
	Question:      "Question",
	Tilde:         "Tilde",
	Plus:          "Plus",
	PlusPlus:      "PlusPlus",
	PlusAssign:    "PlusAssign",
	Minus:         "Minus",
	MinusMinus:    "MinusMinus",
	MinusAssign:   "MinusAssign",
	Star:          "Star",
	StarAssign:    "StarAssign",
	Slash:         "Slash",
	SlashAssign:   "SlashAssign",
	Percent:       "Percent",
	PercentAssign: "PercentAssign",
	Assign:        "Assign",
	Eq:            "Eq",
	Not:           "Not",
	Ne:            "Ne",
	Lt:            "Lt",
	Le:            "Le",
	Gt:            "Gt",
	Ge:            "Ge",
	Shl:           "Shl",
	ShlAssign:     "ShlAssign",
	Shr:           "Shr",
	ShrAssign:     "ShrAssign",
	Amp:           "Amp",
	And:           "And",
	AmpAssign:     "AmpAssign",
	Pipe:          "Pipe",
	Or:            "Or",
	PipeAssign:    "PipeAssign",
	Caret:         "Caret",
	CaretAssign:   "CaretAssign",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// IsTrivia reports whether the token carries no preprocessing meaning on
// its own (whitespace, newlines, comments).
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, Comment:
		return true
	default:
		return false
	}
}
