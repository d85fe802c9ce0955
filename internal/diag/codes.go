package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadHeaderName            Code = 1005

	// Driver / I/O
	IOReadFile Code = 2001
)

func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
