package lexer

// Byte classifiers. Identifiers are ASCII-only at this stage; universal
// character names are a later-phase concern.

func isWhitespaceNoNewline(b byte) bool {
	switch b {
	case ' ', '\t', '\r', 0x0B, 0x0C:
		return true
	default:
		return false
	}
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}
