/*
File: mython-interpreter/lexer/lexer_utils.go
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start or continue an identifier.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlphanumeric reports whether c can continue an identifier after its
// first character.
func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// readStringLiteral reads a quoted string literal from the start of
// src (src[0] must equal quote). Unlike the teacher's string scanner,
// no backslash-escape processing is performed: the bytes between the
// quotes become the string value verbatim. Returns the literal value,
// the number of source bytes consumed (including both quotes), and
// whether the literal was terminated on the same line.
func readStringLiteral(src string, quote byte) (string, int, bool) {
	i := 1
	for i < len(src) {
		if src[i] == quote {
			return src[1:i], i + 1, true
		}
		i++
	}
	return "", i, false
}

// readNumber reads a contiguous run of decimal digits from the start
// of src — Mython numbers are integers; a leading minus sign is a
// separate Char('-') operator token handled by the parser, not part
// of the number literal itself. Returns the literal text and the
// number of bytes consumed.
func readNumber(src string) (string, int, bool) {
	i := 0
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return src[:i], i, true
}

// readIdentifier reads a run of identifier characters (letters,
// digits, underscore) from the start of src, returning the text and
// the number of bytes consumed.
func readIdentifier(src string) (string, int) {
	i := 0
	for i < len(src) && isAlphanumeric(src[i]) {
		i++
	}
	return src[:i], i
}
