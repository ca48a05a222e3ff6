package verbex

import "unicode/utf8"

// specialBytes contains 16 * 8 = 128 bits, where each bit represents one byte value.
// If the i-th bit is 1, the i-th byte character has a special meaning in pattern
// syntax and needs to be escaped before it is embedded as a literal.
// This array represents the following bytes: "].|*?+(){}^$\\:=[".
var specialBytes = [16]byte{
	0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00,
	0x04, 0x04, 0x0c, 0xa4, 0xa0, 0xa8, 0x24, 0x08,
}

// special reports whether byte b needs to be escaped by QuoteLiteral.
func special(b byte) bool {
	return b < utf8.RuneSelf && specialBytes[b%16]&(1<<(b/16)) != 0
}

// QuoteLiteral returns a string that escapes all pattern metacharacters inside the
// argument text; the returned string is a pattern fragment matching the literal text.
// This function works like `regexp.QuoteMeta` but escapes exactly the characters
// of string "].|*?+(){}^$\\:=[". The forward slash is deliberately not escaped;
// it only needs escaping in the rendered /pattern/flags form (see Builder.String).
func QuoteLiteral(s string) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if special(s[i]) {
			break
		}
	}

	// No meta characters found, so return original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if special(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}

	return string(b[:j])
}
