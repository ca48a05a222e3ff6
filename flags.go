package verbex

// Flags is a set of matching-mode toggles.
// The zero value is the empty set and merging two sets is a bitwise OR,
// so enabling a flag twice is the same as enabling it once.
type Flags uint8

// Possible matching flags.
const (
	FlagGlobal     Flags = 1 << iota // find every match, not just the first
	FlagIgnoreCase                   // case-insensitive matching
	FlagMultiline                    // ^ and $ match at line boundaries
	FlagDotAll                       // . also matches line terminators
	FlagUnicode                      // treat the pattern as a sequence of codepoints
	FlagSticky                       // matches must start at the search position
)

// flagOrder holds the single-character codes in their canonical order.
var flagOrder = [...]struct {
	flag Flags
	code byte
}{
	{FlagGlobal, 'g'},
	{FlagIgnoreCase, 'i'},
	{FlagMultiline, 'm'},
	{FlagDotAll, 's'},
	{FlagUnicode, 'u'},
	{FlagSticky, 'y'},
}

// Merge returns the union of both flag sets.
func (f Flags) Merge(o Flags) Flags {
	return f | o
}

// Has reports whether all flags in o are set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// String returns the flag characters in canonical order, e.g. "gi".
func (f Flags) String() string {
	if f == 0 {
		return ""
	}

	b := make([]byte, 0, len(flagOrder))
	for _, o := range flagOrder {
		if f&o.flag != 0 {
			b = append(b, o.code)
		}
	}

	return string(b)
}
