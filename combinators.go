package verbex

import "strconv"

// Find appends a fragment matching the literal value, wrapped in a
// non-capturing group. Metacharacters in value are escaped.
func (b Builder) Find(value string) Builder {
	return b.Add("(?:" + QuoteLiteral(value) + ")")
}

// Then is an alias for Find.
func (b Builder) Then(value string) Builder {
	return b.Find(value)
}

// Maybe appends a fragment that optionally matches the literal value.
func (b Builder) Maybe(value string) Builder {
	return b.Add("(?:" + QuoteLiteral(value) + ")?")
}

// Anything matches any run of characters, including the empty one.
func (b Builder) Anything() Builder {
	return b.Add("(?:.*)")
}

// Something matches any non-empty run of characters.
func (b Builder) Something() Builder {
	return b.Add("(?:.+)")
}

// AnythingBut matches any run, possibly empty, of characters not contained
// in value.
func (b Builder) AnythingBut(value string) Builder {
	return b.Add("(?:[^" + QuoteLiteral(value) + "]*)")
}

// SomethingBut matches any non-empty run of characters not contained in value.
func (b Builder) SomethingBut(value string) Builder {
	return b.Add("(?:[^" + QuoteLiteral(value) + "]+)")
}

// AnyOf matches a single character contained in value.
func (b Builder) AnyOf(value string) Builder {
	return b.Add("[" + QuoteLiteral(value) + "]")
}

// Any is an alias for AnyOf.
func (b Builder) Any(value string) Builder {
	return b.AnyOf(value)
}

// Not appends a negative lookahead for the literal value.
func (b Builder) Not(value string) Builder {
	return b.Add("(?!" + QuoteLiteral(value) + ")")
}

// Range matches a single character between from and to, inclusive.
func (b Builder) Range(from, to string) Builder {
	return b.Add("[" + QuoteLiteral(from) + "-" + QuoteLiteral(to) + "]")
}

// StartOfInput anchors the pattern at the start of the input, or at the
// start of a line when the multiline flag is set.
func (b Builder) StartOfInput() Builder {
	return b.Add("^")
}

// EndOfInput anchors the pattern at the end of the input, or at the end of
// a line when the multiline flag is set.
func (b Builder) EndOfInput() Builder {
	return b.Add("$")
}

// LineBreak matches a Windows, old-Mac or Unix line break.
func (b Builder) LineBreak() Builder {
	return b.Add(`(?:\r\n|\r|\n)`)
}

// Br is an alias for LineBreak.
func (b Builder) Br() Builder {
	return b.LineBreak()
}

// Tab matches a tab character.
func (b Builder) Tab() Builder {
	return b.Add(`\t`)
}

// Word matches a non-empty run of word characters.
func (b Builder) Word() Builder {
	return b.Add(`\w+`)
}

// Digit matches a single decimal digit.
func (b Builder) Digit() Builder {
	return b.Add(`\d`)
}

// Whitespace matches a single whitespace character.
func (b Builder) Whitespace() Builder {
	return b.Add(`\s`)
}

// ZeroOrMore repeats the preceding fragment zero or more times.
func (b Builder) ZeroOrMore() Builder {
	return b.Add("*")
}

// ZeroOrMoreLazy repeats the preceding fragment zero or more times,
// matching as few repetitions as possible.
func (b Builder) ZeroOrMoreLazy() Builder {
	return b.Add("*?")
}

// OneOrMore repeats the preceding fragment one or more times.
func (b Builder) OneOrMore() Builder {
	return b.Add("+")
}

// OneOrMoreLazy repeats the preceding fragment one or more times,
// matching as few repetitions as possible.
func (b Builder) OneOrMoreLazy() Builder {
	return b.Add("+?")
}

// Exactly repeats the preceding fragment exactly n times.
func (b Builder) Exactly(n int) Builder {
	return b.Add("{" + strconv.Itoa(n) + "}")
}

// AtLeast repeats the preceding fragment at least n times.
func (b Builder) AtLeast(n int) Builder {
	return b.Add("{" + strconv.Itoa(n) + ",}")
}

// Between repeats the preceding fragment between min and max times.
// Bounds with min > max are only rejected when the pattern is compiled.
func (b Builder) Between(min, max int) Builder {
	return b.Add("{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}")
}

// BetweenLazy repeats the preceding fragment between min and max times,
// matching as few repetitions as possible.
func (b Builder) BetweenLazy(min, max int) Builder {
	return b.Add("{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}?")
}

// BeginCapture opens a capturing group. Every BeginCapture needs a matching
// EndCapture; an unbalanced group only surfaces as an error at compile time.
func (b Builder) BeginCapture() Builder {
	return b.Add("(")
}

// EndCapture closes the innermost open capturing group.
func (b Builder) EndCapture() Builder {
	return b.Add(")")
}

// Or wraps everything accumulated so far in a non-capturing group and
// appends an alternative matching the literal value. Repeated calls extend
// the wrapping, so the alternatives stay on one level.
//
// Deprecated: use Pipe together with explicit grouping; the implicit
// wrapping of Or is kept only for backwards compatibility.
func (b Builder) Or(value string) Builder {
	return b.addPrefix("(?:").
		addSuffix(")").
		Add(")|(?:").
		Add("(?:" + QuoteLiteral(value) + ")")
}

// Pipe appends a bare alternation operator. Unlike Or it performs no
// grouping; the caller is responsible for wrapping both alternatives.
func (b Builder) Pipe() Builder {
	return b.Add("|")
}

// Global enables finding every match instead of only the first one.
func (b Builder) Global() Builder {
	return b.withFlag(FlagGlobal)
}

// IgnoreCase enables case-insensitive matching.
func (b Builder) IgnoreCase() Builder {
	return b.withFlag(FlagIgnoreCase)
}

// WithAnyCase is an alias for IgnoreCase.
func (b Builder) WithAnyCase() Builder {
	return b.IgnoreCase()
}

// Multiline makes ^ and $ match at line boundaries.
func (b Builder) Multiline() Builder {
	return b.withFlag(FlagMultiline)
}

// DotAll makes . also match line terminators.
func (b Builder) DotAll() Builder {
	return b.withFlag(FlagDotAll)
}

// Unicode enables treating the pattern as a sequence of codepoints.
func (b Builder) Unicode() Builder {
	return b.withFlag(FlagUnicode)
}

// Sticky requires matches to start exactly at the search position.
func (b Builder) Sticky() Builder {
	return b.withFlag(FlagSticky)
}
