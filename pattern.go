package verbex

import (
	"strings"
	"unicode/utf8"
)

// Regexp is a compiled pattern together with its flag set.
// It is immutable and safe for concurrent use.
type Regexp struct {
	pattern string
	flags   Flags
	engine  regexEngine
}

// Compile evaluates the builder chain and compiles the assembled pattern.
// It fails with a *CompileError iff the regex engine rejects the pattern
// text, e.g. on unbalanced capture groups; malformed patterns cannot be
// detected earlier because builders are pure text accumulators.
func (b Builder) Compile() (*Regexp, error) {
	e := b.ToState()

	engine, err := compileRegex(e.Pattern, e.Flags)
	if err != nil {
		return nil, &CompileError{
			Pattern: e.Pattern,
			Flags:   e.Flags.String(),
			Err:     err,
		}
	}

	return &Regexp{
		pattern: e.Pattern,
		flags:   e.Flags,
		engine:  engine,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func (b Builder) MustCompile() *Regexp {
	r, err := b.Compile()
	if err != nil {
		panic(err)
	}

	return r
}

// String renders the builder chain in the form /pattern/flags without
// compiling it, for diagnostics and equality testing.
func (b Builder) String() string {
	e := b.ToState()
	return "/" + escapeSlashes(e.Pattern) + "/" + e.Flags.String()
}

// escapeSlashes escapes every forward slash that is not already part of a
// backslash escape, so that the rendered form reads as a pattern literal.
// The slash has no special meaning inside the pattern itself, which is why
// QuoteLiteral leaves it alone and the escaping happens only here.
func escapeSlashes(s string) string {
	if !strings.ContainsRune(s, '/') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)

	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '/' && !escaped {
			b.WriteByte('\\')
		}

		if c == '\\' {
			escaped = !escaped
		} else {
			escaped = false
		}

		b.WriteByte(c)
	}

	return b.String()
}

// String returns the pattern in the form /pattern/flags.
func (r *Regexp) String() string {
	return "/" + escapeSlashes(r.pattern) + "/" + r.flags.String()
}

// PatternText returns the assembled pattern text.
func (r *Regexp) PatternText() string {
	return r.pattern
}

// FlagsText returns the flag characters in canonical order.
func (r *Regexp) FlagsText() string {
	return r.flags.String()
}

// Flags returns the flag set the pattern was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// NumSubexp returns the number of capturing groups in the pattern.
func (r *Regexp) NumSubexp() int {
	return r.engine.NumSubexp()
}

// MatchString reports whether the pattern matches anywhere in s,
// or exactly at the start of s when the sticky flag is set.
func (r *Regexp) MatchString(s string) bool {
	if r.flags.Has(FlagSticky) {
		return r.MatchStringAt(s, 0)
	}

	return r.engine.BuildInput(s).Find(0) != nil
}

// MatchStringAt reports whether the pattern matches starting exactly at
// byte offset pos, the way a sticky pattern is matched at a position.
func (r *Regexp) MatchStringAt(s string, pos int) bool {
	if pos < 0 || pos > len(s) {
		return false
	}

	m := r.engine.BuildInput(s).Find(pos)
	return m != nil && m[0] == pos
}

// FindString returns the text of the first match of the pattern in s.
// It returns the empty string if there is no match or if the match is empty.
func (r *Regexp) FindString(s string) string {
	m := r.engine.BuildInput(s).Find(0)
	if m == nil {
		return ""
	}

	return s[m[0]:m[1]]
}

// FindStringSubmatch returns the text of the first match and of its
// capturing groups, with empty strings for groups that did not participate.
// It returns nil if there is no match.
func (r *Regexp) FindStringSubmatch(s string) []string {
	m := r.engine.BuildInput(s).Find(0)
	if m == nil {
		return nil
	}

	groups := make([]string, 0, len(m)/2)
	for i := 0; i < len(m); i += 2 {
		if m[i] >= 0 {
			groups = append(groups, s[m[i]:m[i+1]])
		} else {
			groups = append(groups, "")
		}
	}

	return groups
}

// FindAllString returns the texts of the matches of the pattern in s.
// All matches are returned when the global flag is set, otherwise at most
// the first one. It returns nil if there is no match.
func (r *Regexp) FindAllString(s string) []string {
	in := r.engine.BuildInput(s)

	var out []string

	pos := 0
	for pos <= len(s) {
		m := in.Find(pos)
		if m == nil {
			break
		}

		out = append(out, s[m[0]:m[1]])

		if !r.flags.Has(FlagGlobal) {
			break
		}

		if m[1] == m[0] {
			// advance past an empty match by one rune
			_, size := utf8.DecodeRuneInString(s[m[1]:])
			pos = m[1] + max(size, 1)
		} else {
			pos = m[1]
		}
	}

	return out
}
