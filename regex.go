package verbex

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/dlclark/regexp2"
)

// CompileError is returned when the assembled pattern text is rejected by
// the regex engine, e.g. because of unbalanced capture groups or invalid
// quantifier bounds. It is the only error this package produces; all
// composition steps before Compile are infallible.
type CompileError struct {
	Pattern string // assembled pattern text
	Flags   string // rendered flag characters
	Err     error  // rejection reported by the engine
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("verbex: compiling /%s/%s: %v", e.Pattern, e.Flags, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// regexEngine is the matching backend of a compiled pattern.
// Two implementations exist: stdRegex on top of the Go regexp package and
// advRegex on top of regexp2, for patterns using constructs the Go engine
// does not support (e.g. lookaheads).
type regexEngine interface {
	NumSubexp() int
	BuildInput(s string) regexInput
}

// regexInput is a search input prepared for one subject string.
// Find returns the byte index pairs of the first match starting at or after
// pos, one pair per group, with -1 pairs for groups that did not participate.
type regexInput interface {
	Find(pos int) []int
}

// compileRegex compiles the assembled pattern text for the given flag set.
// The Go engine is tried first, with the case/multiline/dot-all flags
// translated to an inline flag group. If it rejects the pattern, regexp2 is
// tried with the corresponding options; its error is returned on failure
// because it supports the larger syntax. Sticky patterns always compile
// with regexp2, which matches starting at a position natively.
func compileRegex(pattern string, flags Flags) (regexEngine, error) {
	if !flags.Has(FlagSticky) {
		r, err := regexp.Compile(inlineFlags(flags) + pattern)
		if err == nil {
			return &stdRegex{
				re:     r,
				numCap: numCap(r),
			}, nil
		}
	}

	options := regexp2.None
	if flags.Has(FlagIgnoreCase) {
		options |= regexp2.IgnoreCase
	}
	if flags.Has(FlagMultiline) {
		options |= regexp2.Multiline
	}
	if flags.Has(FlagDotAll) {
		options |= regexp2.Singleline
	}
	if flags.Has(FlagUnicode) {
		options |= regexp2.Unicode
	}

	r2, err := regexp2.Compile(pattern, options)
	if err == nil {
		return &advRegex{
			re:     r2,
			numCap: len(r2.GetGroupNumbers()) - 1,
		}, nil
	}

	return nil, err // the regexp2 error covers the larger syntax
}

// inlineFlags translates the flag set to an inline group for the Go engine.
// Global and sticky affect iteration, not compilation, and codepoint
// matching is the Go engine default, so only i, m and s translate.
func inlineFlags(flags Flags) string {
	if !flags.Has(FlagIgnoreCase) && !flags.Has(FlagMultiline) && !flags.Has(FlagDotAll) {
		return ""
	}

	var b strings.Builder
	b.WriteString("(?")
	if flags.Has(FlagIgnoreCase) {
		b.WriteByte('i')
	}
	if flags.Has(FlagMultiline) {
		b.WriteByte('m')
	}
	if flags.Has(FlagDotAll) {
		b.WriteByte('s')
	}
	b.WriteByte(')')

	return b.String()
}

type stdRegex struct {
	re     *regexp.Regexp
	numCap int
}

type stdInput struct {
	re  *stdRegex
	str string
}

type advRegex struct {
	re     *regexp2.Regexp
	numCap int
}

type advInput struct {
	re          *advRegex
	chars       []rune
	offsetsRune []int // offsets for converting byte indices to rune indices
	offsetsByte []int // offsets for converting rune indices to byte indices
}

var (
	_ regexEngine = (*stdRegex)(nil)
	_ regexInput  = (*stdInput)(nil)
	_ regexEngine = (*advRegex)(nil)
	_ regexInput  = (*advInput)(nil)
)

// numCap returns the unexported field `r.prog.NumCap`.
func numCap(r *regexp.Regexp) int {
	v := reflect.ValueOf(r).Elem()
	v = v.FieldByName("prog")
	p := unsafe.Pointer(v.Pointer())
	return (*syntax.Prog)(p).NumCap
}

func (r *stdRegex) NumSubexp() int {
	return r.re.NumSubexp()
}

func (r *stdRegex) BuildInput(s string) regexInput {
	return &stdInput{
		re:  r,
		str: s,
	}
}

//go:linkname doExecute regexp.(*Regexp).doExecute
func doExecute(re *regexp.Regexp, r io.RuneReader, b []byte, s string, pos int, ncap int, dstCap []int) []int

// Find runs the Go engine starting at pos. Executing at a position keeps
// the anchor and word-boundary context of the full subject, which a search
// over a sliced subject would lose, and it also reaches matches whose start
// lies inside an earlier leftmost match.
func (i *stdInput) Find(pos int) []int {
	return i.pad(doExecute(i.re.re, nil, nil, i.str, pos, i.re.numCap, nil))
}

func (i *stdInput) pad(a []int) []int {
	if a == nil {
		// No match.
		return nil
	}

	n := (1 + i.re.NumSubexp()) * 2
	for len(a) < n {
		a = append(a, -1)
	}

	return a
}

func (r *advRegex) NumSubexp() int {
	return r.numCap
}

func (r *advRegex) BuildInput(s string) regexInput {
	chars, offsetsRune, offsetsByte := getRuneOffsets(s)

	return &advInput{
		re:          r,
		chars:       chars,
		offsetsRune: offsetsRune,
		offsetsByte: offsetsByte,
	}
}

// getRuneOffsets converts the subject to the rune slice regexp2 operates on,
// together with offset tables for translating between byte and rune indices.
// For ASCII-only subjects both indices coincide and no tables are needed.
func getRuneOffsets(s string) ([]rune, []int, []int) {
	if isASCIIString(s) {
		return []rune(s), nil, nil
	}

	chars := make([]rune, 0, len(s))

	offsetsRune := make([]int, 0, len(s)+1)
	offsetsByte := make([]int, 0, len(s)+1)
	offsetI := 0
	offsetO := 0

	for len(s) > 0 {
		ch, size := utf8.DecodeRuneInString(s)
		if ch == utf8.RuneError && size == 1 {
			ch = rune(s[0])
		}

		chars = append(chars, ch)

		for i := 0; i < size; i++ {
			offsetsRune = append(offsetsRune, offsetI)
		}
		offsetI++

		offsetsByte = append(offsetsByte, offsetO)
		offsetO += size - 1

		s = s[size:]
	}

	// last offsets, corresponding to a position at the end of the subject
	offsetsRune = append(offsetsRune, offsetI)
	offsetsByte = append(offsetsByte, offsetO)

	return chars, offsetsRune, offsetsByte
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

func (i *advInput) Find(pos int) []int {
	if i.offsetsRune != nil {
		pos = i.offsetsRune[pos]
	}

	m, err := i.re.re.FindRunesMatchStartingAt(i.chars, pos)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	a := make([]int, 0, 2*len(groups))

	for _, g := range groups {
		if len(g.Captures) != 0 {
			a = append(a, g.Index, g.Index+g.Length)
		} else {
			a = append(a, -1, -1)
		}
	}

	applyOffsets(a, i.offsetsByte)
	return a
}

// applyOffsets converts the rune index pairs in a to byte indices.
func applyOffsets(a []int, offsets []int) {
	if a == nil || offsets == nil {
		return
	}
	for i, v := range a {
		if v >= 0 {
			a[i] = v + offsets[v]
		}
	}
}
