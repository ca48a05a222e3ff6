package verbex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyState(t *testing.T) {
	e := New().ToState()

	assert.Equal(t, State{}, e)
	assert.Empty(t, e.Pattern)
	assert.Empty(t, e.Flags.String())
}

func TestAdd(t *testing.T) {
	e := New().Add("abc").ToState()

	assert.Equal(t, "abc", e.Source)
	assert.Equal(t, "abc", e.Pattern)
	assert.Empty(t, e.Prefix)
	assert.Empty(t, e.Suffix)
}

func TestAddConcatenation(t *testing.T) {
	// chaining two adds equals a single add of the concatenation
	chained := New().Add("foo").Add("bar").ToState()
	single := New().Add("foobar").ToState()

	assert.Equal(t, single, chained)
}

func TestPrefixSuffixNesting(t *testing.T) {
	// prefixes append, suffixes prepend: the last-opened wrapping closes innermost
	b := New().Add("x").addPrefix("(?:").addSuffix(")").addPrefix("(").addSuffix(")")
	e := b.ToState()

	assert.Equal(t, "(?:(", e.Prefix)
	assert.Equal(t, "))", e.Suffix)
	assert.Equal(t, "x", e.Source)
	assert.Equal(t, "(?:(x))", e.Pattern)
}

func TestPatternDerived(t *testing.T) {
	// the pattern field always equals prefix + source + suffix
	chains := []Builder{
		New(),
		New().Add("a"),
		New().Add("a").addPrefix("("),
		New().Add("a").addPrefix("(").addSuffix(")"),
		New().Find("foo").Or("bar"),
		New().Find("foo").IgnoreCase(),
	}

	for _, b := range chains {
		e := b.ToState()
		assert.Equal(t, e.Prefix+e.Source+e.Suffix, e.Pattern)
	}
}

func TestExtendKeepsText(t *testing.T) {
	plain := New().Find("foo").Maybe("bar").ToState()
	flagged := New().Find("foo").IgnoreCase().Maybe("bar").ToState()

	// the flag setter merges into the flag set and nothing else
	assert.Equal(t, plain.Prefix, flagged.Prefix)
	assert.Equal(t, plain.Pattern, flagged.Pattern)
	assert.Equal(t, plain.Suffix, flagged.Suffix)
	assert.Equal(t, plain.Source, flagged.Source)
	assert.Equal(t, FlagIgnoreCase, flagged.Flags)
}

func TestFlagIdempotence(t *testing.T) {
	once := New().Find("a").Global().ToState()
	twice := New().Find("a").Global().Global().ToState()

	assert.Equal(t, once, twice)
}

func TestFlagOrderIndependence(t *testing.T) {
	ig := New().IgnoreCase().Global().ToState()
	gi := New().Global().IgnoreCase().ToState()

	assert.Equal(t, ig.Flags, gi.Flags)
	assert.Equal(t, "gi", ig.Flags.String())
	assert.Equal(t, "gi", gi.Flags.String())
}

func TestBuilderBranching(t *testing.T) {
	base := New().Find("a")

	left := base.Find("b")
	right := base.Find("c")

	// branching never disturbs the shared chain
	assert.Equal(t, "(?:a)", base.ToState().Source)
	assert.Equal(t, "(?:a)(?:b)", left.ToState().Source)
	assert.Equal(t, "(?:a)(?:c)", right.ToState().Source)
}

func TestBuilderReferentialTransparency(t *testing.T) {
	b := New().StartOfInput().Find("foo").Or("bar").Global().IgnoreCase()

	assert.Equal(t, b.ToState(), b.ToState())
	assert.Equal(t, b.String(), b.String())
}
