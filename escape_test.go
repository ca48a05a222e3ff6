package verbex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteLiteral(t *testing.T) {
	testcases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"digits", "0123456789", "0123456789"},
		{"dot", "www.google.com", `www\.google\.com`},
		{"colon and slash", "://", `\://`},
		{"backslash", `a\b`, `a\\b`},
		{"brackets", "[a-z]", `\[a-z\]`},
		{"groups", "(foo)", `\(foo\)`},
		{"braces", "{1,2}", `\{1,2\}`},
		{"quantifiers", "a*b+c?", `a\*b\+c\?`},
		{"anchors", "^foo$", `\^foo\$`},
		{"alternation", "a|b", `a\|b`},
		{"equals", "a=b", `a\=b`},
		{"all special", `].|*?+(){}^$\:=[`, `\]\.\|\*\?\+\(\)\{\}\^\$\\\:\=\[`},
		{"non-ascii", "äöü", "äöü"},
		{"mixed non-ascii", "ä.ö", `ä\.ö`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, QuoteLiteral(tc.in))
		})
	}
}

func TestQuoteLiteralUnchanged(t *testing.T) {
	// without metacharacters the input string is returned as-is
	s := "plain text without anything special"
	assert.Equal(t, s, QuoteLiteral(s))
}

func TestSpecialSet(t *testing.T) {
	const specials = `].|*?+(){}^$\:=[`

	for b := byte(0); b < 128; b++ {
		want := false
		for i := 0; i < len(specials); i++ {
			if specials[i] == b {
				want = true
				break
			}
		}

		assert.Equal(t, want, special(b), "byte %q", b)
	}

	// the slash is deliberately not special
	assert.False(t, special('/'))
}
