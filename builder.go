// Package verbex implements a composable builder for regular expression
// patterns. Small chainable operations accumulate fragments of pattern text,
// track a prefix/suffix wrapping context used by alternation and merge a set
// of matching flags; a terminal Compile produces the compiled pattern.
//
// Patterns that stay within the stdlib regexp syntax are compiled with the
// Go regex engine; patterns using constructs it does not support, such as
// lookaheads, are compiled with github.com/dlclark/regexp2.
package verbex

// Builder derives a new pattern state from an accumulated one. Builders
// compose by plain function composition: every combinator method evaluates
// the receiver chain first and then applies its own step, so method order
// equals text-emission order.
//
// A Builder never mutates shared data and may be branched and re-evaluated
// freely; evaluating the same chain twice yields identical states.
type Builder func(State) State

// New returns the empty builder chain.
func New() Builder {
	return func(e State) State { return e }
}

// Add appends a raw pattern fragment to the accumulated source. It is the
// single text-emission primitive; every fragment combinator reduces to it.
// The fragment is embedded verbatim, so literal text must be escaped with
// QuoteLiteral first.
func (b Builder) Add(fragment string) Builder {
	return func(e State) State {
		return b(e).add(fragment)
	}
}

// addPrefix appends text to the accumulated prefix.
func (b Builder) addPrefix(text string) Builder {
	return func(e State) State {
		return b(e).addPrefix(text)
	}
}

// addSuffix prepends text to the accumulated suffix, so that wrappings
// opened later close before wrappings opened earlier.
func (b Builder) addSuffix(text string) Builder {
	return func(e State) State {
		return b(e).addSuffix(text)
	}
}

// extend evaluates the entire receiver chain to its accumulated state, then
// applies setter to the empty state to obtain a minimal state carrying just
// a flag, and grafts that flag into the accumulated one. The text fields of
// the accumulated state are never touched, which is what keeps flag setters
// commutative with every text-emitting combinator.
func (b Builder) extend(setter func(State) State) Builder {
	return func(e State) State {
		accumulated := b(e)
		minimal := setter(State{})

		return accumulated.mergeFlags(minimal.Flags)
	}
}

// withFlag returns a builder with the given flag enabled. Enabling the same
// flag twice is idempotent.
func (b Builder) withFlag(f Flags) Builder {
	return b.extend(func(e State) State {
		return e.mergeFlags(f)
	})
}

// ToState evaluates the builder chain starting from the empty state and
// returns the final accumulated state.
func (b Builder) ToState() State {
	return b(State{})
}
