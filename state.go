package verbex

// State is the accumulated snapshot of a pattern under construction.
// It is an immutable value: every operation returns a new State and never
// modifies the receiver. The zero value is the empty state.
//
// Pattern is always the concatenation Prefix + Source + Suffix; it is a
// derived field and is recomputed by every operation that changes one of
// the other three text fields.
type State struct {
	Prefix  string
	Pattern string
	Suffix  string
	Source  string
	Flags   Flags
}

// add returns a copy of the state with the fragment appended to Source.
func (e State) add(fragment string) State {
	e.Source += fragment
	e.Pattern = e.Prefix + e.Source + e.Suffix
	return e
}

// addPrefix returns a copy of the state with text appended to the prefix,
// preserving any wrapping that was opened earlier.
func (e State) addPrefix(text string) State {
	e.Prefix += text
	e.Pattern = e.Prefix + e.Source + e.Suffix
	return e
}

// addSuffix returns a copy of the state with text prepended to the suffix.
// Prepending makes wrappings unwind in reverse order, so the last-opened
// wrapping closes innermost.
func (e State) addSuffix(text string) State {
	e.Suffix = text + e.Suffix
	e.Pattern = e.Prefix + e.Source + e.Suffix
	return e
}

// mergeFlags returns a copy of the state with f merged into the flag set.
// The text fields are left untouched.
func (e State) mergeFlags(f Flags) State {
	e.Flags = e.Flags.Merge(f)
	return e
}
