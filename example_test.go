package verbex_test

import (
	"fmt"

	"github.com/magnetde/verbex"
)

// ExampleNew demonstrates building and rendering a URL pattern.
func ExampleNew() {
	b := verbex.New().
		StartOfInput().
		Find("http").
		Maybe("s").
		Find("://").
		Maybe("www.").
		AnythingBut(" ").
		EndOfInput()

	fmt.Println(b)

	r := b.MustCompile()
	fmt.Println(r.MatchString("https://www.google.com"))
	fmt.Println(r.MatchString("http://goog le.com"))
	// Output:
	// /^(?:http)(?:s)?(?:\:\/\/)(?:www\.)?(?:[^ ]*)$/
	// true
	// false
}

// ExampleBuilder_Or demonstrates the wrapping alternation.
func ExampleBuilder_Or() {
	b := verbex.New().Find("foo").Or("bar")

	fmt.Println(b)
	fmt.Println(b.MustCompile().MatchString("a bar"))
	// Output:
	// /(?:(?:foo))|(?:(?:bar))/
	// true
}

// ExampleRegexp_FindAllString demonstrates global iteration.
func ExampleRegexp_FindAllString() {
	r := verbex.New().Digit().OneOrMore().Global().MustCompile()

	fmt.Println(r.FindAllString("10 apples, 42 pears"))
	// Output: [10 42]
}
