/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package errorglue

import (
	"fmt"
	"io"
	"strconv"
)

// RichError is an error chain that behaves like fmt.Formatter.
// this allows for custom print-outs using %+v and %-v
// RichError has publics Error() Unwrap() Format()
type RichError struct {
	ErrorChain
}

// RichError behaves like an error
var _ error = &RichError{}

// RichError is an error chain
var _ Unwrapper = &RichError{}

// RichError has features for fmt.Printf
var _ fmt.Formatter = &RichError{}

func newRichError(err error) *RichError {
	return &RichError{*newErrorChain(err)}
}

// Format provides the fmt.Formatter function
func (e *RichError) Format(s fmt.State, verb rune) {
	if isValueVerb(verb) {
		if format := PrintfFormat(s); format != DefaultFormat {
			ChainString(e, format)
		}
		io.WriteString(s, e.Error())
	} else if isStringVerb(verb) {
		io.WriteString(s, e.Error())
	} else if isQuoteVerb(verb) {
		io.WriteString(s, strconv.Quote(e.Error()))
	}
}

// isValueVerb is true for %v and %+v
func isValueVerb(verb rune) bool { return verb == 'v' }

// isStringVerb is true for %s
func isStringVerb(verb rune) bool { return verb == 's' }

// isQuoteVerb is true for %q
func isQuoteVerb(verb rune) bool { return verb == 'q' }
