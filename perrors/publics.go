/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"github.com/adaptivelock/parl/perrors/errorglue"
)

// Panic indicates that err originated from a panic.
func Panic(err error) error {
	return Stack(errorglue.NewPanic(err))
}

func InvokeIfError(errp *error, errFn func(err error)) {
	var err error
	if errp != nil {
		err = *errp
	} else {
		err = New("perrors.InvokeIfError errp nil")
	}
	if err != nil {
		errFn(err)
	}
}
