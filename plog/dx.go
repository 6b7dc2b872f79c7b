/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package plog

import (
	"github.com/adaptivelock/parl/perrors"
	"github.com/adaptivelock/parl/pruntime"
)

// Dx prints to stderr with code location. Thread-safe.
//   - Dx can be used by packages imported by parl
//   - Dx is meant for temporary output intended to be removed before check-in
func Dx(format string, a ...interface{}) {
	if err := stderrLogLogger.Output(0,
		pruntime.AppendLocation(
			Sprintf(format, a...),
			pruntime.NewCodeLocation(pruntimeDframes),
		)); err != nil {
		panic(perrors.ErrorfPF("log.Logger.Output error: %w", err))
	}
}
