/*
© 2024–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pruntime

// Stack is a parsed stack trace for a single thread
//   - obtained using [NewStack]
//   - implemented by [StackR]
type Stack interface {
	// a list of code locations for this thread, most recent first
	Frames() (frames []Frame)
	// the goroutine function used to launch this thread, never nil
	GoFunction() (goFunction *CodeLocation)
	// true if the thread is the main thread
	IsMain() (isMainThread bool)
	// short code locations for all stack frames, most recent first
	Shorts(prepend string) (shorts string)
	// multi-line dump of the entire Stack value
	Dump() (s string)
	// multi-line stack trace, most recent code location first
	String() (s string)
}
