package common

import "fmt"

// Assert panics with a formatted message when condition is false. It
// guards internal invariants that must never be violated by any code
// path in this module, as distinct from recoverable conditions, which
// are returned as bool/optional results instead (see storage/buffer).
func Assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
