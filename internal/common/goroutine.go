package common

import (
	"fmt"
	"os"

	"github.com/ternarybob/arbor"
)

// SafeGo runs fn in a goroutine and logs, rather than propagates, a panic.
//
//	common.SafeGo(logger, "http-server", func() {
//	    srv.Start()
//	})
func SafeGo(logger arbor.ILogger, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stackTrace := GetStackTrace()
				if logger != nil {
					logger.Error().
						Str("goroutine", name).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("stack", stackTrace).
						Msg("Recovered from panic in goroutine")
				} else {
					fmt.Fprintf(os.Stderr, "PANIC in goroutine %s: %v\n%s\n", name, r, stackTrace)
				}
			}
		}()

		fn()
	}()
}
