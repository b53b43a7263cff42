package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// restore holds a func() that returns the display to a sane state
// before the crash report is printed (e.g. tcell's screen.Fini)
var restore atomic.Value

// SetRestore registers the display restore hook used on crash
func SetRestore(fn func()) {
	restore.Store(fn)
}

// HandleCrash is the unified panic handler: restore the display, print
// the stack trace, exit
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := restore.Load().(func()); ok && fn != nil {
		fn()
	}

	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery. Use this
// instead of the 'go' keyword so a panicking tick loop still restores
// the terminal.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
