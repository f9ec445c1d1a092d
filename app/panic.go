package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// PanicError is a panic recovered inside a frame.
type PanicError struct {
	Tick  uint64
	Value any
	Stack []byte
}

func newPanicError(tick uint64, v any) *PanicError {
	return &PanicError{Tick: tick, Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in frame after tick %d: %v", e.Tick, e.Value)
}

// StackLines returns the non-empty lines of the captured stack.
func (e *PanicError) StackLines() []string {
	var out []string
	for _, line := range strings.Split(string(e.Stack), "\n") {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
