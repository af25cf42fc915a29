package thicket

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics that signal programming errors.
// Recover the panic value and test it with errors.Is.
var (
	// ErrUnknownTab is raised when selecting a tab that was never added.
	ErrUnknownTab = errors.New("thicket: tab not in panel")
	// ErrUnknownCard is raised when selecting a card that was never added.
	ErrUnknownCard = errors.New("thicket: card not in panel")
	// ErrIndexOutOfRange is raised for indexes outside a panel's registry.
	ErrIndexOutOfRange = errors.New("thicket: index out of range")
	// ErrInvalidArgument is raised for missing or nonsensical arguments.
	ErrInvalidArgument = errors.New("thicket: invalid argument")
)

// fail panics with an error wrapping sentinel.
func fail(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}
