// Package xerrors holds the sentinel errors for this module's own
// implementation bugs, as opposed to malformed input: a state machine
// reaching a branch its design guarantees is unreachable. Every
// malformed-PGN condition is reported through package diagnostic instead
// and never reaches here.
package xerrors

import "fmt"

// ErrUnreachable marks a defensive branch the component design guarantees
// will never run for any input, however malformed.
var ErrUnreachable = fmt.Errorf("pgnsyntax: unreachable state")

// Wrap attaches context to err, or returns nil if err is nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context string.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
