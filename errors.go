package rawterm

import "errors"

// ErrClosed is returned by operations invoked on a Session after Close
// has completed.
var ErrClosed = errors.New("rawterm: session closed")

// ErrNotTerminal is returned by Open when the input stream is not attached
// to a terminal.
var ErrNotTerminal = errors.New("rawterm: input is not a terminal")

// ErrDegenerateSize is reported (wrapped in an IOError) when the terminal
// claims a zero-column window. A zero-width terminal is unreportable, not
// a valid size.
var ErrDegenerateSize = errors.New("rawterm: terminal reports zero width")

// AccessError reports a failure to read, change, or restore the terminal
// mode. Op names the failing step.
type AccessError struct {
	Op  string
	Err error
}

func (e *AccessError) Error() string {
	return "rawterm: " + e.Op + ": " + e.Err.Error()
}

func (e *AccessError) Unwrap() error { return e.Err }

// IOError reports a failed read or size query. "No byte available" is not
// an error and is never reported this way.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "rawterm: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
