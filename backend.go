package rawterm

// backend abstracts the platform-specific terminal operations behind one
// contract. Unix termios and the Windows console API implement it with the
// same semantics and the same error taxonomy.
type backend interface {
	// init captures the current terminal mode and applies the derived raw
	// mode. On failure the terminal is left as it was found.
	init(signalPassthrough bool) error

	// restore reapplies the mode captured by init.
	restore() error

	// readByte returns one pending input byte, or ok=false immediately
	// when none is waiting.
	readByte() (b byte, ok bool, err error)

	// size queries the current window dimensions.
	size() (rows, cols int, err error)
}

// ResizeEvent reports a change of the terminal window size.
type ResizeEvent struct {
	Rows int
	Cols int
}
