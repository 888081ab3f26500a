//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package rawterm

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	orig  *unix.Termios
}

func newBackend(in, out *os.File) backend {
	return &unixBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func (b *unixBackend) init(signalPassthrough bool) error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	orig, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return &AccessError{Op: "get mode", Err: err}
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	if !signalPassthrough {
		raw.Lflag &^= unix.ISIG
	}
	// Oflag stays untouched: output post-processing keeps translating "\n",
	// so callers do not need to switch to "\r\n".

	// VMIN=0, VTIME=0 makes read() return immediately with whatever is
	// pending, which is what backs TryReadByte.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, &raw); err != nil {
		// tcsetattr reports success if any attribute stuck, so a failure
		// may still have changed something. Roll back before giving up.
		_ = unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, orig)
		return &AccessError{Op: "set raw mode", Err: err}
	}

	b.orig = orig
	return nil
}

func (b *unixBackend) restore() error {
	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, b.orig); err != nil {
		return &AccessError{Op: "restore mode", Err: err}
	}
	return nil
}

func (b *unixBackend) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(b.inFd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, &IOError{Op: "read", Err: err}
	}
	if n == 0 {
		// VMIN=0 read with an empty queue.
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (b *unixBackend) size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, &IOError{Op: "query size", Err: err}
	}
	return int(ws.Row), int(ws.Col), nil
}
