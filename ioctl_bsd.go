//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package rawterm

import "golang.org/x/sys/unix"

// TIOCSETAF is the BSD spelling of tcsetattr(TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
