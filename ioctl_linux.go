//go:build linux

package rawterm

import "golang.org/x/sys/unix"

// TCSETSF drains pending output and flushes unread input before applying,
// the tcsetattr(TCSAFLUSH) behavior.
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
