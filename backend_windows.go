//go:build windows

package rawterm

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

type winBackend struct {
	in      *os.File
	out     *os.File
	hin     windows.Handle
	hout    windows.Handle
	origIn  uint32
	origOut uint32
}

func newBackend(in, out *os.File) backend {
	return &winBackend{
		in:   in,
		out:  out,
		hin:  windows.Handle(in.Fd()),
		hout: windows.Handle(out.Fd()),
	}
}

func (b *winBackend) init(signalPassthrough bool) error {
	if !term.IsTerminal(int(b.in.Fd())) {
		return ErrNotTerminal
	}

	if err := windows.GetConsoleMode(b.hin, &b.origIn); err != nil {
		return &AccessError{Op: "get input mode", Err: err}
	}
	if err := windows.GetConsoleMode(b.hout, &b.origOut); err != nil {
		return &AccessError{Op: "get output mode", Err: err}
	}

	inMode := b.origIn | windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	inMode &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT
	if !signalPassthrough {
		// Without processed input, Ctrl-C is an ordinary 0x03 byte.
		inMode &^= windows.ENABLE_PROCESSED_INPUT
	}

	// VT processing only. Newline auto-return is left enabled so "\n"
	// keeps moving the cursor to column zero, matching the unix side
	// where output post-processing stays on.
	outMode := b.origOut | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING

	if err := windows.SetConsoleMode(b.hout, outMode); err != nil {
		return &AccessError{Op: "set output mode", Err: err}
	}
	if err := windows.SetConsoleMode(b.hin, inMode); err != nil {
		_ = windows.SetConsoleMode(b.hout, b.origOut)
		return &AccessError{Op: "set input mode", Err: err}
	}
	return nil
}

func (b *winBackend) restore() error {
	errOut := windows.SetConsoleMode(b.hout, b.origOut)
	errIn := windows.SetConsoleMode(b.hin, b.origIn)
	if errOut != nil {
		return &AccessError{Op: "restore output mode", Err: errOut}
	}
	if errIn != nil {
		return &AccessError{Op: "restore input mode", Err: errIn}
	}
	return nil
}

func (b *winBackend) readByte() (byte, bool, error) {
	// The input handle is signaled whenever any record is queued, including
	// mouse, focus, and resize records that carry no input byte. Each
	// iteration consumes one record, so the loop terminates once the queue
	// is drained, and it never waits on an empty queue.
	for {
		ev, err := windows.WaitForSingleObject(b.hin, 0)
		if err != nil {
			return 0, false, &IOError{Op: "poll input", Err: err}
		}
		if ev != windows.WAIT_OBJECT_0 {
			return 0, false, nil
		}

		var rec windows.InputRecord
		var read uint32
		if err := windows.ReadConsoleInput(b.hin, &rec, 1, &read); err != nil {
			return 0, false, &IOError{Op: "read", Err: err}
		}
		if read == 0 {
			return 0, false, nil
		}
		if ch, ok := keyDownChar(&rec); ok {
			return ch, true, nil
		}
	}
}

// keyDownChar extracts the input byte from a key-down record. Non-key
// records, key releases, and pure modifier presses carry none.
func keyDownChar(rec *windows.InputRecord) (byte, bool) {
	if rec.EventType != windows.KEY_EVENT {
		return 0, false
	}
	ke := rec.KeyEvent()
	if ke.KeyDown == 0 || ke.UnicodeChar == 0 {
		return 0, false
	}
	return byte(ke.UnicodeChar), true
}

func (b *winBackend) size() (int, int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.hout, &info); err != nil {
		return 0, 0, &IOError{Op: "query size", Err: err}
	}
	rows := int(info.Window.Bottom-info.Window.Top) + 1
	cols := int(info.Window.Right-info.Window.Left) + 1
	return rows, cols, nil
}
