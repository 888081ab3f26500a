package rawterm

import (
	"os"
	"sync"
)

type options struct {
	in                *os.File
	out               *os.File
	signalPassthrough bool
}

// Option configures a Session at Open time.
type Option func(*options)

// WithSignalPassthrough keeps the native signal behavior of control
// keystrokes: Ctrl-C raises an interrupt instead of arriving as byte 0x03.
// By default such keystrokes are delivered as ordinary input bytes.
func WithSignalPassthrough() Option {
	return func(o *options) { o.signalPassthrough = true }
}

// WithFiles binds the session to explicit input and output files instead of
// os.Stdin and os.Stdout. Both must refer to a terminal device.
func WithFiles(in, out *os.File) Option {
	return func(o *options) {
		o.in = in
		o.out = out
	}
}

// Session holds exclusive raw-mode control of a terminal from Open until
// Close. See the package documentation for the single-owner contract.
type Session struct {
	mu      sync.Mutex
	b       backend
	watcher *resizeWatcher
	closed  bool
}

// Open captures the terminal's current mode, switches it to raw mode, and
// returns the live session. On any failure the terminal mode is left
// unmodified and no session is produced.
//
// Raw mode here means: no canonical line buffering, no echo, no extended
// input processing, no CR-to-NL input translation, and non-blocking reads.
// Output processing is left alone so "\n" keeps working on the way out.
func Open(opts ...Option) (*Session, error) {
	cfg := options{in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := newBackend(cfg.in, cfg.out)
	if err := b.init(cfg.signalPassthrough); err != nil {
		return nil, err
	}
	return &Session{b: b}, nil
}

// TryReadByte returns one pending input byte. It never waits: when no byte
// is available at call time it returns ok=false immediately. Each call
// consumes at most one byte; multi-byte sequences are the caller's to
// assemble.
func (s *Session) TryReadByte() (b byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false, ErrClosed
	}
	return s.b.readByte()
}

// Size returns the terminal's current dimensions. The query hits the
// terminal every call, so it stays correct across window resizes.
func (s *Session) Size() (rows, cols int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, 0, ErrClosed
	}
	rows, cols, err = s.b.size()
	if err != nil {
		return 0, 0, err
	}
	if cols <= 0 {
		return 0, 0, &IOError{Op: "query size", Err: ErrDegenerateSize}
	}
	return rows, cols, nil
}

// Resizes returns a channel delivering window size changes. The watcher
// starts on first call and stops at Close, which also closes the channel,
// so ranging over it terminates at shutdown. Only the latest unconsumed
// event is retained. On an already-closed session the returned channel is
// closed too.
func (s *Session) Resizes() <-chan ResizeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		ch := make(chan ResizeEvent)
		close(ch)
		return ch
	}
	if s.watcher == nil {
		s.watcher = newResizeWatcher(s.b.size)
		s.watcher.start()
	}
	return s.watcher.events()
}

// Active reports whether the session still owns the terminal, true from a
// successful Open until restoration has run.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close restores the terminal to the mode captured at Open. The first call
// performs the restoration; every later call is a no-op returning nil.
// A restoration failure is returned as an AccessError and must not be
// ignored: it means the terminal may still be in raw mode. Safe to defer.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.watcher != nil {
		s.watcher.stop()
		s.watcher = nil
	}
	return s.b.restore()
}
