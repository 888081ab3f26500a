//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package rawterm

import (
	"os"
	"os/signal"
	"syscall"
)

// resizeWatcher turns SIGWINCH into ResizeEvents.
type resizeWatcher struct {
	size    func() (rows, cols int, err error)
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newResizeWatcher(size func() (int, int, error)) *resizeWatcher {
	return &resizeWatcher{
		size:    size,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (w *resizeWatcher) start() {
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go w.watchLoop()
}

func (w *resizeWatcher) stop() {
	signal.Stop(w.sigCh)
	close(w.stopCh)
	<-w.doneCh
}

func (w *resizeWatcher) events() <-chan ResizeEvent {
	return w.eventCh
}

func (w *resizeWatcher) watchLoop() {
	// The loop is the sole sender, so it closes eventCh on the way out and
	// consumers ranging over the channel unblock at shutdown.
	defer close(w.doneCh)
	defer close(w.eventCh)

	for {
		select {
		case <-w.stopCh:
			return
		case <-w.sigCh:
			rows, cols, err := w.size()
			if err != nil || cols <= 0 {
				continue
			}
			w.publish(ResizeEvent{Rows: rows, Cols: cols})
		}
	}
}

// publish delivers without blocking, replacing an unconsumed older event.
func (w *resizeWatcher) publish(ev ResizeEvent) {
	select {
	case w.eventCh <- ev:
	default:
		select {
		case <-w.eventCh:
		default:
		}
		w.eventCh <- ev
	}
}
