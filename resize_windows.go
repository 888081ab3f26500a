//go:build windows

package rawterm

import "time"

// The console has no SIGWINCH, so the watcher polls for size changes.
const resizePollInterval = 250 * time.Millisecond

type resizeWatcher struct {
	size    func() (rows, cols int, err error)
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newResizeWatcher(size func() (int, int, error)) *resizeWatcher {
	return &resizeWatcher{
		size:    size,
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (w *resizeWatcher) start() {
	go w.watchLoop()
}

func (w *resizeWatcher) stop() {
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

	lastRows, lastCols, _ := w.size()

	ticker := time.NewTicker(resizePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			rows, cols, err := w.size()
			if err != nil || cols <= 0 {
				continue
			}
			if rows == lastRows && cols == lastCols {
				continue
			}
			lastRows, lastCols = rows, cols
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
