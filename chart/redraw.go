package chart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/fulldump/chart3d/graphics3d"
)

// DrawFunc renders one frame. It should return promptly with ctx.Err()
// once ctx is cancelled; a cancelled frame must not be published.
type DrawFunc func(ctx context.Context) error

// Redrawer runs redraw requests on a single worker goroutine. At most one
// request is pending at a time: a new request replaces the pending one and
// cancels the frame being drawn, so the latest request always wins.
type Redrawer struct {
	draw DrawFunc

	base     context.Context
	stop     context.CancelFunc
	wake     chan struct{}
	finished chan struct{}

	mu     sync.Mutex
	closed bool
	next   context.Context
	cancel context.CancelFunc // latest request, pending or in flight
	frames int
}

// NewRedrawer starts a worker that calls draw for each coalesced request.
func NewRedrawer(draw DrawFunc) *Redrawer {
	base, stop := context.WithCancel(context.Background())
	r := &Redrawer{
		draw:     draw,
		base:     base,
		stop:     stop,
		wake:     make(chan struct{}, 1),
		finished: make(chan struct{}),
	}
	go r.run()
	return r
}

// Request asks for a redraw. It never blocks. Requests after Close are
// ignored.
func (r *Redrawer) Request() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.next, r.cancel = context.WithCancel(r.base)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Frames returns the number of draws that completed without error.
func (r *Redrawer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close cancels outstanding requests and waits for the worker to exit.
func (r *Redrawer) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.finished
		return
	}
	r.closed = true
	r.next = nil
	r.mu.Unlock()

	r.stop()
	<-r.finished
}

func (r *Redrawer) run() {
	defer close(r.finished)
	for {
		select {
		case <-r.base.Done():
			return
		case <-r.wake:
		}

		r.mu.Lock()
		ctx := r.next
		r.next = nil
		r.mu.Unlock()
		if ctx == nil {
			continue
		}

		err := r.draw(ctx)
		switch {
		case err == nil:
			r.mu.Lock()
			r.frames++
			r.mu.Unlock()
		case errors.Is(err, context.Canceled):
			graphics3d.Logger().Debug("chart: redraw superseded")
		default:
			graphics3d.Logger().Warn("chart: redraw failed", slog.Any("error", err))
		}
	}
}
