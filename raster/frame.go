package raster

import (
	"context"
	"image"
	"sync"
	"sync/atomic"
)

// FrameBuffer renders frames offscreen and publishes each finished frame
// atomically. Readers never see a partially drawn or cancelled frame.
type FrameBuffer struct {
	width, height int

	latest atomic.Pointer[frame]
	mu     sync.Mutex // orders publishers so seq only grows
}

type frame struct {
	img *image.RGBA
	seq uint64
}

// NewFrameBuffer returns a frame buffer for width×height frames.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{width: width, height: height}
}

// Render draws a frame with draw on a new canvas. The frame is published
// only when draw returns nil and ctx is still live.
func (f *FrameBuffer) Render(ctx context.Context, draw func(context.Context, *Canvas) error) error {
	c := NewRGBA(f.width, f.height)
	if err := draw(ctx, c); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	var seq uint64 = 1
	if prev := f.latest.Load(); prev != nil {
		seq = prev.seq + 1
	}
	f.latest.Store(&frame{img: c.Image(), seq: seq})
	f.mu.Unlock()
	return nil
}

// Latest returns the last published frame and its sequence number, starting
// at 1. Before the first frame it returns nil and 0.
func (f *FrameBuffer) Latest() (*image.RGBA, uint64) {
	fr := f.latest.Load()
	if fr == nil {
		return nil, 0
	}
	return fr.img, fr.seq
}
