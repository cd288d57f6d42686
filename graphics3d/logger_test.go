package graphics3d

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestSetLogger_NilRestoresDefault(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if _, ok := Logger().Handler().(nopHandler); !ok {
		t.Errorf("Logger().Handler() = %T, want nopHandler", Logger().Handler())
	}
}

func TestRender_LogsDegenerateFaces(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	o := NewObject3D(red, false)
	o.AddVertexXYZ(0, 0, 0)
	o.AddVertexXYZ(0, 0, 0)
	o.AddVertexXYZ(0, 0, 0)
	f, _ := NewFace([]int{0, 1, 2}, color.NRGBA{R: 1, A: 255}, false)
	_ = o.AddFace(f.DoubleSided())
	w := NewWorld()
	_ = w.Add(o)
	vp, _ := NewViewPoint3D(0, 0, 10, 0)
	r, _ := NewRenderer()

	if _, err := r.Render(context.Background(), w, vp, &recordingCanvas{}, bounds); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "skipping degenerate face") {
		t.Errorf("log output missing warning:\n%s", out)
	}
	if !strings.Contains(out, "frame rendered") {
		t.Errorf("log output missing frame statistics:\n%s", out)
	}
}
