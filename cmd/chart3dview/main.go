// Command chart3dview shows a chart description in a window and lets the
// user move the camera around it.
//
//	arrows  pan and tilt
//	Q / E   roll
//	+ / -   zoom
//	R       reset the camera
//	L       reload the chart description
//	Esc     quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fulldump/chart3d/chart"
	"github.com/fulldump/chart3d/graphics3d"
	"github.com/fulldump/chart3d/internal/config"
	"github.com/fulldump/chart3d/raster"
)

const (
	title     = "chart3d"
	angleStep = math.Pi / 60
	zoomStep  = 1.1
)

func main() {
	runtime.LockOSThread()

	path := flag.String("config", "chart.yaml", "chart description")
	verbose := flag.Bool("v", false, "log frame statistics")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	graphics3d.SetLogger(logger)

	if err := run(*path, logger); err != nil {
		logger.Error("chart3dview failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(path string, logger *slog.Logger) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	ch, err := cfg.Build()
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	windowTitle := title
	if cfg.Title != "" {
		windowTitle = cfg.Title + " - " + title
	}
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}
	logger.Info("opengl ready", slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	defer gl.DeleteProgram(program)
	gl.UseProgram(program)

	projection := mgl32.Ortho2D(0, float32(cfg.Width), float32(cfg.Height), 0)
	gl.UniformMatrix4fv(gl.GetUniformLocation(program, gl.Str("projection\x00")), 1, false, &projection[0])
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	quad := newFrameQuad(program, cfg.Width, cfg.Height)
	defer quad.delete()

	bounds := cfg.Bounds()
	frames := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	redraw := chart.NewRedrawer(func(ctx context.Context) error {
		return frames.Render(ctx, func(ctx context.Context, c *raster.Canvas) error {
			_, err := ch.Draw(ctx, c, bounds)
			return err
		})
	})
	defer redraw.Close()
	// Data changes invalidate the chart; camera moves request a frame
	// directly.
	ch.OnInvalidate(redraw.Request)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyL {
			reload(path, ch, logger)
			return
		}
		if handleKey(w, key, cfg, ch) {
			redraw.Request()
		}
	})
	redraw.Request()

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	var shown uint64
	lastFpsTime := glfw.GetTime()
	frameCount := 0
	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | frames: %d", windowTitle, frameCount, redraw.Frames()))
			frameCount = 0
			lastFpsTime = currentTime
		}

		if img, seq := frames.Latest(); seq != shown && img != nil {
			quad.upload(img.Pix)
			shown = seq
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		quad.draw()
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// handleKey applies a camera key and reports whether a redraw is needed.
func handleKey(w *glfw.Window, key glfw.Key, cfg *config.Config, ch *chart.Chart) bool {
	vp := ch.ViewPoint()
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
		return false
	case glfw.KeyLeft:
		vp.PanLeftRight(-angleStep)
	case glfw.KeyRight:
		vp.PanLeftRight(angleStep)
	case glfw.KeyUp:
		vp.MoveUpDown(angleStep)
	case glfw.KeyDown:
		vp.MoveUpDown(-angleStep)
	case glfw.KeyQ:
		vp.Roll(-angleStep)
	case glfw.KeyE:
		vp.Roll(angleStep)
	case glfw.KeyEqual, glfw.KeyKPAdd:
		_ = vp.Zoom(zoomStep)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		_ = vp.Zoom(1 / zoomStep)
	case glfw.KeyR:
		home, err := cfg.ViewPoint()
		if err != nil {
			return false
		}
		if err := vp.SetAngles(home.Theta(), home.Phi()); err != nil {
			return false
		}
		vp.Roll(home.RollAngle() - vp.RollAngle())
		if cfg.Camera.Distance > 0 {
			_ = vp.SetRho(cfg.Camera.Distance)
		} else if err := ch.Fit(graphics3d.Size2D{Width: float64(cfg.Width), Height: float64(cfg.Height)}); err != nil {
			graphics3d.Logger().Warn("chart3dview: fit failed", slog.Any("err", err))
		}
	default:
		return false
	}
	return true
}

// reload replaces the plot with the one now described at path. The window
// size and camera stay as they are.
func reload(path string, ch *chart.Chart, logger *slog.Logger) {
	cfg, err := config.Load(path)
	if err == nil {
		var plot chart.Plot
		if plot, err = cfg.Plot(); err == nil {
			err = ch.SetPlot(plot)
		}
	}
	if err != nil {
		logger.Warn("reload failed", slog.String("config", path), slog.Any("err", err))
		return
	}
	logger.Info("chart reloaded", slog.String("config", path))
}
