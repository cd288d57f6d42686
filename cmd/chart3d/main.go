// Command chart3d renders a YAML chart description to a PNG file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fulldump/chart3d/graphics3d"
	"github.com/fulldump/chart3d/internal/config"
	"github.com/fulldump/chart3d/raster"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("chart3d failed", slog.Any("err", err))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("chart3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path    = fs.String("config", "chart.yaml", "chart description")
		output  = fs.String("o", "chart.png", "output file")
		width   = fs.Int("width", 0, "image width, overrides the config")
		height  = fs.Int("height", 0, "image height, overrides the config")
		theta   = fs.Float64("theta", 0, "camera azimuth in degrees, overrides the config")
		phi     = fs.Float64("phi", 0, "camera elevation in degrees, overrides the config")
		roll    = fs.Float64("roll", 0, "camera roll in degrees, overrides the config")
		verbose = fs.Bool("v", false, "log frame statistics")
		dryRun  = fs.Bool("dry-run", false, "record drawing operations without writing an image")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	graphics3d.SetLogger(logger)

	c, err := config.Load(*path)
	if err != nil {
		return err
	}
	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Width = *width
		case "height":
			c.Height = *height
		case "theta":
			c.Camera.Theta = *theta
		case "phi":
			c.Camera.Phi = *phi
		case "roll":
			c.Camera.Roll = *roll
		}
	})
	if err := c.Validate(); err != nil {
		return err
	}

	ch, err := c.Build()
	if err != nil {
		return err
	}

	start := time.Now()
	if *dryRun {
		rec := &raster.Recorder{}
		info, err := ch.Draw(ctx, rec, c.Bounds())
		if err != nil {
			return err
		}
		logger.Info("dry run",
			slog.String("type", c.Type),
			slog.Int("ops", len(rec.Ops)),
			slog.Int("fills", rec.Count(raster.OpFill)),
			slog.Int("strokes", rec.Count(raster.OpStroke)),
			slog.Int("faces", info.Faces),
			slog.Int("drawn", info.Drawn))
		return nil
	}

	canvas := raster.NewRGBA(c.Width, c.Height)
	info, err := ch.Draw(ctx, canvas, c.Bounds())
	if err != nil {
		return err
	}
	if err := writePNG(*output, canvas); err != nil {
		return err
	}
	logger.Info("chart saved",
		slog.String("file", *output),
		slog.String("size", fmt.Sprintf("%dx%d", c.Width, c.Height)),
		slog.Int("drawn", info.Drawn),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func writePNG(path string, canvas *raster.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
