package graphics3d

import (
	"fmt"
	"image/color"
)

// Renderer defaults.
const (
	// DefaultProjectionDistance is the distance from the camera to the
	// projection plane. Larger values flatten the perspective.
	DefaultProjectionDistance = 1500.0

	// DefaultMargin is the share of the viewport kept free around the scene
	// when fitting the camera distance.
	DefaultMargin = 0.25

	// DefaultOutlineWidth is the stroke width of outlined faces.
	DefaultOutlineWidth = 1.0
)

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := graphics3d.NewRenderer(
//	    graphics3d.WithProjectionDistance(1200),
//	    graphics3d.WithBackground(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	projDist     float64
	margin       float64
	outlineWidth float64
	background   color.NRGBA
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		projDist:     DefaultProjectionDistance,
		margin:       DefaultMargin,
		outlineWidth: DefaultOutlineWidth,
	}
}

func (o rendererOptions) validate() error {
	if !(o.projDist > 0) || !finite(o.projDist) {
		return fmt.Errorf("%w: projection distance=%v", ErrInvalidDistance, o.projDist)
	}
	if !(o.margin >= 0 && o.margin < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidMargin, o.margin)
	}
	if !(o.outlineWidth > 0) || !finite(o.outlineWidth) {
		return fmt.Errorf("%w: outline width=%v", ErrInvalidExtent, o.outlineWidth)
	}
	return nil
}

// WithProjectionDistance sets the distance from the camera to the projection
// plane. It must be positive.
func WithProjectionDistance(d float64) RendererOption {
	return func(o *rendererOptions) {
		o.projDist = d
	}
}

// WithMargin sets the share of the viewport kept free by OptimalDistance.
func WithMargin(m float64) RendererOption {
	return func(o *rendererOptions) {
		o.margin = m
	}
}

// WithOutlineWidth sets the stroke width used for outlined faces.
func WithOutlineWidth(w float64) RendererOption {
	return func(o *rendererOptions) {
		o.outlineWidth = w
	}
}

// WithBackground fills the drawing bounds with c before any face is drawn.
// A transparent color (the default) leaves the canvas untouched.
func WithBackground(c color.NRGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}
