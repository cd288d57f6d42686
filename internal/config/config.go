// Package config reads chart descriptions from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType = errors.New("config: unknown chart type")
	ErrInvalid     = errors.New("config: invalid chart description")
)

// Chart types.
const (
	TypeBar     = "bar"
	TypeLine    = "line"
	TypeArea    = "area"
	TypePie     = "pie"
	TypeScatter = "scatter"
	TypeSurface = "surface"
)

// Config describes one chart.
type Config struct {
	Type   string `yaml:"type"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	Camera   Camera   `yaml:"camera"`
	Renderer Renderer `yaml:"renderer"`
	Box      *Box     `yaml:"box"`
	Size     *Size    `yaml:"size"`
	Colors   []Color  `yaml:"colors"`

	Categories []string    `yaml:"categories"`
	Series     []Series    `yaml:"series"`
	Slices     []Slice     `yaml:"slices"`
	Markers    []string    `yaml:"markers"`
	Surface    *Surface    `yaml:"surface"`
	Sun        *[3]float64 `yaml:"sun"`
}

// Camera angles are in degrees. A zero Distance fits the camera to the
// image.
type Camera struct {
	Theta    float64 `yaml:"theta"`
	Phi      float64 `yaml:"phi"`
	Roll     float64 `yaml:"roll"`
	Distance float64 `yaml:"distance"`
}

type Renderer struct {
	ProjectionDistance float64  `yaml:"projection_distance"`
	Margin             *float64 `yaml:"margin"`
	OutlineWidth       float64  `yaml:"outline_width"`
	Background         *Color   `yaml:"background"`
}

type Box struct {
	Color   *Color  `yaml:"color"`
	Padding float64 `yaml:"padding"`
	Ceiling *bool   `yaml:"ceiling"`
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// Series is a named row of category values (bar, line, area) or of points
// (scatter). A null value is missing.
type Series struct {
	Name   string       `yaml:"name"`
	Values []*float64   `yaml:"values"`
	Points [][3]float64 `yaml:"points"`
}

// Slice is one pie segment. Explode is a share of the radius.
type Slice struct {
	Key     string  `yaml:"key"`
	Value   float64 `yaml:"value"`
	Explode float64 `yaml:"explode"`
}

// Surface selects a built-in function sampled over X and Z.
type Surface struct {
	Function string     `yaml:"function"`
	X        [2]float64 `yaml:"x"`
	Z        [2]float64 `yaml:"z"`
	Steps    int        `yaml:"steps"`
	Low      *Color     `yaml:"low"`
	High     *Color     `yaml:"high"`
}

// Defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTheta  = -30.0
	DefaultPhi    = 20.0
)

// Load reads and validates the chart description at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a chart description, fills in defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: Camera{Theta: DefaultTheta, Phi: DefaultPhi},
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the description for the selected chart type.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("image size %dx%d", c.Width, c.Height)
	}
	for _, v := range []float64{c.Camera.Theta, c.Camera.Phi, c.Camera.Roll} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("camera angle %v", v)
		}
	}
	if c.Camera.Distance < 0 {
		return invalid("camera distance %v", c.Camera.Distance)
	}
	if c.Size != nil && (c.Size.Width <= 0 || c.Size.Height <= 0 || c.Size.Depth <= 0) {
		return invalid("size %+v", *c.Size)
	}

	switch c.Type {
	case TypeBar, TypeLine, TypeArea:
		if len(c.Categories) == 0 || len(c.Series) == 0 {
			return invalid("%s chart needs categories and series", c.Type)
		}
		for _, s := range c.Series {
			if len(s.Values) != len(c.Categories) {
				return invalid("series %q has %d values for %d categories", s.Name, len(s.Values), len(c.Categories))
			}
		}
	case TypePie:
		if len(c.Slices) == 0 {
			return invalid("pie chart needs slices")
		}
		for _, s := range c.Slices {
			if s.Value < 0 || s.Explode < 0 {
				return invalid("slice %q: negative value or explode", s.Key)
			}
		}
	case TypeScatter:
		if len(c.Series) == 0 {
			return invalid("scatter chart needs series")
		}
	case TypeSurface:
		if c.Surface == nil {
			return invalid("surface chart needs a surface")
		}
		if _, ok := surfaces[c.Surface.Function]; !ok {
			return invalid("unknown surface function %q", c.Surface.Function)
		}
		if !(c.Surface.X[1] > c.Surface.X[0]) || !(c.Surface.Z[1] > c.Surface.Z[0]) {
			return invalid("surface ranges x %v, z %v", c.Surface.X, c.Surface.Z)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
