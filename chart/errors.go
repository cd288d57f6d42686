package chart

import "errors"

var (
	// ErrNilPlot is returned when a chart is created without a plot.
	ErrNilPlot = errors.New("chart: nil plot")

	// ErrNilDataset is returned when a plot has no dataset.
	ErrNilDataset = errors.New("chart: nil dataset")

	// ErrDatasetShape is returned when dataset keys and values disagree in
	// length.
	ErrDatasetShape = errors.New("chart: dataset shape mismatch")

	// ErrInvalidValue is returned for values a dataset cannot hold.
	ErrInvalidValue = errors.New("chart: invalid value")

	// ErrInvalidSize is returned for plot sizes that are not positive and
	// finite.
	ErrInvalidSize = errors.New("chart: size must be positive and finite")

	// ErrUnknownMarker is returned by ParseMarker.
	ErrUnknownMarker = errors.New("chart: unknown marker")
)
