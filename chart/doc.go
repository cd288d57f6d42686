// Package chart turns datasets into 3D scenes and draws them through the
// graphics3d renderer.
//
// A [Plot] composes its dataset into [graphics3d.Object3D] meshes inside a
// box of known [graphics3d.Dimension3D]. A [Chart] owns a plot, an optional
// [ChartBox], a camera and a renderer; it rebuilds the world only after
// [Chart.Invalidate] and fits the camera distance to the drawing bounds.
//
//	ds, _ := chart.NewCategoryDataset(
//	    []string{"2024", "2025"},
//	    []string{"Q1", "Q2", "Q3"},
//	    [][]float64{{3, 5, 2}, {4, 6, 3}},
//	)
//	c, _ := chart.New(&chart.BarPlot{Dataset: ds}, chart.WithChartBox(chart.DefaultChartBox()))
//	img := raster.NewRGBA(800, 600)
//	_, err := c.Draw(ctx, img, graphics3d.Rect{W: 800, H: 600})
//
// Interactive front ends redraw through a [Redrawer], which coalesces
// requests so that only the latest one is rendered.
package chart
