// Package graphics3d projects simple 3D geometry onto a 2D canvas.
//
// # Overview
//
// A [World] holds [Object3D] meshes (vertices plus polygonal [Face]s that
// reference vertices by index). A [ViewPoint3D] describes a camera in
// spherical coordinates around the world origin. The [Renderer] transforms
// every vertex into eye space, projects it onto a plane at a fixed distance
// from the camera and draws the faces back to front (painter's algorithm),
// culling faces that point away from the camera and flat shading the rest
// against the world's sun direction.
//
// # Coordinate System
//
// World coordinates are right-handed with Y up. Eye space has the camera at
// the origin looking down -Z. Projected [Point2D] values use canvas
// conventions: origin at the centre of the drawing bounds, X right, Y down.
//
// Faces list their vertices counter-clockwise as seen from outside the
// solid, so the outward normal is (v1-v0)×(v2-v0).
//
// # Quick Start
//
//	box, err := graphics3d.Box(0, 2, 0, 2, 0, 2, color.NRGBA{R: 200, A: 255})
//	if err != nil {
//	    return err
//	}
//	world := graphics3d.NewWorld()
//	world.Add(box)
//
//	vp, _ := graphics3d.NewViewPoint3D(0.6, 0.4, 20, 0)
//	r, _ := graphics3d.NewRenderer()
//	info, err := r.Render(ctx, world, vp, canvas, graphics3d.Rect{W: 800, H: 600})
package graphics3d
