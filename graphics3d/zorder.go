package graphics3d

import "sort"

// depthFace is a face paired with its average eye-space depth.
type depthFace struct {
	WorldFace
	depth float64
}

// SortByDepth orders faces for the painter's algorithm: farthest from the
// camera first. Eye space looks down -Z, so farther faces have a smaller
// average Z. Faces at equal depth keep their world order.
func SortByDepth(faces []WorldFace, eye []Point3D) []WorldFace {
	df := make([]depthFace, len(faces))
	for i, f := range faces {
		df[i] = depthFace{WorldFace: f, depth: f.Face.AverageZ(eye, f.Offset)}
	}
	sort.SliceStable(df, func(i, j int) bool {
		return df[i].depth < df[j].depth
	})
	out := make([]WorldFace, len(df))
	for i, f := range df {
		out[i] = f.WorldFace
	}
	return out
}
