package geom

// SignedArea returns the shoelace area of the polygon: positive when the
// vertices wind counterclockwise in the (X, Y) plane, negative when they
// wind clockwise. The polygon closes implicitly from the last vertex to
// the first.
func SignedArea(poly []Point2) float64 {
	var a float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return 0.5 * a
}

// EnsureCCW returns the polygon in counterclockwise order, reversing the
// input copy when it winds clockwise. The input slice is never modified.
func EnsureCCW(poly []Point2) []Point2 {
	out := make([]Point2, len(poly))
	copy(out, poly)
	if SignedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// InPolygon reports whether p lies inside the polygon, using the
// even-odd ray-crossing rule. Points exactly on an edge may be reported
// on either side; callers that care about boundary points must handle
// them beforehand. Works for convex and concave polygons alike.
func InPolygon(p Point2, poly []Point2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
