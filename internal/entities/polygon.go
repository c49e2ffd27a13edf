package entities

import "math"

// PolygonArea returns the area enclosed by vertices using the shoelace
// formula. Returns 0 for fewer than 3 vertices.
func PolygonArea(vertices []Point2) float64 {
	if len(vertices) < 3 {
		return 0
	}
	area := 0.0
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].X * vertices[j].Y
		area -= vertices[j].X * vertices[i].Y
	}
	return math.Abs(area / 2)
}

// PolygonPerimeter returns the closed perimeter length of vertices.
// Returns 0 for fewer than 2 vertices.
func PolygonPerimeter(vertices []Point2) float64 {
	if len(vertices) < 2 {
		return 0
	}
	perimeter := 0.0
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := vertices[j].X - vertices[i].X
		dy := vertices[j].Y - vertices[i].Y
		perimeter += math.Sqrt(dx*dx + dy*dy)
	}
	return perimeter
}

// PolygonCenter returns the vertex centroid (arithmetic mean), matching the
// backend's center calculation. Returns the origin for an empty slice.
func PolygonCenter(vertices []Point2) Point2 {
	if len(vertices) == 0 {
		return Point2{}
	}
	var sx, sy float64
	for _, v := range vertices {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(vertices))
	return Point2{X: sx / n, Y: sy / n}
}

// PolygonExtents returns the axis-aligned min/max of vertices on the floor
// plane. ok is false for an empty slice.
func PolygonExtents(vertices []Point2) (min, max Point2, ok bool) {
	if len(vertices) == 0 {
		return Point2{}, Point2{}, false
	}
	min, max = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max, true
}
