// Package boundary resolves collision-aware character movement inside a
// floor's walkable outline. Containment is a standard ray-crossing test; a
// near-circular collision volume is approximated by sampling the center plus
// four points offset by the collision radius along +x/-x/+z/-z.
package boundary

import (
	"mall-engine/internal/entities"
)

// Contains reports whether the point (x, z) lies inside the outline using
// the ray-crossing algorithm. An outline with fewer than 3 vertices is
// degenerate: containment reports true for every point, which disables
// collision rather than crashing.
func Contains(outline entities.Outline, x, z float32) bool {
	v := outline.Vertices
	n := len(v)
	if n < 3 {
		return true
	}
	px, pz := float64(x), float64(z)
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, zi := v[i].X, v[i].Y
		xj, zj := v[j].X, v[j].Y
		if (zi > pz) != (zj > pz) && px < (xj-xi)*(pz-zi)/(zj-zi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
