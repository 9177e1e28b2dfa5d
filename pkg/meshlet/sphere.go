package meshlet

import "github.com/go-gl/mathgl/mgl32"

// FitSphere computes an approximate bounding sphere with Ritter's method.
// The growth step moves the center halfway toward the outlying point and
// averages the radii; the result is conservative, not minimal.
// points must not be empty.
func FitSphere(points []mgl32.Vec3) Sphere {
	if len(points) == 0 {
		panic("meshlet: bounding sphere of empty point set")
	}

	p0 := points[0]
	p1 := farthest(points, p0)
	p2 := farthest(points, p1)

	center := p1.Add(p2).Mul(0.5)
	radius := p1.Sub(p2).Len() / 2

	for _, p := range points {
		d := p.Sub(center).Len()
		if d > radius {
			radius = (radius + d) / 2
			center = center.Mul(0.5).Add(p.Mul(0.5))
		}
	}
	return Sphere{Center: center, Radius: radius}
}

// farthest returns the first point at maximum distance from from.
func farthest(points []mgl32.Vec3, from mgl32.Vec3) mgl32.Vec3 {
	best := points[0]
	bestDist := float32(-1)
	for _, p := range points {
		if d := p.Sub(from).Len(); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func (b *Builder) fitMeshletSphere(d *Descriptor) Sphere {
	idx := b.VertexIndices[d.VertexBegin : d.VertexBegin+d.VertexCount]
	points := make([]mgl32.Vec3, len(idx))
	for i, g := range idx {
		points[i] = b.Vertices[g].Position.Vec3()
	}
	return FitSphere(points)
}
