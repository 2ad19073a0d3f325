package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line from Origin along Dir. Dir need not be normalized.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// Distance returns the straight-line distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// hitSphere reports whether the ray hits a sphere in front of its origin.
func hitSphere(r Ray, center mgl64.Vec3, radius float64) bool {
	dir := r.Dir
	if dir.Len() == 0 {
		return false
	}
	dir = dir.Normalize()
	oc := r.Origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return true // origin inside
	}
	disc := b*b - c
	if disc < 0 {
		return false
	}
	t := -b - math.Sqrt(disc)
	return t >= 0
}

// hitBox is the slab test against an axis-aligned box.
func hitBox(r Ray, center, half mgl64.Vec3) bool {
	tmin, tmax := 0.0, math.Inf(1)
	for i := 0; i < 3; i++ {
		lo, hi := center[i]-half[i], center[i]+half[i]
		if math.Abs(r.Dir[i]) < 1e-12 {
			if r.Origin[i] < lo || r.Origin[i] > hi {
				return false
			}
			continue
		}
		t1 := (lo - r.Origin[i]) / r.Dir[i]
		t2 := (hi - r.Origin[i]) / r.Dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}
