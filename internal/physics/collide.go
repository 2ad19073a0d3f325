package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// tangentDamping is the tangential speed lost per contact at friction 1.
const tangentDamping = 0.05

// collideBox pushes a sphere out of a box and reflects its velocity.
func (w *World) collideBox(ball, box *mesh) {
	closest := mgl64.Vec3{
		mgl64.Clamp(ball.pos[0], box.pos[0]-box.half[0], box.pos[0]+box.half[0]),
		mgl64.Clamp(ball.pos[1], box.pos[1]-box.half[1], box.pos[1]+box.half[1]),
		mgl64.Clamp(ball.pos[2], box.pos[2]-box.half[2], box.pos[2]+box.half[2]),
	}
	d := ball.pos.Sub(closest)
	dist := d.Len()
	if dist >= ball.radius {
		return
	}

	var normal mgl64.Vec3
	var depth float64
	if dist > 1e-9 {
		normal = d.Mul(1 / dist)
		depth = ball.radius - dist
	} else {
		// Center inside the box: leave along the axis of least penetration
		best := math.Inf(1)
		for i := 0; i < 3; i++ {
			for _, sign := range []float64{-1, 1} {
				face := box.pos[i] + sign*box.half[i]
				pen := sign * (face - ball.pos[i])
				if pen < best {
					best = pen
					normal = mgl64.Vec3{}
					normal[i] = sign
				}
			}
		}
		depth = best + ball.radius
	}
	w.resolve(ball, normal, depth)
}

// collideRing treats the rim as a circle of points in the horizontal plane
// and bounces the sphere off the nearest one.
func (w *World) collideRing(ball, ring *mesh) {
	rel := ball.pos.Sub(ring.pos)
	flat := mgl64.Vec3{rel[0], 0, rel[2]}

	var closest mgl64.Vec3
	if flat.Len() < 1e-9 {
		closest = ring.pos.Add(mgl64.Vec3{ring.radius, 0, 0})
	} else {
		closest = ring.pos.Add(flat.Normalize().Mul(ring.radius))
	}

	d := ball.pos.Sub(closest)
	dist := d.Len()
	minDist := ball.radius + ring.tube
	if dist >= minDist || dist < 1e-9 {
		return
	}
	w.resolve(ball, d.Mul(1/dist), minDist-dist)
}

// resolve separates a ball along normal and applies restitution and friction.
func (w *World) resolve(ball *mesh, normal mgl64.Vec3, depth float64) {
	ball.pos = ball.pos.Add(normal.Mul(depth))

	b := ball.body
	vn := b.vel.Dot(normal)
	if vn >= 0 {
		return // already separating
	}

	tangent := b.vel.Sub(normal.Mul(vn))
	tangent = tangent.Mul(math.Max(0, 1-tangentDamping*b.params.Friction))

	bounce := -vn * b.params.Restitution
	if bounce < w.restThreshold && normal.Y() > 0.7 {
		bounce = 0 // settle on the floor
	}
	b.vel = tangent.Add(normal.Mul(bounce))
}

func overlaps(a, b *mesh) bool {
	return Distance(a.pos, b.pos) <= a.radius+b.radius
}
