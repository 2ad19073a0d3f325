package physics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrUnknownMesh is returned for a mesh id the world does not hold.
	ErrUnknownMesh = errors.New("physics: unknown mesh")
	// ErrNoBody is returned when a body operation targets a mesh without one.
	ErrNoBody = errors.New("physics: mesh has no body")
	// ErrNotZone is returned when a trigger is attached to a non-zone mesh.
	ErrNotZone = errors.New("physics: mesh is not a zone")
)

// maxSubstep bounds the integration step so fast balls do not tunnel
// through rims.
const maxSubstep = 1.0 / 120

// TriggerID identifies a registered trigger.
type TriggerID int

// TriggerEvent reports that a mover entered a zone during a step.
type TriggerEvent struct {
	Trigger  TriggerID
	Mover    MeshID
	Zone     MeshID
	Velocity mgl64.Vec3 // mover velocity at the moment of entry
}

type trigger struct {
	mover  MeshID
	zone   MeshID
	inside bool
}

// World holds meshes, bodies and triggers. It is not safe for concurrent use.
type World struct {
	gravity       mgl64.Vec3
	restThreshold float64

	meshes map[MeshID]*mesh
	order  []MeshID
	nextID MeshID

	triggers    map[TriggerID]*trigger
	triggerIDs  []TriggerID
	nextTrigger TriggerID
}

// NewWorld creates an empty world with gravity along y.
func NewWorld(gravityY, restThreshold float64) *World {
	return &World{
		gravity:       mgl64.Vec3{0, gravityY, 0},
		restThreshold: restThreshold,
		meshes:        make(map[MeshID]*mesh),
		triggers:      make(map[TriggerID]*trigger),
		nextID:        1,
		nextTrigger:   1,
	}
}

func (w *World) add(m *mesh) MeshID {
	m.id = w.nextID
	w.nextID++
	w.meshes[m.id] = m
	w.order = append(w.order, m.id)
	return m.id
}

// AddSphere adds a sphere mesh. It has no body until AttachBody.
func (w *World) AddSphere(name string, center mgl64.Vec3, radius float64) MeshID {
	return w.add(&mesh{name: name, kind: KindSphere, pos: center, radius: radius})
}

// AddBox adds a static box collider given its center and half extents.
func (w *World) AddBox(name string, center, half mgl64.Vec3) MeshID {
	return w.add(&mesh{name: name, kind: KindBox, pos: center, half: half})
}

// AddRing adds a static horizontal ring collider, like a basketball rim.
func (w *World) AddRing(name string, center mgl64.Vec3, radius, tube float64) MeshID {
	return w.add(&mesh{name: name, kind: KindRing, pos: center, radius: radius, tube: tube})
}

// AddZone adds a sensor sphere. Zones never collide; they only fire triggers.
func (w *World) AddZone(name string, center mgl64.Vec3, radius float64) MeshID {
	return w.add(&mesh{name: name, kind: KindZone, pos: center, radius: radius})
}

func (w *World) get(id MeshID) (*mesh, error) {
	m, ok := w.meshes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMesh, id)
	}
	return m, nil
}

// Info returns a snapshot of one mesh.
func (w *World) Info(id MeshID) (MeshInfo, error) {
	m, err := w.get(id)
	if err != nil {
		return MeshInfo{}, err
	}
	return m.info(), nil
}

// Meshes returns snapshots of all meshes in creation order.
func (w *World) Meshes() []MeshInfo {
	out := make([]MeshInfo, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.meshes[id].info())
	}
	return out
}

// Position returns the world position of a mesh.
func (w *World) Position(id MeshID) (mgl64.Vec3, error) {
	m, err := w.get(id)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return m.pos, nil
}

// SetPosition moves a mesh. A body keeps its velocity.
func (w *World) SetPosition(id MeshID, p mgl64.Vec3) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	m.pos = p
	return nil
}

// RayIntersects reports whether the ray hits the mesh's collision geometry.
// Rings and zones are not pickable.
func (w *World) RayIntersects(r Ray, id MeshID) (bool, error) {
	m, err := w.get(id)
	if err != nil {
		return false, err
	}
	switch m.kind {
	case KindSphere:
		return hitSphere(r, m.pos, m.radius), nil
	case KindBox:
		return hitBox(r, m.pos, m.half), nil
	default:
		return false, nil
	}
}

// AttachBody starts simulating a sphere with the given parameters.
// The body starts at rest.
func (w *World) AttachBody(id MeshID, p BodyParams) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	if m.kind != KindSphere {
		return fmt.Errorf("physics: attach body to %s %q: only spheres are dynamic", m.kind, m.name)
	}
	if p.Mass <= 0 {
		return fmt.Errorf("physics: attach body to %q: mass must be positive", m.name)
	}
	m.body = &body{params: p}
	return nil
}

// DetachBody stops simulating a mesh. Detaching a mesh without a body is a no-op.
func (w *World) DetachBody(id MeshID) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	m.body = nil
	return nil
}

// HasBody reports whether the mesh is currently simulated.
func (w *World) HasBody(id MeshID) bool {
	m, ok := w.meshes[id]
	return ok && m.body != nil
}

// ApplyImpulse applies an instantaneous impulse: Δv = J / m.
// The point is accepted for API symmetry; spheres carry no spin here.
func (w *World) ApplyImpulse(id MeshID, impulse, point mgl64.Vec3) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	if m.body == nil {
		return fmt.Errorf("%w: %q", ErrNoBody, m.name)
	}
	m.body.vel = m.body.vel.Add(impulse.Mul(1 / m.body.params.Mass))
	return nil
}

// Velocity returns the linear velocity of a simulated mesh.
func (w *World) Velocity(id MeshID) (mgl64.Vec3, error) {
	m, err := w.get(id)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if m.body == nil {
		return mgl64.Vec3{}, fmt.Errorf("%w: %q", ErrNoBody, m.name)
	}
	return m.body.vel, nil
}

// SetVelocity overwrites the velocity of a simulated mesh.
func (w *World) SetVelocity(id MeshID, v mgl64.Vec3) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	if m.body == nil {
		return fmt.Errorf("%w: %q", ErrNoBody, m.name)
	}
	m.body.vel = v
	return nil
}

// SetParent makes a mesh follow t at a local offset. The mesh is moved
// immediately and again on every Step.
func (w *World) SetParent(id MeshID, t Transform, offset mgl64.Vec3) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	m.parent = t
	m.offset = offset
	m.pos = t.Anchor(offset)
	return nil
}

// ClearParent detaches a mesh from its parent, leaving it where it is.
func (w *World) ClearParent(id MeshID) error {
	m, err := w.get(id)
	if err != nil {
		return err
	}
	m.parent = nil
	m.offset = mgl64.Vec3{}
	return nil
}

// Parented reports whether the mesh follows a parent transform.
func (w *World) Parented(id MeshID) bool {
	m, ok := w.meshes[id]
	return ok && m.parent != nil
}

// AddTrigger fires a TriggerEvent each time mover starts overlapping zone.
// A mover already inside the zone when the trigger is added does not fire
// until it leaves and enters again.
func (w *World) AddTrigger(mover, zone MeshID) (TriggerID, error) {
	mv, err := w.get(mover)
	if err != nil {
		return 0, err
	}
	z, err := w.get(zone)
	if err != nil {
		return 0, err
	}
	if z.kind != KindZone {
		return 0, fmt.Errorf("%w: %q", ErrNotZone, z.name)
	}

	id := w.nextTrigger
	w.nextTrigger++
	w.triggers[id] = &trigger{mover: mover, zone: zone, inside: overlaps(mv, z)}
	w.triggerIDs = append(w.triggerIDs, id)
	return id, nil
}

// RemoveTrigger unregisters a trigger. Unknown ids are ignored.
func (w *World) RemoveTrigger(id TriggerID) {
	if _, ok := w.triggers[id]; !ok {
		return
	}
	delete(w.triggers, id)
	for i, tid := range w.triggerIDs {
		if tid == id {
			w.triggerIDs = append(w.triggerIDs[:i], w.triggerIDs[i+1:]...)
			break
		}
	}
}

// TriggerCount returns the number of registered triggers.
func (w *World) TriggerCount() int {
	return len(w.triggers)
}

// Step advances the simulation by dt seconds and returns the trigger
// entries that happened during it, in order.
func (w *World) Step(dt float64) []TriggerEvent {
	if dt <= 0 {
		return nil
	}

	var events []TriggerEvent
	for dt > 0 {
		h := min(dt, maxSubstep)
		dt -= h
		w.integrate(h)
		w.followParents()
		events = w.checkTriggers(events)
	}
	return events
}

func (w *World) integrate(h float64) {
	for _, id := range w.order {
		m := w.meshes[id]
		if m.body == nil || m.parent != nil {
			continue
		}
		m.body.vel = m.body.vel.Add(w.gravity.Mul(h))
		m.pos = m.pos.Add(m.body.vel.Mul(h))

		for _, sid := range w.order {
			s := w.meshes[sid]
			switch s.kind {
			case KindBox:
				w.collideBox(m, s)
			case KindRing:
				w.collideRing(m, s)
			}
		}
	}
}

func (w *World) followParents() {
	for _, id := range w.order {
		m := w.meshes[id]
		if m.parent != nil {
			m.pos = m.parent.Anchor(m.offset)
		}
	}
}

func (w *World) checkTriggers(events []TriggerEvent) []TriggerEvent {
	for _, tid := range w.triggerIDs {
		t := w.triggers[tid]
		mv, okMover := w.meshes[t.mover]
		z, okZone := w.meshes[t.zone]
		if !okMover || !okZone {
			continue
		}

		in := overlaps(mv, z)
		if in && !t.inside {
			var vel mgl64.Vec3
			if mv.body != nil {
				vel = mv.body.vel
			}
			events = append(events, TriggerEvent{
				Trigger:  tid,
				Mover:    t.mover,
				Zone:     t.zone,
				Velocity: vel,
			})
		}
		t.inside = in
	}
	return events
}
