package geometry

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/solids/engine/math"
)

const CylinderName = "cylinder"

// MaxCylinderSegments keeps CylinderVertexCount well inside uint32.
const MaxCylinderSegments uint32 = 1 << 16

type CylinderConfig struct {
	// Number of angular steps around the ring. Must be at least 3.
	Segments uint32
	Radius   float32
	Top      float32
	Bottom   float32
}

func DefaultCylinderConfig() CylinderConfig {
	return CylinderConfig{
		Segments: 64,
		Radius:   0.5,
		Top:      0.5,
		Bottom:   -0.5,
	}
}

// Cylinder is an open tube closed by a top and a bottom cap. The positions
// are laid out as [top cap | wall | bottom cap] so the wall can be drawn on
// its own.
type Cylinder struct {
	Mesh
	Segments uint32
}

// CylinderVertexCount is the wall (6 per segment) plus both caps (3 per
// segment each). Counts above MaxCylinderSegments panic instead of wrapping.
func CylinderVertexCount(segments uint32) uint32 {
	if segments > MaxCylinderSegments {
		panic(fmt.Sprintf("geometry: cylinder supports at most %d segments, got %d", MaxCylinderSegments, segments))
	}
	return segments*6 + segments*3*2
}

// RingAngles returns the start and end angle, in radians, of step n.
// Both are derived from n directly so no error accumulates around the ring.
func RingAngles(n, segments uint32) (t0, t1 float64) {
	t0 = 2 * m.Pi * float64(n) / float64(segments)
	t1 = 2 * m.Pi * float64(n+1) / float64(segments)
	return t0, t1
}

func ringPoint(t float64, radius, y float32) math.Vec4 {
	return math.NewPoint(float32(m.Cos(t))*radius, y, float32(m.Sin(t))*radius)
}

// GenerateCylinder tessellates the capped tube described by config.
// A segment count below 3 cannot close a ring and panics, as does one above
// MaxCylinderSegments.
func GenerateCylinder(config CylinderConfig) *Cylinder {
	if config.Segments < 3 {
		panic(fmt.Sprintf("geometry: cylinder needs at least 3 segments, got %d", config.Segments))
	}
	segments := config.Segments
	r := config.Radius
	w := newVertexWriter(CylinderName, int(CylinderVertexCount(segments)), false)

	topCenter := math.NewPoint(0, config.Top, 0)
	for n := uint32(0); n < segments; n++ {
		t0, t1 := RingAngles(n, segments)
		w.emit(topCenter)
		w.emit(ringPoint(t0, r, config.Top))
		w.emit(ringPoint(t1, r, config.Top))
	}

	for n := uint32(0); n < segments; n++ {
		t0, t1 := RingAngles(n, segments)
		quad := [4]math.Vec4{
			ringPoint(t0, r, config.Bottom),
			ringPoint(t1, r, config.Bottom),
			ringPoint(t1, r, config.Top),
			ringPoint(t0, r, config.Top),
		}
		w.emit(quad[0])
		w.emit(quad[1])
		w.emit(quad[2])
		w.emit(quad[0])
		w.emit(quad[2])
		w.emit(quad[3])
	}

	// Rim order is reversed relative to the top cap, so the two caps face
	// opposite ways.
	bottomCenter := math.NewPoint(0, config.Bottom, 0)
	for n := uint32(0); n < segments; n++ {
		t0, t1 := RingAngles(n, segments)
		w.emit(bottomCenter)
		w.emit(ringPoint(t1, r, config.Bottom))
		w.emit(ringPoint(t0, r, config.Bottom))
	}

	return &Cylinder{
		Mesh:     *w.finish(),
		Segments: segments,
	}
}

func (c *Cylinder) TopCap() []math.Vec4 {
	return c.Positions[:c.Segments*3]
}

func (c *Cylinder) Wall() []math.Vec4 {
	return c.Positions[c.Segments*3 : c.Segments*9]
}

func (c *Cylinder) BottomCap() []math.Vec4 {
	return c.Positions[c.Segments*9:]
}

// WallOffset is the index of the first wall vertex in Positions.
func (c *Cylinder) WallOffset() uint32 {
	return c.Segments * 3
}
