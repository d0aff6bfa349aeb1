// Package geometry builds the flat, non-indexed triangle lists drawn by the
// demo. Every generator returns freshly allocated buffers sized exactly to the
// vertex count it declares.
package geometry

import (
	"fmt"

	"github.com/spaghettifunk/solids/engine/math"
)

// Mesh is a triangle list: every three consecutive positions form one
// triangle. Colors is either nil or has one entry per position.
type Mesh struct {
	Name      string
	Positions []math.Vec4
	Colors    []math.Vec4
}

func (m *Mesh) VertexCount() uint32 {
	return uint32(len(m.Positions))
}

func (m *Mesh) HasColors() bool {
	return m.Colors != nil
}

// Extents returns the axis aligned bounds of the mesh positions.
func (m *Mesh) Extents() math.Extents3D {
	if len(m.Positions) == 0 {
		return math.Extents3D{}
	}
	first := m.Positions[0].ToVec3()
	ext := math.Extents3D{Min: first, Max: first}
	for _, p := range m.Positions[1:] {
		ext.Min.X = min(ext.Min.X, p.X)
		ext.Min.Y = min(ext.Min.Y, p.Y)
		ext.Min.Z = min(ext.Min.Z, p.Z)
		ext.Max.X = max(ext.Max.X, p.X)
		ext.Max.Y = max(ext.Max.Y, p.Y)
		ext.Max.Z = max(ext.Max.Z, p.Z)
	}
	return ext
}

// Flatten lays vectors out as consecutive x, y, z, w floats.
func Flatten(vs []math.Vec4) []float32 {
	out := make([]float32, 0, len(vs)*4)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z, v.W)
	}
	return out
}

// vertexWriter fills a mesh of fixed capacity. It only lives for the
// duration of one generator call, so nothing is shared between generators.
type vertexWriter struct {
	mesh   *Mesh
	cursor int
}

func newVertexWriter(name string, capacity int, withColors bool) *vertexWriter {
	m := &Mesh{
		Name:      name,
		Positions: make([]math.Vec4, capacity),
	}
	if withColors {
		m.Colors = make([]math.Vec4, capacity)
	}
	return &vertexWriter{mesh: m}
}

func (w *vertexWriter) emit(position math.Vec4) {
	w.checkCapacity()
	w.mesh.Positions[w.cursor] = position
	w.cursor++
}

func (w *vertexWriter) emitColored(position, color math.Vec4) {
	w.checkCapacity()
	w.mesh.Positions[w.cursor] = position
	w.mesh.Colors[w.cursor] = color
	w.cursor++
}

func (w *vertexWriter) checkCapacity() {
	if w.cursor >= len(w.mesh.Positions) {
		panic(fmt.Sprintf("geometry: %s overflow, capacity is %d vertices", w.mesh.Name, len(w.mesh.Positions)))
	}
}

// finish hands the mesh over. The buffer must be exactly full.
func (w *vertexWriter) finish() *Mesh {
	if w.cursor != len(w.mesh.Positions) {
		panic(fmt.Sprintf("geometry: %s wrote %d of %d vertices", w.mesh.Name, w.cursor, len(w.mesh.Positions)))
	}
	m := w.mesh
	w.mesh = nil
	return m
}
