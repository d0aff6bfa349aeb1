package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/solids/engine/math"
)

// ColorMode selects where the fragment colour comes from.
type ColorMode uint8

const (
	// Interpolate the per-vertex colour attribute.
	ColorModeVertex ColorMode = iota
	// Use the single colour supplied with the draw call.
	ColorModeUniform
)

/**
 * @brief Represents a mesh uploaded to the shared vertex buffer.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uuid.UUID
	/** @brief The geometry name. */
	Name string
	/** @brief Byte offset of the first position in the shared buffer. */
	PositionOffset uint64
	/** @brief Byte offset of the first colour, when HasColors is set. */
	ColorOffset uint64
	HasColors   bool
	/** @brief Number of vertices drawn as a triangle list. */
	VertexCount uint32
	/** @brief The extents of the geometry in local coordinates. */
	Extents math.Extents3D
}

/**
 * @brief The data needed to draw one geometry once.
 */
type GeometryRenderData struct {
	Model     math.Mat4
	Geometry  *Geometry
	ColorMode ColorMode
	Color     math.Vec4
	// First vertex and count to draw. A zero count draws the whole geometry.
	FirstVertex uint32
	Count       uint32
}

// DrawRange resolves the vertex range to draw.
func (d *GeometryRenderData) DrawRange() (first, count uint32) {
	if d.Count == 0 {
		return 0, d.Geometry.VertexCount
	}
	return d.FirstVertex, d.Count
}
