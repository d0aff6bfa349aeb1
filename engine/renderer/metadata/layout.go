package metadata

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/solids/engine/geometry"
)

// Vec4Size is the size in bytes of one vertex attribute (4 x float32).
const Vec4Size = 16

// BufferRegion is one contiguous range of the shared vertex buffer.
type BufferRegion struct {
	Offset uint64
	Data   []float32
}

func (r BufferRegion) Size() uint64 {
	return uint64(len(r.Data)) * 4
}

// BufferLayout packs meshes into a single vertex buffer. For every mesh the
// positions come first, immediately followed by its colours if it has any.
type BufferLayout struct {
	Regions    []BufferRegion
	Geometries []*Geometry
	TotalSize  uint64

	byID map[uuid.UUID]*Geometry
}

func NewBufferLayout(meshes ...*geometry.Mesh) (*BufferLayout, error) {
	layout := &BufferLayout{byID: make(map[uuid.UUID]*Geometry, len(meshes))}
	names := make(map[string]struct{}, len(meshes))
	var offset uint64
	for _, m := range meshes {
		if m == nil || m.VertexCount() == 0 {
			return nil, fmt.Errorf("cannot lay out an empty mesh")
		}
		if _, ok := names[m.Name]; ok {
			return nil, fmt.Errorf("mesh %q added twice", m.Name)
		}
		names[m.Name] = struct{}{}

		g := &Geometry{
			ID:             uuid.New(),
			Name:           m.Name,
			PositionOffset: offset,
			VertexCount:    m.VertexCount(),
			Extents:        m.Extents(),
		}
		layout.Regions = append(layout.Regions, BufferRegion{Offset: offset, Data: geometry.Flatten(m.Positions)})
		offset += uint64(m.VertexCount()) * Vec4Size

		if m.HasColors() {
			if len(m.Colors) != len(m.Positions) {
				return nil, fmt.Errorf("mesh %q has %d colours for %d positions", m.Name, len(m.Colors), len(m.Positions))
			}
			g.HasColors = true
			g.ColorOffset = offset
			layout.Regions = append(layout.Regions, BufferRegion{Offset: offset, Data: geometry.Flatten(m.Colors)})
			offset += uint64(m.VertexCount()) * Vec4Size
		}
		layout.Geometries = append(layout.Geometries, g)
		layout.byID[g.ID] = g
	}
	layout.TotalSize = offset
	return layout, nil
}

// GetByID returns the geometry with the given ID, or nil.
func (l *BufferLayout) GetByID(id uuid.UUID) *Geometry {
	return l.byID[id]
}
