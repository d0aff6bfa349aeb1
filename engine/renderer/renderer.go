package renderer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/geometry"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

type Renderer struct {
	backend RendererBackend
	layout  *metadata.BufferLayout
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.backend.Initialize(appName, appWidth, appHeight); err != nil {
		return fmt.Errorf("failed to initialize renderer backend: %w", err)
	}
	return nil
}

func (r *Renderer) Shutdown() error {
	if r.layout != nil {
		r.backend.DestroyGeometry()
		r.layout = nil
	}
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

// UploadGeometry lays the meshes out in one shared buffer and uploads it.
// The returned geometries are in the same order as meshes.
func (r *Renderer) UploadGeometry(meshes ...*geometry.Mesh) ([]*metadata.Geometry, error) {
	layout, err := metadata.NewBufferLayout(meshes...)
	if err != nil {
		return nil, err
	}
	if r.layout != nil {
		r.backend.DestroyGeometry()
		r.layout = nil
	}
	if err := r.backend.CreateGeometry(layout); err != nil {
		return nil, fmt.Errorf("failed to upload geometry: %w", err)
	}
	r.layout = layout
	for _, g := range layout.Geometries {
		core.LogDebug("geometry %s (%s): %d vertices at offset %d (colours: %t)", g.Name, g.ID, g.VertexCount, g.PositionOffset, g.HasColors)
	}
	return layout.Geometries, nil
}

// Geometry looks up an uploaded geometry by the ID UploadGeometry assigned.
func (r *Renderer) Geometry(id uuid.UUID) *metadata.Geometry {
	if r.layout == nil {
		return nil
	}
	return r.layout.GetByID(id)
}

func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.ClearColor, packet.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	for i, data := range packet.Geometries {
		if data == nil || data.Geometry == nil {
			core.LogError("render packet entry %d has no geometry", i)
			return core.ErrNoGeometry
		}
		if err := r.backend.DrawGeometry(data); err != nil {
			core.LogError("failed to draw %s (%s): %s", data.Geometry.Name, data.Geometry.ID, err)
			return err
		}
	}
	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
