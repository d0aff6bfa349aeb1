package renderer

import (
	"github.com/spaghettifunk/solids/engine/math"
	"github.com/spaghettifunk/solids/engine/renderer/metadata"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(clearColor math.Vec4, deltaTime float64) error
	EndFrame(deltaTime float64) error
	// CreateGeometry uploads every region of layout into one vertex buffer.
	CreateGeometry(layout *metadata.BufferLayout) error
	DestroyGeometry()
	DrawGeometry(data *metadata.GeometryRenderData) error
}
