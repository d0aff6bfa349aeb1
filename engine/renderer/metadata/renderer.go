package metadata

import "github.com/spaghettifunk/solids/engine/math"

/**
 * @brief Everything the renderer needs to draw one frame.
 */
type RenderPacket struct {
	DeltaTime  float64
	ClearColor math.Vec4
	Geometries []*GeometryRenderData
}
