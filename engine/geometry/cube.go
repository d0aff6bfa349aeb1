package geometry

import (
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/engine/math"
)

// CubeVertexCount is (6 faces)(2 triangles/face)(3 vertices/triangle).
const CubeVertexCount = 36

const CubeName = "cube"

// CubeCorners are the corners of a unit cube centered at the origin, sides
// aligned with the axes.
var CubeCorners = [8]math.Vec4{
	math.NewPoint(-0.5, -0.5, 0.5),
	math.NewPoint(-0.5, 0.5, 0.5),
	math.NewPoint(0.5, 0.5, 0.5),
	math.NewPoint(0.5, -0.5, 0.5),
	math.NewPoint(-0.5, -0.5, -0.5),
	math.NewPoint(-0.5, 0.5, -0.5),
	math.NewPoint(0.5, 0.5, -0.5),
	math.NewPoint(0.5, -0.5, -0.5),
}

var (
	ColorBlack   = math.NewVec4(0.1, 0.1, 0.1, 1.0)
	ColorRed     = math.NewVec4(1.0, 0.0, 0.0, 1.0)
	ColorYellow  = math.NewVec4(1.0, 1.0, 0.0, 1.0)
	ColorGreen   = math.NewVec4(0.0, 1.0, 0.0, 1.0)
	ColorBlue    = math.NewVec4(0.0, 0.0, 1.0, 1.0)
	ColorMagenta = math.NewVec4(1.0, 0.0, 1.0, 1.0)
	ColorWhite   = math.NewVec4(0.9, 0.9, 0.9, 1.0)
	ColorCyan    = math.NewVec4(0.0, 1.0, 1.0, 1.0)
)

// CubeColors pairs one color with each entry of CubeCorners.
var CubeColors = [8]math.Vec4{
	ColorBlack,
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorMagenta,
	ColorWhite,
	ColorCyan,
}

// CubeFaces lists the corners of each face in winding order.
var CubeFaces = [6][4]int{
	{1, 0, 3, 2},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{6, 5, 1, 2},
	{4, 5, 6, 7},
	{5, 4, 0, 1},
}

// emitQuad splits the quad a,b,c,d along the a-c diagonal into the triangles
// (a,b,c) and (a,c,d). The whole face takes the color of corner a.
func emitQuad(w *vertexWriter, corners, colors *[8]math.Vec4, a, b, c, d int) {
	color := colors[a]
	w.emitColored(corners[a], color)
	w.emitColored(corners[b], color)
	w.emitColored(corners[c], color)
	w.emitColored(corners[a], color)
	w.emitColored(corners[c], color)
	w.emitColored(corners[d], color)
}

// GenerateCube builds the 36 vertex colour cube. Each call returns a new
// mesh; calling it again regenerates from scratch.
func GenerateCube() *Mesh {
	return generateBox(&CubeCorners)
}

// GenerateCubeConfig builds the colour cube stretched to width x height x depth.
func GenerateCubeConfig(width, height, depth float32) *Mesh {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}

	var corners [8]math.Vec4
	for i, c := range CubeCorners {
		corners[i] = math.NewPoint(c.X*width, c.Y*height, c.Z*depth)
	}
	return generateBox(&corners)
}

func generateBox(corners *[8]math.Vec4) *Mesh {
	w := newVertexWriter(CubeName, CubeVertexCount, true)
	for _, f := range CubeFaces {
		emitQuad(w, corners, &CubeColors, f[0], f[1], f[2], f[3])
	}
	return w.finish()
}
