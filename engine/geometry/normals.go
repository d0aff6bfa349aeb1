package geometry

import "github.com/spaghettifunk/solids/engine/math"

// FaceNormal returns the unit normal of the counter-clockwise triangle a, b, c.
func FaceNormal(a, b, c math.Vec4) math.Vec3 {
	edge1 := b.ToVec3().Sub(a.ToVec3())
	edge2 := c.ToVec3().Sub(a.ToVec3())
	return edge1.Cross(edge2).Normalized()
}

// TriangleNormals returns one flat normal per triangle of a triangle list.
// NOTE: This just generates face normals. Smoothing out should be done in a separate pass if desired.
func TriangleNormals(positions []math.Vec4) []math.Vec3 {
	normals := make([]math.Vec3, 0, len(positions)/3)
	for i := 0; i+2 < len(positions); i += 3 {
		normals = append(normals, FaceNormal(positions[i], positions[i+1], positions[i+2]))
	}
	return normals
}
