package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector. Positions use W=1, colours are RGBA.
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief a 4x4 matrix stored column-major, as OpenGL expects it. */
type Mat4 struct {
	/** @brief The matrix elements, Data[column*4+row] */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief Represents the rigid-body transform of an object in the world.
 * The local matrix is Translate(Position) * RotX * RotY * RotZ * Scale(Scale).
 * NOTE: edit through the setters so the cached matrix is rebuilt.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief Euler rotation in degrees, applied X then Y then Z to column vectors from the right. */
	Rotation Vec3
	/** @brief The scale in the world. */
	Scale Vec3
	/** @brief Indicates the local matrix needs to be recalculated. */
	IsDirty bool
	/** @brief The cached local transformation matrix. */
	Local Mat4
}
