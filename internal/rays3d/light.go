package rays3d

// Light is a point light without falloff: when unobstructed it tints the
// surface by Color.
type Light struct {
	Position Vector3
	Color    Color
}
