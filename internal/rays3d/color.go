package rays3d

// Color is an RGB triple kept as floats until pixel encoding. Channels are
// nominally in [0,1] but are not clamped.
type Color = Vector3

// RGB builds a color from its channels.
func RGB(r, g, b Real) Color { return Color{r, g, b} }

// Mix blends b into a: (1-b)*a + b per channel.
func Mix(a, b Color) Color {
	return Color{
		(1-b.X)*a.X + b.X,
		(1-b.Y)*a.Y + b.Y,
		(1-b.Z)*a.Z + b.Z,
	}
}
