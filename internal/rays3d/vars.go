package rays3d

var (
	Debug   = false            // set to true for scene dump, ray statistics and coverage probe
	WorldUp = Vector3{0, 1, 0} // camera basis is derived against this
	// Compile time checks to ensure that primitives and surfaces implement their interfaces
	_ primitive = (*Sphere)(nil)
	_ primitive = (*Plane)(nil)
	_ Surface   = (*ImageSurface)(nil)
	_ Surface   = (*GIFRecorder)(nil)
	_ Surface   = MultiSurface(nil)
)
