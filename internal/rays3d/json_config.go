package rays3d

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// UnmarshalJSON accepts {"x","y","z"} for positions and {"r","g","b"} for colors.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	var raw struct {
		X *Real `json:"x"`
		Y *Real `json:"y"`
		Z *Real `json:"z"`
		R *Real `json:"r"`
		G *Real `json:"g"`
		B *Real `json:"b"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.X != nil || raw.Y != nil || raw.Z != nil:
		if raw.X == nil || raw.Y == nil || raw.Z == nil {
			return errors.New("vector needs all of x, y and z")
		}
		*v = Vector3{*raw.X, *raw.Y, *raw.Z}
	case raw.R != nil || raw.G != nil || raw.B != nil:
		if raw.R == nil || raw.G == nil || raw.B == nil {
			return errors.New("color needs all of r, g and b")
		}
		*v = Vector3{*raw.R, *raw.G, *raw.B}
	default:
		return errors.New("could not parse vector: want {x,y,z} or {r,g,b}")
	}
	return nil
}

type CameraCfg struct {
	Position  *Vector3 `json:"position"`
	Direction *Vector3 `json:"direction"`
}

type LightCfg struct {
	Position *Vector3 `json:"position"`
	Color    *Color   `json:"color"`
}

// ShapeCfg is discriminated by Type: "sphere" uses Center, Radius, Color;
// "plane" uses Pivot, Normal, Color.
type ShapeCfg struct {
	Type   string   `json:"type"`
	Center *Vector3 `json:"center,omitempty"`
	Radius *Real    `json:"radius,omitempty"`
	Pivot  *Vector3 `json:"pivot,omitempty"`
	Normal *Vector3 `json:"normal,omitempty"`
	Color  *Color   `json:"color"`
}

type SceneCfg struct {
	Camera     *CameraCfg `json:"camera"`
	Lights     []LightCfg `json:"lights"`
	Shapes     []ShapeCfg `json:"shapes"`
	Background *Color     `json:"background,omitempty"`
	ShadowBias Real       `json:"shadowBias,omitempty"`
}

// Build validates and constructs the camera.
func (c CameraCfg) Build() (*Camera, error) {
	if c.Position == nil {
		return nil, errors.New("camera had no position vector")
	}
	if c.Direction == nil {
		return nil, errors.New("camera had no direction vector")
	}
	return NewCamera(*c.Position, *c.Direction)
}

func (l LightCfg) Build() (Light, error) {
	if l.Position == nil {
		return Light{}, errors.New("light had no position vector")
	}
	if l.Color == nil {
		return Light{}, errors.New("light had no color")
	}
	return Light{Position: *l.Position, Color: *l.Color}, nil
}

// Build returns a *Sphere or a *Plane.
func (s ShapeCfg) Build() (primitive, error) {
	if s.Type == "" {
		return nil, errors.New("shape had no type")
	}
	if s.Color == nil {
		return nil, fmt.Errorf("%s had no color", s.Type)
	}
	switch strings.ToLower(s.Type) {
	case "sphere":
		if s.Center == nil || s.Radius == nil {
			return nil, errors.New("sphere needs center and radius")
		}
		return NewSphere(*s.Center, *s.Radius, *s.Color)
	case "plane":
		if s.Pivot == nil || s.Normal == nil {
			return nil, errors.New("plane needs pivot and normal")
		}
		return NewPlane(*s.Pivot, *s.Normal, *s.Color)
	}
	return nil, fmt.Errorf("unknown shape type %q", s.Type)
}

// Build constructs the scene. Any invalid part fails the whole scene.
func (c SceneCfg) Build() (*Scene, error) {
	if c.Camera == nil {
		return nil, errors.New("no camera object found")
	}
	camera, err := c.Camera.Build()
	if err != nil {
		return nil, err
	}
	scene := NewScene()
	scene.SetCamera(camera)
	scene.Background = c.Background
	if c.ShadowBias > 0 {
		scene.ShadowBias = c.ShadowBias
	}

	if c.Lights == nil {
		Logger().Warn("no lights parsed from scene")
	}
	for i, lc := range c.Lights {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light #%d: %w", i, err)
		}
		scene.AddLight(l)
	}

	for i, sc := range c.Shapes {
		p, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("shape #%d: %w", i, err)
		}
		switch p := p.(type) {
		case *Sphere:
			scene.AddSphere(p)
		case *Plane:
			scene.AddPlane(p)
		}
	}
	DebugLog("Built scene: %d lights, %d spheres, %d planes", scene.Lights.Len(), scene.Spheres.Len(), scene.Planes.Len())
	return scene, nil
}

// ParseScene decodes a JSON scene description.
func ParseScene(data []byte) (*Scene, error) {
	var cfg SceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return cfg.Build()
}

// LoadScene reads and parses the scene file at path.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	DebugLog("Loaded scene from %s", path)
	return scene, nil
}
