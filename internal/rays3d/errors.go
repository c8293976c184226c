package rays3d

import "errors"

var (
	ErrNoCamera           = errors.New("no camera set in scene, cannot cast rays")
	ErrNoInput            = errors.New("an input file path is required")
	ErrDegenerateCamera   = errors.New("degenerate camera direction")
	ErrInsufficientMemory = errors.New("not enough memory for rays and framebuffer")
)
