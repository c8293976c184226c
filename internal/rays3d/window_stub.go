//go:build !cgo

package rays3d

import (
	"context"
	"errors"
)

func runWindow(context.Context, Options, *Dispatcher, *Scene, *Framebuffer) (RenderStats, error) {
	return RenderStats{}, errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or pass -headless")
}
