package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/lukaszgryglicki/rays3d/internal/rays3d"
)

func main() {
	var (
		width      = flag.Int("w", rays3d.DefaultWidth, "canvas width in pixels")
		height     = flag.Int("h", rays3d.DefaultHeight, "canvas height in pixels")
		winWidth   = flag.Int("ww", 0, "window/output width (0 = canvas width)")
		winHeight  = flag.Int("wh", 0, "window/output height (0 = canvas height)")
		workers    = flag.Int("c", rays3d.DefaultWorkers, "worker count (0 = logical CPUs)")
		batch      = flag.Int("b", rays3d.DefaultBatch, "rays per batch")
		debug      = flag.Bool("d", false, "debug logging")
		fullscreen = flag.Bool("f", false, "fullscreen window")
		input      = flag.String("i", "", "scene JSON file (required)")
		headless   = flag.Bool("headless", false, "render without a window")
		output     = flag.String("o", "", "write the presented image as PNG")
		gifOut     = flag.String("gif", "", "record render progress as animated GIF (headless)")
		rawOut     = flag.String("raw", "", "dump the raw framebuffer")
		format     = flag.String("format", "rgb888", "pixel format: rgb888|rgb565")
		tone       = flag.String("tone", "normalize", "tone mapping: normalize|clamp")
		fps        = flag.Int("fps", 0, "presenter frames per second (0 = as fast as possible)")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -i scene.json [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	rays3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	rays3d.Debug = *debug

	pf, err := rays3d.ParsePixelFormat(*format)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	tm, err := rays3d.ParseToneMode(*tone)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = rays3d.Run(ctx, rays3d.Options{
		Width:        *width,
		Height:       *height,
		WindowWidth:  *winWidth,
		WindowHeight: *winHeight,
		Workers:      *workers,
		Batch:        *batch,
		Input:        *input,
		Fullscreen:   *fullscreen,
		Headless:     *headless,
		Output:       *output,
		GIFOut:       *gifOut,
		RawOut:       *rawOut,
		Format:       pf,
		Tone:         tm,
		FPS:          *fps,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
