// Package app wires the config, scene, renderer, and image-output packages
// together behind the CLI's render and bench subcommands.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nullstride/tracer/pkg/config"
	"github.com/nullstride/tracer/pkg/imageio"
	"github.com/nullstride/tracer/pkg/renderer"
	"github.com/nullstride/tracer/pkg/scene"
	"github.com/nullstride/tracer/pkg/scenes"
	"github.com/nullstride/tracer/pkg/shading"
)

// RenderCommandOptions are the flags the render subcommand collects.
type RenderCommandOptions struct {
	SceneName       string
	MeshPath        string
	Output          string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Parallel        bool
	ConfigPath      string
}

// BenchOptions are the flags the bench subcommand collects.
type BenchOptions struct {
	SceneName       string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// resolveScene looks up a built-in example scene by name. meshPath is only
// consulted when name is "mesh".
func resolveScene(name, meshPath string, width, height int) (*scene.Scene, error) {
	switch name {
	case "cornell":
		return scenes.Cornell(width, height), nil
	case "shadow":
		return scenes.ShadowTest(width, height), nil
	case "glass":
		return scenes.GlassBall(width, height), nil
	case "tir":
		return scenes.TIRCorner(width, height), nil
	case "noise":
		return scenes.NoiseBump(width, height), nil
	case "mesh":
		if meshPath == "" {
			return nil, fmt.Errorf("scene %q requires --mesh-path", name)
		}
		return scenes.Mesh(width, height, meshPath)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// Render builds the requested scene, renders it, and writes the result to
// opts.Output.
func Render(ctx context.Context, logger *zap.Logger, opts RenderCommandOptions) error {
	cfg := config.Default()
	cfg.Width, cfg.Height = opts.Width, opts.Height
	cfg.SamplesPerPixel = opts.SamplesPerPixel
	cfg.MaxDepth = opts.MaxDepth
	cfg.Parallel = opts.Parallel

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}

	s, err := resolveScene(opts.SceneName, opts.MeshPath, cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}

	if cfg.SkyboxPath != "" {
		sky, err := scene.LoadSkybox(cfg.SkyboxPath)
		if err != nil {
			logger.Warn("skybox load failed, falling back to gradient sky", zap.String("path", cfg.SkyboxPath), zap.Error(err))
		} else {
			s.Skybox = sky
		}
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}

	renderOpts := renderer.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Shader:          shading.BlinnPhong{},
	}

	start := time.Now()
	logger.Info("render starting",
		zap.String("scene", opts.SceneName),
		zap.Int("width", cfg.Width), zap.Int("height", cfg.Height),
		zap.Int("spp", cfg.SamplesPerPixel), zap.Bool("parallel", cfg.Parallel),
	)

	progress := renderer.LoggingProgress(logger, cfg.Preview.RefreshIntervalRows)

	var frame *imageio.Frame
	if cfg.Parallel {
		pool := renderer.NewPondRowPool()
		var completed bool
		frame, completed = renderer.RenderParallel(ctx, s, s.Camera, renderOpts, progress, pool)
		if !completed {
			return fmt.Errorf("raytracer: render cancelled")
		}
	} else {
		frame = renderer.RenderLinear(s, s.Camera, renderOpts, progress)
	}

	if cfg.PostProcess.Enabled {
		frame = renderer.Upscale(frame, cfg.PostProcess.ScaleFactor)
	}

	if err := imageio.WriteFile(opts.Output, frame, imageio.FormatAuto); err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}

	logger.Info("render finished", zap.Duration("elapsed", time.Since(start)), zap.String("output", opts.Output))
	return nil
}

// Bench renders the named scene with both the linear and parallel drivers
// and reports their elapsed time.
func Bench(logger *zap.Logger, opts BenchOptions) error {
	s, err := resolveScene(opts.SceneName, "", opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("raytracer: %w", err)
	}

	renderOpts := renderer.Options{
		Width:           opts.Width,
		Height:          opts.Height,
		SamplesPerPixel: opts.SamplesPerPixel,
		MaxDepth:        opts.MaxDepth,
		Shader:          shading.BlinnPhong{},
	}

	linearStart := time.Now()
	renderer.RenderLinear(s, s.Camera, renderOpts, nil)
	linearElapsed := time.Since(linearStart)

	pool := renderer.NewPondRowPool()
	parallelStart := time.Now()
	renderer.RenderParallel(context.Background(), s, s.Camera, renderOpts, nil, pool)
	parallelElapsed := time.Since(parallelStart)

	logger.Info("bench complete",
		zap.String("scene", opts.SceneName),
		zap.Duration("linear", linearElapsed),
		zap.Duration("parallel", parallelElapsed),
	)
	return nil
}
