// Command raytracer renders one of the built-in example scenes and writes
// the result to a PPM or PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nullstride/tracer/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "raytracer",
		Short: "Offline Whitted-style ray tracer",
	}
	root.AddCommand(newRenderCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var (
		sceneName  string
		meshPath   string
		output     string
		width      int
		height     int
		spp        int
		maxDepth   int
		parallel   bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("raytracer: build logger: %w", err)
			}
			defer logger.Sync()

			opts := app.RenderCommandOptions{
				SceneName:       sceneName,
				MeshPath:        meshPath,
				Output:          output,
				Width:           width,
				Height:          height,
				SamplesPerPixel: spp,
				MaxDepth:        maxDepth,
				Parallel:        parallel,
				ConfigPath:      configPath,
			}
			return app.Render(cmd.Context(), logger, opts)
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "cornell", "scene to render: cornell, shadow, glass, tir, noise, mesh")
	cmd.Flags().StringVar(&meshPath, "mesh-path", "", "path to a .gltf/.glb file, required when --scene=mesh")
	cmd.Flags().StringVar(&output, "output", "render.png", "output image path (.ppm or .png)")
	cmd.Flags().IntVar(&width, "width", 640, "output width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "output height in pixels")
	cmd.Flags().IntVar(&spp, "spp", 4, "samples per pixel")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "recursion bound for reflection/refraction")
	cmd.Flags().BoolVar(&parallel, "parallel", true, "use the parallel row-dispatch renderer")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file overriding the flags above")

	return cmd
}

func newBenchCmd() *cobra.Command {
	var (
		sceneName string
		width     int
		height    int
		spp       int
		maxDepth  int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Render a scene with both drivers and report timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("raytracer: build logger: %w", err)
			}
			defer logger.Sync()

			return app.Bench(logger, app.BenchOptions{
				SceneName:       sceneName,
				Width:           width,
				Height:          height,
				SamplesPerPixel: spp,
				MaxDepth:        maxDepth,
			})
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "cornell", "scene to render: cornell, shadow, glass, tir, noise")
	cmd.Flags().IntVar(&width, "width", 320, "output width in pixels")
	cmd.Flags().IntVar(&height, "height", 240, "output height in pixels")
	cmd.Flags().IntVar(&spp, "spp", 4, "samples per pixel")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "recursion bound for reflection/refraction")

	return cmd
}
