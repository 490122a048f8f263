// clsurf is a CLI utility for building and inspecting cutter location surfaces.
package main

import (
	"flag"
	"fmt"
	"os"

	ocl "github.com/sliptonic/opencamlib"
	"github.com/sliptonic/opencamlib/internal/config"
	"github.com/sliptonic/opencamlib/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "render":
		cmdRender(args)
	case "init-config":
		cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`clsurf - cutter location surface utility

Usage:
  clsurf <command> [options]

Commands:
  info                 Build and refine a surface, print mesh statistics
  render               Build, refine, sample and render a surface to PNG
  init-config <path>   Write the default configuration to a YAML file

Options (info, render):
  -config <path>       Config file (default: ./clsurf.yaml if present)
  -far <f>             Half-width of the initial square
  -min-sampling <s>    Minimum sampling edge length
  -o <path>            Output PNG path (render only)

Examples:
  clsurf info -far 10 -min-sampling 0.5
  clsurf render -o surface.png
  clsurf init-config clsurf.yaml`)
}

// surfaceFlags registers the flags shared by info and render on fs and
// returns the destinations.
func surfaceFlags(fs *flag.FlagSet) (cfgPath *string, far, minSampling *float64) {
	cfgPath = fs.String("config", "", "config file path")
	far = fs.Float64("far", 0, "half-width of the initial square")
	minSampling = fs.Float64("min-sampling", 0, "minimum sampling edge length")
	return
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cfgPath string, far, minSampling float64) *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if far > 0 {
		cfg.Surface.Far = far
	}
	if minSampling > 0 {
		cfg.Surface.MinSampling = minSampling
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// buildSurface constructs, refines and samples a surface per the config.
func buildSurface(cfg *config.Config) *ocl.CutterLocationSurface {
	log := logger.Sugar

	surf := ocl.NewCutterLocationSurface(
		ocl.WithFar(cfg.Surface.Far),
		ocl.WithMinSampling(cfg.Surface.MinSampling),
	)
	log.Debugw("surface created", "far", cfg.Surface.Far)

	for i := 0; i < cfg.Surface.Passes; i++ {
		n := surf.Subdivide()
		log.Debugw("subdivision pass", "pass", i+1, "faces", n)
	}
	if cfg.Surface.Adaptive && cfg.Surface.MinSampling > 0 {
		n := surf.Refine()
		log.Debugw("adaptive refinement", "faces", n, "min_sampling", cfg.Surface.MinSampling)
	}

	switch cfg.Sampler.Type {
	case "", "none":
	case "sphere":
		misses, err := surf.SampleHeights(ocl.SphereSampler{Radius: cfg.Sampler.Radius})
		if err != nil {
			log.Fatalw("sampling failed", "error", err)
		}
		log.Infow("heights sampled", "sampler", "sphere", "radius", cfg.Sampler.Radius, "misses", misses)
	default:
		log.Fatalw("unknown sampler type", "type", cfg.Sampler.Type)
	}

	log.Infow("surface built", "summary", surf.String())
	return surf
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	cfgPath, far, minSampling := surfaceFlags(fs)
	fs.Parse(args)

	cfg := loadConfig(*cfgPath, *far, *minSampling)
	defer logger.Sync()
	surf := buildSurface(cfg)

	g := surf.Diagram()
	fmt.Println(surf.String())
	fmt.Printf("faces:           %d\n", g.NumFaces())
	fmt.Printf("inner faces:     %d\n", g.NumFaces()-1)
	fmt.Printf("outer face id:   %d\n", surf.OuterFace())
	fmt.Printf("min sampling:    %g\n", surf.MinSampling())
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	cfgPath, far, minSampling := surfaceFlags(fs)
	output := fs.String("o", "", "output PNG path")
	fs.Parse(args)

	cfg := loadConfig(*cfgPath, *far, *minSampling)
	defer logger.Sync()
	if *output != "" {
		cfg.Render.Output = *output
	}

	surf := buildSurface(cfg)
	if err := surf.WritePNG(cfg.Render.Output, cfg.Render.Width, cfg.Render.Height); err != nil {
		logger.Sugar.Fatalw("render failed", "error", err)
	}
	logger.Sugar.Infow("wireframe written",
		"path", cfg.Render.Output,
		"width", cfg.Render.Width,
		"height", cfg.Render.Height)
}

func cmdInitConfig(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: clsurf init-config <path>")
		os.Exit(1)
	}
	if err := config.Default().SaveTo(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", args[0])
}
