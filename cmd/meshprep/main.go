// meshprep builds meshlets and a texture atlas for a procedural test scene
// and reports or writes the GPU upload buffers.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshprep/internal/config"
	"github.com/Faultbox/meshprep/internal/logger"
	"github.com/Faultbox/meshprep/internal/preprocess"
	"github.com/Faultbox/meshprep/internal/procgen"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "stats":
		err = cmdStats(cfg, rest)
	case "dump":
		err = cmdDump(cfg, rest)
	case "config":
		err = cmdConfig(cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshprep - meshlet and texture atlas preprocessing

Usage:
  meshprep [flags] <command> [options]

Commands:
  stats [-yaml]      Build the scene and print meshlet/atlas statistics
  dump [dir]         Build the scene and write upload buffers (and atlas BMPs)
  config             Print the effective configuration as YAML

Flags:
  -config <file>     Config file (default: ./meshprep.yaml or user config dir)
  -debug             Enable debug logging
  -max-vertices N    Maximum vertices per meshlet (3..256)
  -max-primitives N  Maximum triangles per meshlet
  -channels N        Bytes per atlas texel (1..4)
  -out <dir>         Output directory for dump
  -no-bmp            Skip atlas BMP export

Examples:
  meshprep stats
  meshprep -max-vertices 128 -max-primitives 256 stats -yaml
  meshprep dump ./out`)
}

func build(cfg *config.Config) (*preprocess.Result, error) {
	models := procgen.Scene(cfg.Scene, cfg.Atlas.Channels)
	logger.Debug("scene generated", zap.Int("models", len(models)))
	return preprocess.Run(cfg, models)
}

func cmdStats(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	asYAML := fs.Bool("yaml", false, "Print statistics as YAML")
	fs.Parse(args)

	res, err := build(cfg)
	if err != nil {
		return err
	}
	s := res.Stats

	if *asYAML {
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	fmt.Printf("Models:     %d\n", s.Models)
	fmt.Printf("Materials:  %d\n", s.Materials)
	fmt.Printf("Meshlets:   %d (limits %d verts / %d tris)\n", s.Meshlets, cfg.Meshlet.MaxVertices, cfg.Meshlet.MaxPrimitives)
	fmt.Printf("Vertices:   %d\n", s.Vertices)
	fmt.Printf("Triangles:  %d\n", s.Triangles)
	fmt.Printf("Fill:       %.1f%% verts, %.1f%% tris\n", s.AvgVertexFill*100, s.AvgPrimFill*100)
	fmt.Printf("Atlas:      %dx%d, %d layer(s), %.1f%% occupied\n", s.AtlasWidth, s.AtlasHeight, s.AtlasLayers, s.AtlasOccupancy*100)
	fmt.Println()
	fmt.Println("Buffers:")
	fmt.Printf("  %-18s %d bytes\n", "vertices", s.Buffers.Vertices)
	fmt.Printf("  %-18s %d bytes\n", "descriptors", s.Buffers.Descriptors)
	fmt.Printf("  %-18s %d bytes\n", "vertex indices", s.Buffers.VertexIndices)
	fmt.Printf("  %-18s %d bytes\n", "primitive indices", s.Buffers.PrimitiveIndices)
	fmt.Printf("  %-18s %d bytes\n", "atlas", s.Buffers.Atlas)

	fmt.Println()
	fmt.Println("Models:")
	for _, m := range res.Meshes {
		fmt.Printf("  #%-3d %5d tris %5d verts %4d meshlets  material offset %d\n",
			m.ModelID, m.TriangleCount, m.VertexCount, m.MeshletCount, m.MaterialOffset)
	}
	return nil
}

func cmdDump(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Parse(args)

	dir := cfg.Output.Directory
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	res, err := build(cfg)
	if err != nil {
		return err
	}

	paths, err := preprocess.WriteArtifacts(res, dir, cfg.Output.DumpBMP)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	logger.Info("artifacts written", zap.String("dir", dir), zap.Int("files", len(paths)))
	return nil
}

func cmdConfig(cfg *config.Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
