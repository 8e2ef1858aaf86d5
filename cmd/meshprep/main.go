// meshprep is a CLI utility that prepares multi-indexed mesh geometry for
// rendering: it consolidates OBJ attribute streams into a single indexed
// vertex buffer, measures the result, and caches it in binary form.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arbendik/meshprep/internal/config"
	"github.com/arbendik/meshprep/internal/logger"
	"github.com/arbendik/meshprep/pkg/geom"
	"github.com/arbendik/meshprep/pkg/meshbin"
	"github.com/arbendik/meshprep/pkg/obj"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "pack":
		cmdPack(cfg, args)
	case "unpack":
		cmdUnpack(args)
	case "verify":
		cmdVerify(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshprep - mesh consolidation and caching utility

Usage:
  meshprep [flags] <command> [arguments]

Commands:
  info <mesh.obj|mesh.mshb>      Show stream counts, topology, layout, bounds
  pack <mesh.obj> [out.mshb]     Consolidate and write a binary cache
  unpack <mesh.mshb>             Decode a cache and report its buffers
  verify <mesh.mshb>             Check a cache for corruption

Flags:
  -config path       Config file (default ./meshprep.yaml)
  -out dir           Output directory for cache files
  -overwrite         Replace existing cache files
  -strip-normals     Drop normals before consolidation
  -strip-texcoords   Drop texcoords before consolidation
  -debug             Enable debug logging

Examples:
  meshprep info model.obj
  meshprep pack model.obj
  meshprep -strip-normals -out cache/ pack model.obj
  meshprep verify cache/model.mshb`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshprep info <mesh.obj|mesh.mshb>")
		os.Exit(1)
	}
	path := args[0]

	if strings.EqualFold(filepath.Ext(path), ".mshb") {
		buffers, err := meshbin.ReadFile(path)
		if err != nil {
			fatal(err)
		}
		printBuffers(path, buffers)
		return
	}

	data, err := obj.ParseFile(path)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Mesh:      %s\n", path)
	fmt.Printf("Positions: %d\n", len(data.Positions))
	fmt.Printf("Normals:   %d\n", len(data.Normals))
	fmt.Printf("TexCoords: %d\n", len(data.TexCoords))
	fmt.Printf("Faces:     %d\n", len(data.Faces))
	if !geom.IsUniform(data.Faces) {
		fmt.Println("Topology:  mixed (not consolidatable)")
		return
	}
	switch data.Arity() {
	case 3:
		fmt.Println("Topology:  triangles")
	case 4:
		fmt.Println("Topology:  quads")
	}

	mesh := geom.NewMesh(*data)
	box, err := mesh.CalcDimensions()
	if err != nil {
		fatal(err)
	}
	sphere, err := mesh.CalcBoundingSphere()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("BBox min:  (%g, %g, %g)\n", box.Min.X, box.Min.Y, box.Min.Z)
	fmt.Printf("BBox max:  (%g, %g, %g)\n", box.Max.X, box.Max.Y, box.Max.Z)
	c := box.Center()
	fmt.Printf("Center:    (%g, %g, %g)\n", c.X, c.Y, c.Z)
	fmt.Printf("Sphere:    r=%g\n", sphere.Radius)
}

func cmdPack(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshprep pack <mesh.obj> [out.mshb]")
		os.Exit(1)
	}
	inPath := args[0]

	outPath := cachePath(cfg, inPath)
	if len(args) > 1 {
		outPath = args[1]
	}
	if !cfg.Output.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			fatal(fmt.Errorf("%s exists (use -overwrite to replace)", outPath))
		}
	}

	data, err := obj.ParseFile(inPath)
	if err != nil {
		fatal(err)
	}
	if cfg.Mesh.StripNormals {
		data.StripNormals()
	}
	if cfg.Mesh.StripTexCoords {
		data.StripTexCoords()
	}

	mesh := geom.NewMesh(*data)
	buffers, err := mesh.Consolidate()
	if err != nil {
		fatal(err)
	}
	box, err := mesh.CalcDimensions()
	if err != nil {
		fatal(err)
	}
	sphere, err := mesh.CalcBoundingSphere()
	if err != nil {
		fatal(err)
	}

	logger.Info("consolidated mesh",
		zap.String("mesh", inPath),
		zap.Int("corners", data.CornerCount()),
		zap.Int("slots", buffers.VertexCount()),
		zap.Stringer("layout", buffers.Layout),
		zap.Float32("radius", sphere.Radius),
	)
	logger.Debug("bounds",
		zap.Any("min", box.Min),
		zap.Any("max", box.Max),
	)

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fatal(err)
		}
	}
	if err := meshbin.WriteFile(outPath, buffers); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s: %d vertices, %d indices, %s\n",
		outPath, buffers.VertexCount(), len(buffers.Indices), buffers.Layout)
}

func cmdUnpack(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshprep unpack <mesh.mshb>")
		os.Exit(1)
	}
	buffers, err := meshbin.ReadFile(args[0])
	if err != nil {
		fatal(err)
	}
	printBuffers(args[0], buffers)
}

func cmdVerify(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshprep verify <mesh.mshb>")
		os.Exit(1)
	}
	_, err := meshbin.ReadFile(args[0])
	switch {
	case errors.Is(err, meshbin.ErrCorruptCache):
		fatal(fmt.Errorf("%s: CORRUPT: %w", args[0], err))
	case errors.Is(err, meshbin.ErrFormatVersion):
		fatal(fmt.Errorf("%s: unrecognized format: %w", args[0], err))
	case err != nil:
		fatal(err)
	}
	fmt.Printf("%s: OK\n", args[0])
}

func printBuffers(path string, b *geom.Buffers) {
	fmt.Printf("Cache:    %s\n", path)
	fmt.Printf("Layout:   %s (%d bytes/vertex)\n", b.Layout, b.Layout.ByteStride())
	fmt.Printf("Vertices: %d\n", b.VertexCount())
	fmt.Printf("Indices:  %d\n", len(b.Indices))

	box, err := geom.ComputeBBox(b.Positions())
	if err != nil {
		return
	}
	fmt.Printf("BBox min: (%g, %g, %g)\n", box.Min.X, box.Min.Y, box.Min.Z)
	fmt.Printf("BBox max: (%g, %g, %g)\n", box.Max.X, box.Max.Y, box.Max.Z)
}

// cachePath maps an input mesh path to its cache file in the output dir.
func cachePath(cfg *config.Config, inPath string) string {
	base := filepath.Base(inPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".mshb"
	return filepath.Join(cfg.Output.Dir, base)
}

func fatal(err error) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
