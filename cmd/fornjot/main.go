// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fornjot builds a demo model, validates it, and exports it as
// binary STL. It exists to exercise the kernel end to end from the command
// line; real models are built against the packages directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/mesh"
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/partial"
	"github.com/Jzow/Fornjot/services"
	"github.com/Jzow/Fornjot/storage"
)

// config holds the settings that can be given in a config file. Flags
// override it.
type config struct {
	// Tolerance is the minimum distance below which distinct vertices are
	// considered defectively close.
	Tolerance float32 `yaml:"tolerance"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Tolerance: objects.DefaultValidationConfig().DistinctMinDistance}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	var (
		configPath string
		tolerance  float32
		output     string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "fornjot",
		Short:         "fornjot builds, validates, and exports b-rep models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a yaml config file")
	root.PersistentFlags().Float32Var(&tolerance, "tolerance", 0,
		"minimum distance between distinct vertices (overrides config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	newSession := func() (*services.Services, error) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if tolerance > 0 {
			cfg.Tolerance = tolerance
		}
		logger := zap.NewNop()
		if verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return nil, err
			}
		}
		s := services.NewWithLogger(logger)
		s.Config.DistinctMinDistance = cfg.Tolerance
		return s, nil
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "build the demo model and report validation defects",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			face, err := demoModel(s.Objects)
			if err != nil {
				return err
			}
			errs := s.Validate(*face.Value())
			for _, err := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("model has %d validation defect(s)", len(errs))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "model is valid")
			return nil
		},
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "build the demo model and export it as binary STL",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			face, err := demoModel(s.Objects)
			if err != nil {
				return err
			}
			if errs := s.Validate(*face.Value()); len(errs) > 0 {
				return fmt.Errorf("refusing to export: %w",
					objects.FirstValidationError(*face.Value(), s.Config))
			}
			m, err := triangulate(face)
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := m.WriteSTL(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d triangle(s) to %s\n",
				len(m.Triangles()), output)
			return nil
		},
	}
	export.Flags().StringVarP(&output, "output", "o", "model.stl",
		"path of the STL file to write")

	root.AddCommand(validate, export)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// demoModel builds a triangular face in the xy plane.
func demoModel(o *objects.Objects) (storage.Handle[objects.Face], error) {
	plane := geometry.XYPlane()
	points := [][2]math32.Vector2{
		{math32.Vec2(0, 0), math32.Vec2(2, 0)},
		{math32.Vec2(2, 0), math32.Vec2(0, 2)},
		{math32.Vec2(0, 2), math32.Vec2(0, 0)},
	}

	halfEdges := make([]*partial.HalfEdge, 0, len(points))
	for _, segment := range points {
		he := &partial.HalfEdge{}
		he.UpdateAsLineSegment(plane, segment)
		he.InferVertexPositionsIfNecessary(plane)
		halfEdges = append(halfEdges, he)
	}
	// Close the cycle by sharing global vertices between neighbors.
	for i, he := range halfEdges {
		next := halfEdges[(i+1)%len(halfEdges)]
		next.StartVertex.GlobalForm = he.EndVertex.GlobalForm
	}

	face := &partial.Face{
		Surface:  &partial.Surface{Geometry: plane},
		Exterior: &partial.Cycle{HalfEdges: halfEdges},
	}
	return face.Build(o)
}

// triangulate fan-triangulates the exterior cycle of a face. Good enough
// for the convex demo model; concave faces would need a real triangulator.
func triangulate(face storage.Handle[objects.Face]) (*mesh.Mesh, error) {
	exterior := face.Value().Exterior().Value()
	if exterior.Len() < 3 {
		return nil, fmt.Errorf("cannot triangulate a cycle of %d half-edge(s)",
			exterior.Len())
	}

	points := make([]math32.Vector3, 0, exterior.Len())
	for _, he := range exterior.HalfEdges() {
		points = append(points,
			he.Value().StartVertex().Value().GlobalForm().Value().Position())
	}

	m := mesh.New()
	color := face.Value().Color()
	for i := 1; i < len(points)-1; i++ {
		m.PushTriangle(
			[3]math32.Vector3{points[0], points[i], points[i+1]}, color)
	}
	return m, nil
}
