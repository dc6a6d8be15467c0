package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/randwalk/geom"
)

// ShapeConfig describes a boundary or target. Only the extents of the named
// shape are read: radius for a sphere, width/height/depth for a box, a/b/c
// for an ellipsoid.
type ShapeConfig struct {
	Shape  string    `yaml:"shape"`
	Center []float64 `yaml:"center,flow"`
	Radius float64   `yaml:"radius,omitempty"`
	Width  float64   `yaml:"width,omitempty"`
	Height float64   `yaml:"height,omitempty"`
	Depth  float64   `yaml:"depth,omitempty"`
	A      float64   `yaml:"a,omitempty"`
	B      float64   `yaml:"b,omitempty"`
	C      float64   `yaml:"c,omitempty"`
}

// Build constructs the geometric shape. Extent errors come from geom and
// match geom.ErrConfiguration.
func (s *ShapeConfig) Build() (*geom.Shape, error) {
	center, err := vec("center", s.Center)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(s.Shape)) {
	case "sphere":
		return geom.NewSphere(center, s.Radius)
	case "box":
		return geom.NewBox(center, s.Width, s.Height, s.Depth)
	case "ellipsoid":
		return geom.NewEllipsoid(center, s.A, s.B, s.C)
	default:
		return nil, fmt.Errorf("shape=%q: %w", s.Shape, ErrUnknownShape)
	}
}
