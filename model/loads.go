// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "math"

// ConcentratedLoad applies a point force to the nodes of a node set.
type ConcentratedLoad struct {
	Region string
	X, Y, Z float64
}

func NewConcentratedLoad(region string, x, y, z float64) *ConcentratedLoad {
	return &ConcentratedLoad{Region: region, X: x, Y: y, Z: z}
}

// Magnitude returns the Euclidean norm of the load vector.
func (c *ConcentratedLoad) Magnitude() float64 { return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z) }

// SurfaceTraction applies a distributed traction vector to the surfaces of a surface set.
type SurfaceTraction struct {
	Region  string
	X, Y, Z float64
}

func NewSurfaceTraction(region string, x, y, z float64) *SurfaceTraction {
	return &SurfaceTraction{Region: region, X: x, Y: y, Z: z}
}

func (s *SurfaceTraction) Magnitude() float64 { return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z) }

// Pressure applies a normal pressure to the surfaces of a surface set.
type Pressure struct {
	Region    string
	Magnitude float64
}

func NewPressure(region string, magnitude float64) *Pressure {
	return &Pressure{Region: region, Magnitude: magnitude}
}

// BodyLoad applies a distributed body-force vector to the elements of an element set.
type BodyLoad struct {
	Region  string
	X, Y, Z float64
}

func NewBodyLoad(region string, x, y, z float64) *BodyLoad {
	return &BodyLoad{Region: region, X: x, Y: y, Z: z}
}

func (b *BodyLoad) Magnitude() float64 { return math.Sqrt(b.X*b.X + b.Y*b.Y + b.Z*b.Z) }

// Acceleration applies a uniform acceleration field to the elements of an element set,
// producing an inertial body load scaled by each element's material density.
type Acceleration struct {
	Region  string
	X, Y, Z float64
}

func NewAcceleration(region string, x, y, z float64) *Acceleration {
	return &Acceleration{Region: region, X: x, Y: y, Z: z}
}

func (a *Acceleration) Magnitude() float64 { return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z) }
