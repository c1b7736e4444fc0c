// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Material is a linear-elastic isotropic-homogeneous material definition.
type Material struct {
	Name    string
	Young   float64
	Poisson float64
	Density float64
}

// NewMaterial creates a material with the given elastic/inertial properties.
func NewMaterial(name string, young, poisson, density float64) *Material {
	return &Material{Name: name, Young: young, Poisson: poisson, Density: density}
}
