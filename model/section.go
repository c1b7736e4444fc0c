// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Section assigns a structural idealization and material to a region of elements.
type Section struct {
	Region             string
	Material           *Material
	Type               SectionType
	Thickness          float64
	ReducedIntegration bool
}

func NewSection(region string, material *Material, kind SectionType, thickness float64, reducedIntegration bool) *Section {
	return &Section{Region: region, Material: material, Type: kind, Thickness: thickness, ReducedIntegration: reducedIntegration}
}
