// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// SectionType identifies the structural idealization assigned to a region of elements.
type SectionType int

const (
	PlaneStress  SectionType = 201
	PlaneStrain  SectionType = 202
	Axisymmetric SectionType = 203
	General      SectionType = 301
)
