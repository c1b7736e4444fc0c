// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// MDB (model database) aggregates a Mesh with all the named sets, materials, sections,
// loads and boundary conditions that make up a complete finite element model.
type MDB struct {
	mesh *Mesh

	nodeSets    map[string]*NodeSet
	elementSets map[string]*ElementSet
	surfaceSets map[string]*SurfaceSet

	materials map[string]*Material
	sections  []*Section

	concentratedLoads []*ConcentratedLoad
	surfaceTractions  []*SurfaceTraction
	pressures         []*Pressure
	bodyLoads         []*BodyLoad
	accelerations     []*Acceleration
	boundaryConditions []*BoundaryCondition

	dofsBuilt bool
}

// NewMDB creates an empty model database wrapping the given mesh.
func NewMDB(mesh *Mesh) *MDB {
	return &MDB{
		mesh:        mesh,
		nodeSets:    map[string]*NodeSet{},
		elementSets: map[string]*ElementSet{},
		surfaceSets: map[string]*SurfaceSet{},
		materials:   map[string]*Material{},
	}
}

// FromFile builds an MDB by dispatching on the file extension to the appropriate
// MeshReader implementation. Currently only ".inp" (Abaqus) input decks are supported.
func FromFile(path string, newReader func(path string) (MeshReader, error)) (*MDB, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".inp" {
		return nil, chk.Err("unsupported file extension: %q", ext)
	}
	reader, err := newReader(path)
	if err != nil {
		return nil, err
	}
	mesh := FromReader(reader)
	mdb := NewMDB(mesh)
	for name, indices := range reader.NodeSets() {
		mdb.NodeSetFromIndices(name, indices)
	}
	for name, indices := range reader.ElementSets() {
		mdb.ElementSetFromIndices(name, indices)
	}
	return mdb, nil
}

func (m *MDB) Mesh() *Mesh { return m.mesh }

func (m *MDB) NodeSets() map[string]*NodeSet       { return m.nodeSets }
func (m *MDB) ElementSets() map[string]*ElementSet { return m.elementSets }
func (m *MDB) SurfaceSets() map[string]*SurfaceSet { return m.surfaceSets }
func (m *MDB) Materials() map[string]*Material     { return m.materials }
func (m *MDB) Sections() []*Section                { return m.sections }

func (m *MDB) ConcentratedLoads() []*ConcentratedLoad     { return m.concentratedLoads }
func (m *MDB) SurfaceTractions() []*SurfaceTraction       { return m.surfaceTractions }
func (m *MDB) Pressures() []*Pressure                     { return m.pressures }
func (m *MDB) BodyLoads() []*BodyLoad                     { return m.bodyLoads }
func (m *MDB) Accelerations() []*Acceleration              { return m.accelerations }
func (m *MDB) BoundaryConditions() []*BoundaryCondition    { return m.boundaryConditions }

// NodeSetFromIndices registers a named node set. Panics on a duplicate name.
func (m *MDB) NodeSetFromIndices(name string, indices []int) *NodeSet {
	if _, exists := m.nodeSets[name]; exists {
		chk.Panic("invalid input: node set %q already exists", name)
	}
	s := NewNodeSet(name, indices)
	m.nodeSets[name] = s
	return s
}

// ElementSetFromIndices registers a named element set. Panics on a duplicate name.
func (m *MDB) ElementSetFromIndices(name string, indices []int) *ElementSet {
	if _, exists := m.elementSets[name]; exists {
		chk.Panic("invalid input: element set %q already exists", name)
	}
	s := NewElementSet(name, indices)
	m.elementSets[name] = s
	return s
}

// SurfaceSetFromNodes builds a named surface set containing every element surface whose
// nodes all lie within the given node-index set. This
// walks the node-to-element incidence once, then checks each candidate element's
// surfaces against the node set membership.
func (m *MDB) SurfaceSetFromNodes(name string, nodeIndices []int) *SurfaceSet {
	if _, exists := m.surfaceSets[name]; exists {
		chk.Panic("invalid input: surface set %q already exists", name)
	}
	inSet := make(map[int]bool, len(nodeIndices))
	for _, n := range nodeIndices {
		inSet[n] = true
	}

	candidateElements := map[int]bool{}
	for _, n := range nodeIndices {
		if n < 0 || n >= m.mesh.NodeCount() {
			continue
		}
		for _, ei := range m.mesh.ElementsAtNode(n) {
			candidateElements[ei] = true
		}
	}

	var indices []SurfaceIndex
	for ei := range candidateElements {
		e := m.mesh.Elements()[ei]
		for _, surf := range e.Surfaces() {
			all := true
			for _, gi := range surf.GlobalNodeIndices() {
				if !inSet[gi] {
					all = false
					break
				}
			}
			if all {
				_, local := surf.Index()
				indices = append(indices, SurfaceIndex{Element: ei, Local: local})
			}
		}
	}
	s := NewSurfaceSet(name, indices)
	m.surfaceSets[name] = s
	return s
}

// Material registers a named material. Panics on a duplicate name.
func (m *MDB) Material(name string, young, poisson, density float64) *Material {
	if _, exists := m.materials[name]; exists {
		chk.Panic("invalid input: material %q already exists", name)
	}
	mat := NewMaterial(name, young, poisson, density)
	m.materials[name] = mat
	return mat
}

// SectionDef registers a section assigned to an element-set region.
func (m *MDB) SectionDef(region string, material *Material, kind SectionType, thickness float64, reducedIntegration bool) *Section {
	s := NewSection(region, material, kind, thickness, reducedIntegration)
	m.sections = append(m.sections, s)
	return s
}

func (m *MDB) ConcentratedLoad(region string, x, y, z float64) *ConcentratedLoad {
	c := NewConcentratedLoad(region, x, y, z)
	m.concentratedLoads = append(m.concentratedLoads, c)
	return c
}

func (m *MDB) SurfaceTraction(region string, x, y, z float64) *SurfaceTraction {
	t := NewSurfaceTraction(region, x, y, z)
	m.surfaceTractions = append(m.surfaceTractions, t)
	return t
}

func (m *MDB) Pressure(region string, magnitude float64) *Pressure {
	p := NewPressure(region, magnitude)
	m.pressures = append(m.pressures, p)
	return p
}

func (m *MDB) BodyLoad(region string, x, y, z float64) *BodyLoad {
	b := NewBodyLoad(region, x, y, z)
	m.bodyLoads = append(m.bodyLoads, b)
	return b
}

func (m *MDB) Acceleration(region string, x, y, z float64) *Acceleration {
	a := NewAcceleration(region, x, y, z)
	m.accelerations = append(m.accelerations, a)
	return a
}

func (m *MDB) BoundaryCondition(region string, u, v, w *float64) *BoundaryCondition {
	b := NewBoundaryCondition(region, u, v, w)
	m.boundaryConditions = append(m.boundaryConditions, b)
	return b
}

// BuildDOFs enumerates active and inactive degrees of freedom over the whole mesh.
//
// Each node has ndim components (ndim = mesh.ModelingSpace()). A component starts
// active; any boundary condition that constrains it over a node in its region marks it
// inactive. Active ids are then assigned densely as 0..activeCount-1, and inactive ids
// independently as 0..inactiveCount-1, walking nodes and components in index order.
// Per-node and per-element local/global active/inactive DOF tuples are grouped
// node-major (local dof index = i*ndim + component).
func (m *MDB) BuildDOFs() {
	ndim := int(m.mesh.ModelingSpace())
	nodeCount := m.mesh.NodeCount()

	tableActive := make([][]bool, nodeCount)
	for i := range tableActive {
		tableActive[i] = make([]bool, ndim)
		for d := range tableActive[i] {
			tableActive[i][d] = true
		}
	}

	for _, bc := range m.boundaryConditions {
		set, ok := m.nodeSets[bc.Region]
		if !ok {
			continue
		}
		dofs := bc.DOFs()
		for _, ni := range set.Indices {
			for _, d := range dofs {
				if d < ndim {
					tableActive[ni][d] = false
				}
			}
		}
	}

	tableDOFs := make([][]int, nodeCount)
	activeCount, inactiveCount := 0, 0
	for i := 0; i < nodeCount; i++ {
		tableDOFs[i] = make([]int, ndim)
		for d := 0; d < ndim; d++ {
			if tableActive[i][d] {
				tableDOFs[i][d] = activeCount
				activeCount++
			} else {
				tableDOFs[i][d] = inactiveCount
				inactiveCount++
			}
		}
	}

	for i := 0; i < nodeCount; i++ {
		n := m.mesh.Nodes()[i]
		var activeLocal, activeGlobal, inactiveLocal, inactiveGlobal []int
		for d := 0; d < ndim; d++ {
			if tableActive[i][d] {
				activeLocal = append(activeLocal, d)
				activeGlobal = append(activeGlobal, tableDOFs[i][d])
			} else {
				inactiveLocal = append(inactiveLocal, d)
				inactiveGlobal = append(inactiveGlobal, tableDOFs[i][d])
			}
		}
		n.setDOFs(activeLocal, activeGlobal, inactiveLocal, inactiveGlobal)
	}

	for _, e := range m.mesh.Elements() {
		var activeLocal, activeGlobal, inactiveLocal, inactiveGlobal []int
		for li, gi := range e.NodeIndices() {
			for d := 0; d < ndim; d++ {
				localDOF := li*ndim + d
				if tableActive[gi][d] {
					activeLocal = append(activeLocal, localDOF)
					activeGlobal = append(activeGlobal, tableDOFs[gi][d])
				} else {
					inactiveLocal = append(inactiveLocal, localDOF)
					inactiveGlobal = append(inactiveGlobal, tableDOFs[gi][d])
				}
			}
		}
		e.setDOFs(activeLocal, activeGlobal, inactiveLocal, inactiveGlobal)
	}

	m.mesh.setDOFCounts(activeCount, inactiveCount)
	m.dofsBuilt = true
}

// AssignElementProperties assigns each section's material and the section itself to
// every element in the section's region element set.
func (m *MDB) AssignElementProperties() {
	for _, s := range m.sections {
		set, ok := m.elementSets[s.Region]
		if !ok {
			chk.Panic("invalid model: section references unknown region %q", s.Region)
		}
		for _, ei := range set.Indices {
			m.mesh.Elements()[ei].setProperties(s, s.Material)
		}
	}
}

func (m *MDB) DOFsBuilt() bool { return m.dofsBuilt }
