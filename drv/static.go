package drv

import (
	"math"

	"github.com/carlos-souto/FEAPACK/asm"
	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/out"
	"github.com/carlos-souto/FEAPACK/post"
	"gonum.org/v1/gonum/floats"
)

// Static performs a linear-elastic static analysis, writing the undeformed and deformed
// states as frames 0 and 1 of the output database at outPath. Grounded on
// original_source/feapack/solver/main.py's _staticAnalysis.
func Static(mdb *model.MDB, workers int, outPath string, log *logger) error {
	log.Log("Building algebraic system...")

	k := asm.StiffnessMatrix(mdb, workers)

	activeDOFCount := mdb.Mesh().ActiveDOFCount()
	pa := make([]float64, activeDOFCount)
	floats.Add(pa, asm.ConcentratedLoadVector(mdb))
	floats.Add(pa, asm.SurfaceLoadVector(mdb, workers))
	floats.Add(pa, asm.BodyLoadVector(mdb, workers))

	ub := asm.PrescribedDisplacementVector(mdb)

	log.Log("Solving algebraic system...")

	rhs := make([]float64, activeDOFCount)
	k.Ab.MulVec(rhs, -1.0, ub, 0.0, false)
	floats.Add(rhs, pa)
	ua := la.Solve(k.Aa, rhs)

	log.Log("General post-processing...")

	strainEnergy := 0.5 * floats.Dot(ua, rhs)

	pb := make([]float64, mdb.Mesh().InactiveDOFCount())
	k.Ba.MulVec(pb, 1.0, ua, 0.0, false)
	k.Bb.MulVec(pb, 1.0, ub, 1.0, false)

	internal := asm.InternalForceVector(mdb, ua, ub, workers)

	diff := make([]float64, activeDOFCount)
	floats.SubTo(diff, rhs, internal.Fa)
	residual := floats.Norm(diff, math.Inf(1))

	elements := mdb.Mesh().Elements()
	strainNds := make([][][]float64, len(elements))
	stressNds := make([][][]float64, len(elements))
	for i, e := range elements {
		strainNds[i] = post.ExtrapolateWithinElement(e, post.ExtendStrain(e, internal.Strains[i]))
		stressNds[i] = post.ExtrapolateWithinElement(e, post.ExtendStress(e, internal.Stresses[i]))
	}
	strainMesh := post.Smoothing(mdb, strainNds)
	stressMesh := post.Smoothing(mdb, stressNds)

	zerosA := make([]float64, activeDOFCount)
	zerosB := make([]float64, mdb.Mesh().InactiveDOFCount())
	disp := post.UnshuffleVector(mdb, ua, ub)
	reac := post.UnshuffleVector(mdb, zerosA, pb)
	forc := post.UnshuffleVector(mdb, pa, zerosB)

	log.Log("Writing output frame 0 to file...")

	db, err := out.Open(outPath, out.Write)
	if err != nil {
		return err
	}
	if err := db.WriteNextFrame("Increment 0: Time = 0.0", mdb.Mesh(), nil, nil); err != nil {
		return err
	}

	log.Log("Writing output frame 1 to file...")

	nodeCount := mdb.Mesh().NodeCount()
	rowOf := func(m [][]float64, r int) []float64 {
		v := make([]float64, nodeCount)
		for i := range v {
			v[i] = m[i][r]
		}
		return v
	}

	nodeOutput := []out.NodeOutput{
		{Title: "Displacement>Displacement in X", Values: col(disp, 0)},
		{Title: "Displacement>Displacement in Y", Values: col(disp, 1)},
		{Title: "Displacement>Displacement in Z", Values: col(disp, 2)},
		{Title: "Displacement>Magnitude of Displacement", Values: col(disp, 3)},
		{Title: "Reaction Force>Reaction Force in X", Values: col(reac, 0)},
		{Title: "Reaction Force>Reaction Force in Y", Values: col(reac, 1)},
		{Title: "Reaction Force>Reaction Force in Z", Values: col(reac, 2)},
		{Title: "Reaction Force>Magnitude of Reaction Force", Values: col(reac, 3)},
		{Title: "Nodal Force>Nodal Force in X", Values: col(forc, 0)},
		{Title: "Nodal Force>Nodal Force in Y", Values: col(forc, 1)},
		{Title: "Nodal Force>Nodal Force in Z", Values: col(forc, 2)},
		{Title: "Nodal Force>Magnitude of Nodal Force", Values: col(forc, 3)},
		{Title: "Strain>Component XX of Strain", Values: rowOf(strainMesh, 0)},
		{Title: "Strain>Component YY of Strain", Values: rowOf(strainMesh, 1)},
		{Title: "Strain>Component ZZ of Strain", Values: rowOf(strainMesh, 2)},
		{Title: "Strain>Component YZ of Strain", Values: rowOf(strainMesh, 3)},
		{Title: "Strain>Component ZX of Strain", Values: rowOf(strainMesh, 4)},
		{Title: "Strain>Component XY of Strain", Values: rowOf(strainMesh, 5)},
		{Title: "Strain>Max. Principal Value of Strain", Values: rowOf(strainMesh, 6)},
		{Title: "Strain>Mid. Principal Value of Strain", Values: rowOf(strainMesh, 7)},
		{Title: "Strain>Min. Principal Value of Strain", Values: rowOf(strainMesh, 8)},
		{Title: "Strain>Major Principal Value of Strain", Values: rowOf(strainMesh, 9)},
		{Title: "Stress>Component XX of Stress", Values: rowOf(stressMesh, 0)},
		{Title: "Stress>Component YY of Stress", Values: rowOf(stressMesh, 1)},
		{Title: "Stress>Component ZZ of Stress", Values: rowOf(stressMesh, 2)},
		{Title: "Stress>Component YZ of Stress", Values: rowOf(stressMesh, 3)},
		{Title: "Stress>Component ZX of Stress", Values: rowOf(stressMesh, 4)},
		{Title: "Stress>Component XY of Stress", Values: rowOf(stressMesh, 5)},
		{Title: "Stress>Max. Principal Value of Stress", Values: rowOf(stressMesh, 6)},
		{Title: "Stress>Mid. Principal Value of Stress", Values: rowOf(stressMesh, 7)},
		{Title: "Stress>Min. Principal Value of Stress", Values: rowOf(stressMesh, 8)},
		{Title: "Stress>Major Principal Value of Stress", Values: rowOf(stressMesh, 9)},
		{Title: "Stress>Equivalent Tresca Stress", Values: rowOf(stressMesh, 10)},
		{Title: "Stress>Equivalent Mises Stress", Values: rowOf(stressMesh, 11)},
		{Title: "Stress>Equivalent Pressure Stress", Values: rowOf(stressMesh, 12)},
	}
	globalOutput := []out.GlobalOutput{
		{Title: "General>Time", Value: 1.0},
		{Title: "General>Residual", Value: residual},
		{Title: "General>Strain Energy", Value: strainEnergy},
	}
	return db.WriteNextFrame("Increment 1: Time = 1.0", mdb.Mesh(), nodeOutput, globalOutput)
}
