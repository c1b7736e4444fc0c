package drv

import (
	"math"

	"github.com/carlos-souto/FEAPACK/asm"
	"github.com/carlos-souto/FEAPACK/la"
	"github.com/carlos-souto/FEAPACK/model"
	"github.com/carlos-souto/FEAPACK/out"
	"github.com/carlos-souto/FEAPACK/post"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Buckling performs an eigenvalue buckling analysis: a static pre-analysis under the
// applied loads, followed by the generalized eigenproblem Saa*phi = mu*Kaa*phi on the
// resulting stress-stiffness matrix. The k eigenpairs with the smallest |mu| are kept and
// each is reported as the critical load factor -1/mu with its mode shape.
// Grounded on original_source/feapack/solver/main.py's _bucklingAnalysis.
func Buckling(mdb *model.MDB, k, workers int, outPath string, log *logger) error {
	log.Log("Building algebraic system for static analysis...")

	stiffness := asm.StiffnessMatrix(mdb, workers)

	activeDOFCount := mdb.Mesh().ActiveDOFCount()
	pa := make([]float64, activeDOFCount)
	floats.Add(pa, asm.ConcentratedLoadVector(mdb))
	floats.Add(pa, asm.SurfaceLoadVector(mdb, workers))
	floats.Add(pa, asm.BodyLoadVector(mdb, workers))

	ub := asm.PrescribedDisplacementVector(mdb)

	log.Log("Solving algebraic system (static analysis)...")

	rhs := make([]float64, activeDOFCount)
	stiffness.Ab.MulVec(rhs, -1.0, ub, 0.0, false)
	floats.Add(rhs, pa)
	ua := la.Solve(stiffness.Aa, rhs)

	log.Log("Building algebraic system for buckling analysis...")

	stress := asm.StressStiffnessMatrix(mdb, ua, ub, workers)

	log.Log("Solving eigenproblem...")

	result := la.GenEigen(stress.Aa, stiffness.Aa, k)
	eigenvalues := make([]float64, k)
	for i, mu := range result.Values {
		eigenvalues[i] = -1.0 / mu
	}

	log.Log("General post-processing...")

	for i := range result.Vectors {
		phi := result.Vectors[i]
		var norm float64
		for _, v := range phi {
			if math.Abs(v) > norm {
				norm = math.Abs(v)
			}
		}
		floats.Scale(1.0/norm, phi)
	}

	db, err := out.Open(outPath, out.Write)
	if err != nil {
		return err
	}

	zerosB := make([]float64, mdb.Mesh().InactiveDOFCount())
	for i := range eigenvalues {
		log.Log("Writing output frame %d to file...", i)

		disp := post.UnshuffleVector(mdb, result.Vectors[i], zerosB)
		nodeOutput := []out.NodeOutput{
			{Title: "Displacement>Displacement in X", Values: col(disp, 0)},
			{Title: "Displacement>Displacement in Y", Values: col(disp, 1)},
			{Title: "Displacement>Displacement in Z", Values: col(disp, 2)},
			{Title: "Displacement>Magnitude of Displacement", Values: col(disp, 3)},
		}
		globalOutput := []out.GlobalOutput{
			{Title: "General>Eigenvalue", Value: eigenvalues[i]},
			{Title: "General>Residual", Value: result.Resid[i]},
		}
		description := io.Sf("Mode %d: Eigenvalue = %+.3E", i+1, eigenvalues[i])
		if err := db.WriteNextFrame(description, mdb.Mesh(), nodeOutput, globalOutput); err != nil {
			return err
		}
	}
	return nil
}
