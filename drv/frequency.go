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

// Frequency extracts the k lowest undamped natural frequencies and corresponding mode
// shapes, writing one output frame per mode. Grounded on
// original_source/feapack/solver/main.py's _frequencyAnalysis.
func Frequency(mdb *model.MDB, k, workers int, outPath string, log *logger) error {
	log.Log("Building algebraic system...")

	stiffness := asm.StiffnessMatrix(mdb, workers)
	mass := asm.MassMatrix(mdb, workers)

	log.Log("Solving eigenproblem...")

	result := la.GenEigen(stiffness.Aa, mass.Aa, k)

	log.Log("General post-processing...")

	frequencies := make([]float64, k)
	for i, lambda := range result.Values {
		frequencies[i] = math.Sqrt(lambda) / (2.0 * math.Pi)

		mPhi := make([]float64, len(result.Vectors[i]))
		mass.Aa.MulVec(mPhi, 1.0, result.Vectors[i], 0.0, false)
		norm := math.Sqrt(floats.Dot(result.Vectors[i], mPhi))
		floats.Scale(1.0/norm, result.Vectors[i])
	}

	db, err := out.Open(outPath, out.Write)
	if err != nil {
		return err
	}

	zerosB := make([]float64, mdb.Mesh().InactiveDOFCount())
	for i := range result.Values {
		log.Log("Writing output frame %d to file...", i)

		disp := post.UnshuffleVector(mdb, result.Vectors[i], zerosB)
		nodeOutput := []out.NodeOutput{
			{Title: "Displacement>Displacement in X", Values: col(disp, 0)},
			{Title: "Displacement>Displacement in Y", Values: col(disp, 1)},
			{Title: "Displacement>Displacement in Z", Values: col(disp, 2)},
			{Title: "Displacement>Magnitude of Displacement", Values: col(disp, 3)},
		}
		globalOutput := []out.GlobalOutput{
			{Title: "General>Eigenvalue", Value: result.Values[i]},
			{Title: "General>Frequency", Value: frequencies[i]},
			{Title: "General>Residual", Value: result.Resid[i]},
		}
		description := io.Sf("Mode %d: Frequency = %+.3E", i+1, frequencies[i])
		if err := db.WriteNextFrame(description, mdb.Mesh(), nodeOutput, globalOutput); err != nil {
			return err
		}
	}
	return nil
}

func col(m [][4]float64, c int) []float64 {
	v := make([]float64, len(m))
	for i := range v {
		v[i] = m[i][c]
	}
	return v
}
