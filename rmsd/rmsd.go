package rmsd

import (
	"fmt"
	"math"

	matrix "github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

// Fit is the least-squares rigid transformation superposing a source point
// set onto a target point set. A source point p is carried to
//
//	Rotation * (p + SrcShift) + TgtShift
//
// SrcShift is the negated centroid of the source, so the first translation
// centers the source at the origin. TgtShift is the centroid of the target.
// RMSD is the root mean square deviation after superposition.
type Fit struct {
	Rotation Matrix
	SrcShift r3.Vec
	TgtShift r3.Vec
	RMSD     float64
}

// Transform carries a single point through the fit.
func (f Fit) Transform(p r3.Vec) r3.Vec {
	return r3.Add(f.Rotation.Apply(r3.Add(p, f.SrcShift)), f.TgtShift)
}

// Superpose implements a version of the Kabsch alogrithm.
//
// A brief, high-level overview:
//
// Build the 3xN matrices X and Y containing, for the sets src and tgt
// respectively, the coordinates for each of the N points after centering
// the points by subtracting the centroids.
//
// Compute the covariance matrix C=X(Y^T)
//
// Compute the SVD (Singular Value Decomposition) of C=VS(W^T)
//
// Compute d=sign(det(W(V^T)))
//
// Compute the optimal rotation U as U = W([1 0 0] [0 1 0] [0 0 d])(V^T)
//
// Neither src nor tgt is modified.
//
// Note that Superpose will panic if the lengths of src and tgt differ or if
// they are empty. Superpose will also panic if the calculation of the SVD
// returns an error.
func Superpose(src, tgt []r3.Vec) Fit {
	if len(src) != len(tgt) {
		panic(fmt.Sprintf("Superposing two point sets requires that "+
			"they have equal length. But the lengths of the two sets "+
			"provided are %d and %d.", len(src), len(tgt)))
	}
	if len(src) == 0 {
		panic("Superposing two point sets requires at least one point.")
	}

	c1, c2 := centroid(src), centroid(tgt)

	cols := len(src)
	X := make([]float64, 3*cols)
	Y := make([]float64, 3*cols)
	for i := 0; i < cols; i++ {
		p, q := r3.Sub(src[i], c1), r3.Sub(tgt[i], c2)
		X[0*cols+i], X[1*cols+i], X[2*cols+i] = p.X, p.Y, p.Z
		Y[0*cols+i], Y[1*cols+i], Y[2*cols+i] = q.X, q.Y, q.Z
	}

	C := covariant_3x3(cols, X, Y)
	V, W := svd(C)

	// A negative determinant means W(V^T) is a reflection rather than a
	// proper rotation. Flipping the sign of the last column of W fixes it.
	VT := V.Transpose()
	if W.Mult(VT).Det() < 0 {
		adjust := Matrix{
			1, 0, 0,
			0, 1, 0,
			0, 0, -1,
		}
		W = W.Mult(adjust)
	}
	U := W.Mult(VT)

	var sum float64
	for i := 0; i < cols; i++ {
		p := r3.Vec{X: X[i], Y: X[cols+i], Z: X[2*cols+i]}
		q := r3.Vec{X: Y[i], Y: Y[cols+i], Z: Y[2*cols+i]}
		sum += r3.Norm2(r3.Sub(U.Apply(p), q))
	}
	return Fit{
		Rotation: U,
		SrcShift: r3.Scale(-1, c1),
		TgtShift: c2,
		RMSD:     math.Sqrt(sum / float64(cols)),
	}
}

// RMSD is a convenience for Superpose(struct1, struct2).RMSD.
func RMSD(struct1, struct2 []r3.Vec) float64 {
	return Superpose(struct1, struct2).RMSD
}

// svd returns V and W of the singular value decomposition C = VS(W^T).
func svd(C Matrix) (V, W Matrix) {
	elems := make([]float64, 9)
	copy(elems, C[:])
	mat := matrix.MakeDenseMatrix(elems, 3, 3)
	U, _, Wd, err := mat.SVD()
	if err != nil {
		panic(fmt.Sprintf("SVD of covariance matrix failed: %s", err))
	}
	copy(V[:], U.Array())
	copy(W[:], Wd.Array())
	return V, W
}

// centroid calculates the average position of a set of points.
func centroid(points []r3.Vec) r3.Vec {
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}
