package rmsd

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	matrix "github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-6

var rng = rand.New(rand.NewSource(1))

func ExampleRMSD() {
	struct1 := []r3.Vec{
		{X: -2.803, Y: -15.373, Z: 24.556},
		{X: 0.893, Y: -16.062, Z: 25.147},
		{X: 1.368, Y: -12.371, Z: 25.885},
		{X: -1.651, Y: -12.153, Z: 28.177},
		{X: -0.440, Y: -15.218, Z: 30.068},
		{X: 2.551, Y: -13.273, Z: 31.372},
		{X: 0.105, Y: -11.330, Z: 33.567},
	}
	struct2 := []r3.Vec{
		{X: -14.739, Y: -18.673, Z: 15.040},
		{X: -12.473, Y: -15.810, Z: 16.074},
		{X: -14.802, Y: -13.307, Z: 14.408},
		{X: -17.782, Y: -14.852, Z: 16.171},
		{X: -16.124, Y: -14.617, Z: 19.584},
		{X: -15.029, Y: -11.037, Z: 18.902},
		{X: -18.577, Y: -10.001, Z: 17.996},
	}
	fmt.Printf("RMSD: %f\n", RMSD(struct1, struct2))
	fmt.Printf("RMSD: %f\n", RMSD(struct2, struct1))
	// Output:
	// RMSD: 0.719106
	// RMSD: 0.719106
}

func TestSuperposeIdentical(t *testing.T) {
	for i := 0; i < 100; i++ {
		points := randomPoints(3 + rng.Intn(10))
		fit := Superpose(points, points)

		if !matEqual(fit.Rotation, Identity()) {
			t.Fatalf("Fitting a point set onto itself gave rotation\n%s",
				tmat(fit.Rotation[:]))
		}
		if shift := r3.Add(fit.SrcShift, fit.TgtShift); r3.Norm(shift) > tolerance {
			t.Fatalf("Fitting a point set onto itself gave a net "+
				"translation of %v", shift)
		}
		if fit.RMSD > tolerance {
			t.Fatalf("Fitting a point set onto itself gave RMSD %f", fit.RMSD)
		}
	}
}

func TestSuperposePlanar(t *testing.T) {
	// Base atoms lie in a plane, which makes the covariance matrix rank 2.
	points := []r3.Vec{
		{X: -2.479, Y: 5.346}, {X: -1.291, Y: 4.498}, {X: 0.024, Y: 4.897},
		{X: 0.877, Y: 3.902}, {X: 0.071, Y: 2.771}, {X: 0.369, Y: 1.398},
	}
	rot := AxisAngle(r3.Vec{X: 1, Y: 2, Z: 3}, 1.1)
	shift := r3.Vec{X: 4, Y: -2, Z: 7}
	moved := make([]r3.Vec, len(points))
	for i, p := range points {
		moved[i] = r3.Add(rot.Apply(p), shift)
	}

	fit := Superpose(points, moved)
	if !matEqual(fit.Rotation, rot) {
		t.Fatalf("Expected rotation\n%s\nbut got\n%s",
			tmat(rot[:]), tmat(fit.Rotation[:]))
	}
	if fit.Rotation.Det() < 0 {
		t.Fatalf("Rotation is improper:\n%s", tmat(fit.Rotation[:]))
	}
	for i, p := range points {
		if d := r3.Norm(r3.Sub(fit.Transform(p), moved[i])); d > tolerance {
			t.Fatalf("Point %d is %f away from its target after fitting.",
				i, d)
		}
	}
}

func TestSuperposeRecoversRotation(t *testing.T) {
	for i := 0; i < 1000; i++ {
		points := randomPoints(4 + rng.Intn(8))
		rot := AxisAngle(randomPoint(), rng.Float64()*math.Pi)
		shift := randomPoint()
		moved := make([]r3.Vec, len(points))
		for j, p := range points {
			moved[j] = r3.Add(rot.Apply(p), shift)
		}

		fit := Superpose(points, moved)
		if !matEqual(fit.Rotation, rot) {
			t.Fatalf("Expected rotation\n%s\nbut got\n%s",
				tmat(rot[:]), tmat(fit.Rotation[:]))
		}
		if fit.RMSD > tolerance {
			t.Fatalf("Rigidly moved points have RMSD %f", fit.RMSD)
		}
	}
}

func TestRMSDSymmetric(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := 3 + rng.Intn(10)
		a, b := randomPoints(n), randomPoints(n)
		ab, ba := RMSD(a, b), RMSD(b, a)
		if math.Abs(ab-ba) > tolerance {
			t.Fatalf("RMSD(a, b) = %f but RMSD(b, a) = %f", ab, ba)
		}
	}
}

func TestSuperposeDoesNotMutate(t *testing.T) {
	a, b := randomPoints(6), randomPoints(6)
	ac, bc := append([]r3.Vec(nil), a...), append([]r3.Vec(nil), b...)
	Superpose(a, b)
	for i := range a {
		if a[i] != ac[i] || b[i] != bc[i] {
			t.Fatalf("Superpose modified its input at point %d.", i)
		}
	}
}

func TestSuperposeLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Superpose did not panic on point sets of unequal size.")
		}
	}()
	Superpose(randomPoints(3), randomPoints(4))
}

func TestAxisAngle(t *testing.T) {
	for i := 0; i < 1000; i++ {
		u := r3.Unit(randomPoint())
		theta := 0.01 + rng.Float64()*(math.Pi-0.02)
		rot := AxisAngle(u, theta)

		if d := rot.Det(); math.Abs(d-1) > tolerance {
			t.Fatalf("Rotation matrix has determinant %f", d)
		}
		if got := rot.Angle(); math.Abs(got-theta) > tolerance {
			t.Fatalf("Expected angle %f but got %f", theta, got)
		}
		axis, err := rot.Axis(theta)
		if err != nil {
			t.Fatalf("Could not extract axis for angle %f: %s", theta, err)
		}
		if r3.Norm(r3.Sub(axis, u)) > tolerance {
			t.Fatalf("Expected axis %v but got %v", u, axis)
		}

		half := AxisAngle(axis, theta/2)
		if !matEqual(half.Mult(half), rot) {
			t.Fatalf("Two half rotations do not compose to\n%s",
				tmat(rot[:]))
		}
		if !matEqual(half.Mult(half.Transpose()), Identity()) {
			t.Fatal("Transpose of a rotation is not its inverse.")
		}
	}
}

func TestAxisDegenerate(t *testing.T) {
	tests := []Matrix{
		Identity(),
		AxisAngle(r3.Vec{Z: 1}, math.Pi),
		AxisAngle(r3.Vec{X: 1, Y: 1}, 1e-9),
	}
	for _, test := range tests {
		if _, err := test.Axis(test.Angle()); err != ErrDegenerateAxis {
			t.Fatalf("Expected a degenerate axis for\n%s\nbut got %v",
				tmat(test[:]), err)
		}
	}
}

func TestCovariant(t *testing.T) {
	cols := 11
	for i := 0; i < 1000; i++ {
		test1, test2 := randomMatrix(3, cols), randomMatrix(3, cols)

		// Compute our covariant
		tC_ := covariant_3x3(cols, test1, test2)
		tC := tmat(tC_[:])

		// Now compute the "correct" covariant.
		mat1 := matrix.MakeDenseMatrix(test1, 3, cols)
		mat2 := matrix.MakeDenseMatrix(test2, 3, cols)
		aC_, _ := mat1.TimesDense(mat2.Transpose())
		aC := tmat(aC_.Array())

		if !tC.equal(aC) {
			t.Fatalf("The covariant of\n%s\nand\n%s\nis\n%s\nbut we said\n%s\n",
				tmat(test1), tmat(test2), aC, tC)
		}
	}
}

func TestMult(t *testing.T) {
	for i := 0; i < 1000; i++ {
		var a, b Matrix
		copy(a[:], randomMatrix(3, 3))
		copy(b[:], randomMatrix(3, 3))
		tC_ := a.Mult(b)

		mat1 := matrix.MakeDenseMatrix(append([]float64(nil), a[:]...), 3, 3)
		mat2 := matrix.MakeDenseMatrix(append([]float64(nil), b[:]...), 3, 3)
		aC_, _ := mat1.TimesDense(mat2)

		if tC, aC := tmat(tC_[:]), tmat(aC_.Array()); !tC.equal(aC) {
			t.Fatalf("The product of\n%s\nand\n%s\nis\n%s\nbut we said\n%s\n",
				tmat(a[:]), tmat(b[:]), aC, tC)
		}
	}
}

func BenchmarkSuperpose(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		atoms1 := randomPoints(11)
		atoms2 := randomPoints(11)
		b.StartTimer()
		Superpose(atoms1, atoms2)
	}
}

type tmat []float64

func (m tmat) String() string {
	return fmt.Sprintf(`
|%f  %f  %f|
|%f  %f  %f|
|%f  %f  %f|
`, m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// equal compares relative to magnitude, since the entries of random
// matrices can be large.
func (m1 tmat) equal(m2 tmat) bool {
	for i := 0; i < 9; i++ {
		scale := math.Max(1, math.Abs(m2[i]))
		if math.Abs(m1[i]-m2[i]) > 1e-9*scale {
			return false
		}
	}
	return true
}

func matEqual(a, b Matrix) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

func randomMatrix(rows, cols int) (m []float64) {
	m = make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m[r*cols+c] = rng.Float64() * float64(rng.Intn(1000))
		}
	}
	return
}

func randomPoints(cnt int) []r3.Vec {
	points := make([]r3.Vec, cnt)
	for i := 0; i < cnt; i++ {
		points[i] = randomPoint()
	}
	return points
}

func randomPoint() r3.Vec {
	return r3.Vec{
		X: rng.Float64()*20 - 10,
		Y: rng.Float64()*20 - 10,
		Z: rng.Float64()*20 - 10,
	}
}
