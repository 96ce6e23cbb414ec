package axis

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/rmsd"
)

const tolerance = 1e-6

func testFrame() *Frame {
	f := New(4)
	f.Atoms[0] = r3.Vec{X: -2.477, Y: 5.402}
	f.Atoms[1] = r3.Vec{X: -1.285, Y: 4.542}
	f.Atoms[2] = r3.Vec{X: -1.472, Y: 3.158}
	f.Atoms[3] = r3.Vec{X: -2.628, Y: 2.709, Z: 0.001}
	f.Rotate(rmsd.AxisAngle(r3.Vec{X: 1, Y: -1, Z: 2}, 0.7))
	f.Translate(r3.Vec{X: 3, Y: 1, Z: -5})
	return f
}

func TestPrincipalAxes(t *testing.T) {
	f := testFrame()
	f.SetPrincipalAxes()
	want := []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {}}
	got := f.Points(Axes)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Frame point %d is %v; expected %v", i, got[i], want[i])
		}
	}
	if f.Orientation() != rmsd.Identity() {
		t.Fatal("Principal axes did not reset the stored orientation.")
	}
}

func TestTranslateMovesEverything(t *testing.T) {
	f := testFrame()
	before := f.Points(All)
	v := r3.Vec{X: 1.5, Y: -2, Z: 0.25}
	f.Translate(v)
	for i, p := range f.Points(All) {
		if !vecEqual(p, r3.Add(before[i], v)) {
			t.Fatalf("Point %d was not translated by %v", i, v)
		}
	}
}

func TestRotateInverseRotate(t *testing.T) {
	f := testFrame()
	before := f.Points(All)
	m := rmsd.AxisAngle(r3.Vec{X: 0.3, Y: 0.2, Z: -1}, 2.1)
	f.Rotate(m)
	f.InverseRotate(m)
	for i, p := range f.Points(All) {
		if !vecEqual(p, before[i]) {
			t.Fatalf("Point %d is %v after rotating there and back; "+
				"expected %v", i, p, before[i])
		}
	}
}

func TestFlipYZ(t *testing.T) {
	f := testFrame()
	orig := f.Copy()

	f.FlipYZ()
	if !vecEqual(f.YAxis(), r3.Scale(-1, orig.YAxis())) ||
		!vecEqual(f.ZAxis(), r3.Scale(-1, orig.ZAxis())) {
		t.Fatal("FlipYZ did not negate the Y and Z axes.")
	}
	if f.X != orig.X || f.Origin != orig.Origin {
		t.Fatal("FlipYZ moved the X endpoint or the origin.")
	}
	for i := range f.Atoms {
		if f.Atoms[i] != orig.Atoms[i] {
			t.Fatalf("FlipYZ moved atom %d.", i)
		}
	}

	f.FlipYZ()
	for i, p := range f.Points(All) {
		if !vecEqual(p, orig.Points(All)[i]) {
			t.Fatalf("FlipYZ twice moved point %d to %v.", i, p)
		}
	}
}

func TestSetFromFrame(t *testing.T) {
	src := testFrame()
	dst := New(src.Len())
	if err := dst.SetFromFrame(src); err != nil {
		t.Fatal(err)
	}
	src.Translate(r3.Vec{X: 1})
	if dst.Atoms[0] == src.Atoms[0] {
		t.Fatal("SetFromFrame shares atom storage with its source.")
	}

	err := New(2).SetFromFrame(src)
	var shape ShapeMismatchError
	if !errors.As(err, &shape) {
		t.Fatalf("Expected a ShapeMismatchError but got %v", err)
	}
	if shape.Got != 4 || shape.Want != 2 {
		t.Fatalf("Unexpected mismatch %+v", shape)
	}
}

func TestRMSDSelfFit(t *testing.T) {
	f := testFrame()
	for _, set := range []PointSet{Atoms, Axes, All} {
		fit, err := f.RMSD(f.Copy(), set)
		if err != nil {
			t.Fatal(err)
		}
		if fit.RMSD > tolerance {
			t.Fatalf("Self fit has RMSD %f", fit.RMSD)
		}
		if r3.Norm(r3.Add(fit.SrcShift, fit.TgtShift)) > tolerance {
			t.Fatal("Self fit has a non-zero net translation.")
		}
		for i, v := range fit.Rotation {
			if math.Abs(v-rmsd.Identity()[i]) > tolerance {
				t.Fatalf("Self fit rotation is not the identity: %v",
					fit.Rotation)
			}
		}
	}
}

func TestRMSDApply(t *testing.T) {
	ref := testFrame()
	exp := ref.Copy()
	exp.Rotate(rmsd.AxisAngle(r3.Vec{Z: 1}, 1.2))
	exp.Translate(r3.Vec{X: 10, Y: -3})

	refCopy, expCopy := ref.Copy(), exp.Copy()
	fit, err := ref.RMSD(exp, Atoms)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range ref.Points(All) {
		if p != refCopy.Points(All)[i] || exp.Points(All)[i] != expCopy.Points(All)[i] {
			t.Fatal("RMSD modified one of its operands.")
		}
	}

	ref.Apply(fit)
	for i, p := range ref.Points(All) {
		if !vecEqual(p, exp.Points(All)[i]) {
			t.Fatalf("Applying the fit put point %d at %v; expected %v",
				i, p, exp.Points(All)[i])
		}
	}

	fwd, _ := refCopy.RMSD(expCopy, All)
	rev, _ := expCopy.RMSD(refCopy, All)
	if math.Abs(fwd.RMSD-rev.RMSD) > tolerance {
		t.Fatalf("RMSD is not symmetric: %f vs %f", fwd.RMSD, rev.RMSD)
	}
}

func TestRMSDShapeMismatch(t *testing.T) {
	_, err := New(3).RMSD(New(4), Atoms)
	if !errors.As(err, new(ShapeMismatchError)) {
		t.Fatalf("Expected a ShapeMismatchError but got %v", err)
	}
	if _, err := New(0).RMSD(New(0), Atoms); err != ErrEmpty {
		t.Fatalf("Expected ErrEmpty but got %v", err)
	}
	if _, err := New(0).RMSD(New(0), Axes); err != nil {
		t.Fatalf("Fitting frame points of atomless frames failed: %s", err)
	}
}

func vecEqual(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < tolerance
}
