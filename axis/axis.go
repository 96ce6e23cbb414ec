/*
Package axis provides the Frame type: a rigid set of atom positions carried
together with a local right-handed coordinate frame. The frame is stored as
four points (the endpoints of the unit X, Y and Z axes, and the origin) so
that any rigid motion applied uniformly to every point keeps the atoms and
their frame consistent.

No operation here re-centers implicitly. Rotations are about the coordinate
system origin, so callers rotating about some other point translate to and
from it explicitly.
*/
package axis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/rmsd"
)

// ErrEmpty is returned when fitting a point set containing no points.
var ErrEmpty = errors.New("no points to fit")

// ShapeMismatchError is returned when two frames that must have the same
// number of points do not.
type ShapeMismatchError struct {
	Got, Want int
}

func (err ShapeMismatchError) Error() string {
	return fmt.Sprintf("frame has %d points but %d were expected",
		err.Got, err.Want)
}

// PointSet selects which points of a frame take part in a fit.
type PointSet int

const (
	// Atoms fits atom positions only.
	Atoms PointSet = iota
	// Axes fits the four frame points only: X, Y, Z endpoints and origin.
	Axes
	// All fits atoms followed by the four frame points.
	All
)

// Frame is a set of atoms plus the endpoints of a unit coordinate frame.
// The number and order of atoms is fixed by whoever created the frame, and
// must match between any two frames that are fit against each other.
type Frame struct {
	Atoms  []r3.Vec
	X      r3.Vec
	Y      r3.Vec
	Z      r3.Vec
	Origin r3.Vec

	rot rmsd.Matrix
}

// New returns a frame with room for natom atoms (all at the origin) and
// principal axes.
func New(natom int) *Frame {
	f := &Frame{Atoms: make([]r3.Vec, natom)}
	f.SetPrincipalAxes()
	return f
}

// SetPrincipalAxes resets the frame to the identity: the origin at the
// coordinate system origin, and the axis endpoints at unit distance along the
// global X, Y and Z axes. Atoms are not touched.
func (f *Frame) SetPrincipalAxes() {
	f.X = r3.Vec{X: 1}
	f.Y = r3.Vec{Y: 1}
	f.Z = r3.Vec{Z: 1}
	f.Origin = r3.Vec{}
	f.rot = rmsd.Identity()
}

// Len returns the number of atoms in the frame.
func (f *Frame) Len() int {
	return len(f.Atoms)
}

// Copy returns a deep copy of f.
func (f *Frame) Copy() *Frame {
	c := *f
	c.Atoms = append([]r3.Vec(nil), f.Atoms...)
	return &c
}

// SetFromFrame copies all point data of other into f. Both frames must have
// the same number of atoms.
func (f *Frame) SetFromFrame(other *Frame) error {
	if len(f.Atoms) != len(other.Atoms) {
		return ShapeMismatchError{Got: len(other.Atoms), Want: len(f.Atoms)}
	}
	copy(f.Atoms, other.Atoms)
	f.X, f.Y, f.Z, f.Origin = other.X, other.Y, other.Z, other.Origin
	f.rot = other.rot
	return nil
}

// Translate shifts every point in the frame by v.
func (f *Frame) Translate(v r3.Vec) {
	for i := range f.Atoms {
		f.Atoms[i] = r3.Add(f.Atoms[i], v)
	}
	f.X = r3.Add(f.X, v)
	f.Y = r3.Add(f.Y, v)
	f.Z = r3.Add(f.Z, v)
	f.Origin = r3.Add(f.Origin, v)
}

// Rotate applies m to every point in the frame.
func (f *Frame) Rotate(m rmsd.Matrix) {
	for i := range f.Atoms {
		f.Atoms[i] = m.Apply(f.Atoms[i])
	}
	f.X = m.Apply(f.X)
	f.Y = m.Apply(f.Y)
	f.Z = m.Apply(f.Z)
	f.Origin = m.Apply(f.Origin)
}

// InverseRotate applies the transpose of m to every point in the frame.
func (f *Frame) InverseRotate(m rmsd.Matrix) {
	f.Rotate(m.Transpose())
}

// FlipYZ reflects the Y and Z axis endpoints through the origin. Atoms, the
// X endpoint and the origin are unchanged. This turns a base frame into the
// antiparallel convention of its partner strand, and is its own inverse.
func (f *Frame) FlipYZ() {
	f.Y = r3.Sub(f.Origin, r3.Sub(f.Y, f.Origin))
	f.Z = r3.Sub(f.Origin, r3.Sub(f.Z, f.Origin))
}

// Points returns a fresh slice of the points selected by set.
func (f *Frame) Points(set PointSet) []r3.Vec {
	var ps []r3.Vec
	if set == Atoms || set == All {
		ps = append(ps, f.Atoms...)
	}
	if set == Axes || set == All {
		ps = append(ps, f.X, f.Y, f.Z, f.Origin)
	}
	return ps
}

// RMSD computes the least-squares rigid transformation carrying the points
// of f selected by set onto the same points of target. Neither frame is
// modified; apply the result with Apply.
func (f *Frame) RMSD(target *Frame, set PointSet) (rmsd.Fit, error) {
	src, tgt := f.Points(set), target.Points(set)
	if len(src) != len(tgt) {
		return rmsd.Fit{}, ShapeMismatchError{Got: len(tgt), Want: len(src)}
	}
	if len(src) == 0 {
		return rmsd.Fit{}, ErrEmpty
	}
	return rmsd.Superpose(src, tgt), nil
}

// Apply carries every point in f through fit: translate by fit.SrcShift,
// rotate by fit.Rotation, then translate by fit.TgtShift.
func (f *Frame) Apply(fit rmsd.Fit) {
	f.Translate(fit.SrcShift)
	f.Rotate(fit.Rotation)
	f.Translate(fit.TgtShift)
}

// StoreRotMatrix records m as the orientation of this frame. It is
// bookkeeping only and does not move any point.
func (f *Frame) StoreRotMatrix(m rmsd.Matrix) {
	f.rot = m
}

// Orientation returns the matrix last recorded with StoreRotMatrix. Frames
// made by New (or reset by SetPrincipalAxes) start with the identity.
func (f *Frame) Orientation() rmsd.Matrix {
	return f.rot
}

// XAxis returns the X axis as a vector relative to the origin.
func (f *Frame) XAxis() r3.Vec { return r3.Sub(f.X, f.Origin) }

// YAxis returns the Y axis as a vector relative to the origin.
func (f *Frame) YAxis() r3.Vec { return r3.Sub(f.Y, f.Origin) }

// ZAxis returns the Z axis as a vector relative to the origin.
func (f *Frame) ZAxis() r3.Vec { return r3.Sub(f.Z, f.Origin) }
