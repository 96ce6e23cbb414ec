package nastruct

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/axis"
	"github.com/BurntSushi/nastruct/rmsd"
)

// PairAxis is the reference frame of one base pair.
type PairAxis struct {
	// Pair indexes the pairs given to PairAxes.
	Pair         int
	Base1, Base2 int

	// Frame is the base pair frame: the orientation half way between the
	// two bases, with its origin at the midpoint of their origins.
	Frame *axis.Frame

	// Half1 and Half2 are the two base frames after each was rotated half
	// way toward the other. Frame.Origin is the midpoint of their origins.
	Half1, Half2 *axis.Frame

	// Theta is the angle (radians) of the rotation superposing the second
	// base's flipped frame onto the first's, and Axis is its unit axis.
	Theta float64
	Axis  r3.Vec
}

// PairAxes builds the reference frame of every pair, in order.
//
// A pair whose frames are related by a rotation too close to 0 or 180 degrees
// has no well defined rotation axis; it is left out and a DegenerateAxisError
// for it is included in the returned error. Other pairs are unaffected.
func (e *Engine) PairAxes(axes []BaseAxis, pairs []Pair) ([]PairAxis, error) {
	var pas []PairAxis
	var errs []error
	for i, p := range pairs {
		pa, err := pairAxis(axes[p.Base1].Frame, axes[p.Base2].Frame)
		if err != nil {
			err = DegenerateAxisError{p.Base1, p.Base2, pa.Theta, err}
			e.log.Printf("Error: %s", err)
			errs = append(errs, err)
			continue
		}
		pa.Pair, pa.Base1, pa.Base2 = i, p.Base1, p.Base2

		z := pa.Frame.ZAxis()
		e.log.Printf("      %d) %d:%s -- %d:%s  %8.2f %8.2f %8.2f "+
			"%8.2f %8.2f %8.2f", i, p.Base1, e.bases[p.Base1].Type(),
			p.Base2, e.bases[p.Base2].Type(),
			pa.Frame.Origin.X, pa.Frame.Origin.Y, pa.Frame.Origin.Z,
			z.X, z.Y, z.Z)
		pas = append(pas, pa)
	}
	return pas, errors.Join(errs...)
}

// pairAxis computes the pair frame of two base frames. Neither argument is
// modified. On error, the returned PairAxis holds only Theta.
func pairAxis(base1, base2 *axis.Frame) (PairAxis, error) {
	b1, b2 := base1.Copy(), base2.Copy()

	// The partner strand runs antiparallel; flip its frame before fitting.
	flipped := b2.Copy()
	flipped.FlipYZ()
	fit, err := flipped.RMSD(b1, axis.Axes)
	if err != nil {
		return PairAxis{}, err
	}

	theta := fit.Rotation.Angle()
	u, err := fit.Rotation.Axis(theta)
	if err != nil {
		return PairAxis{Theta: theta}, fmt.Errorf("rotation of %f radians: %w",
			theta, err)
	}
	half := rmsd.AxisAngle(u, theta/2)

	// Rotations are about the coordinate origin, so each base is moved to
	// its fit center, rotated and moved back. Base 2 turns half way toward
	// base 1, and base 1 half way (the inverse rotation) toward base 2.
	b2.Translate(fit.SrcShift)
	b2.Rotate(half)
	b2.Translate(r3.Scale(-1, fit.SrcShift))

	b1.Translate(r3.Scale(-1, fit.TgtShift))
	b1.InverseRotate(half)
	b1.Translate(fit.TgtShift)

	mid := r3.Scale(0.5, r3.Add(b1.Origin, b2.Origin))
	frame := b1.Copy()
	frame.Translate(r3.Sub(mid, b1.Origin))

	return PairAxis{
		Frame: frame,
		Half1: b1,
		Half2: b2,
		Theta: theta,
		Axis:  u,
	}, nil
}
