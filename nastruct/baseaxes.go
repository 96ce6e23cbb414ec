package nastruct

import (
	"fmt"

	"github.com/BurntSushi/nastruct/axis"
	"github.com/BurntSushi/nastruct/nabase"
)

// BaseAxis is the position and orientation of one base in a snapshot.
type BaseAxis struct {
	// Base indexes Engine.Bases.
	Base int

	// Frame is the base's reference frame in the lab frame. It carries no
	// atoms.
	Frame *axis.Frame

	// Ref is a copy of the base's reference geometry superposed onto the
	// experimental atoms, so that its atoms are in lab frame coordinates.
	Ref *nabase.Reference

	// RMSD of the reference atoms from the experimental atoms.
	RMSD float64
}

// BaseAxes fits every base's reference geometry onto its atoms in snap.
func (e *Engine) BaseAxes(snap Snapshot) ([]BaseAxis, error) {
	axes := make([]BaseAxis, len(e.bases))
	for i, base := range e.bases {
		exp := axis.New(len(base.Mask))
		for j, atom := range base.Mask {
			exp.Atoms[j] = snap.Position(atom)
		}

		fit, err := base.Ref.Frame.RMSD(exp, axis.Atoms)
		if err != nil {
			return nil, fmt.Errorf("base %d (residue %d:%s): %w",
				i, base.Residue+1, base.ResName, err)
		}
		e.log.Printf("Base %d: RMS of RefCoords from ExpCoords is %f",
			base.Residue+1, fit.RMSD)

		// The identity frame carried through the fit is the base's axis
		// frame: its origin and unit vectors in lab coordinates.
		frame := axis.New(0)
		frame.Apply(fit)
		frame.StoreRotMatrix(fit.Rotation)

		ref := base.Ref.Copy()
		ref.Frame.Apply(fit)

		e.log.Printf("         origin: %8.4f %8.4f %8.4f",
			frame.Origin.X, frame.Origin.Y, frame.Origin.Z)
		axes[i] = BaseAxis{Base: i, Frame: frame, Ref: ref, RMSD: fit.RMSD}
	}
	return axes, nil
}
