package nastruct

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Topology describes the residues and atoms of a structure. Residues and
// atoms are numbered from 0.
type Topology interface {
	NumResidues() int
	ResidueName(res int) string

	// ResidueAtoms returns the half-open range [start, end) of the atoms
	// belonging to residue res.
	ResidueAtoms(res int) (start, end int)

	AtomName(atom int) string
}

// Snapshot gives the coordinates of every atom of a Topology at one point in
// time.
type Snapshot interface {
	NumAtoms() int
	Position(atom int) r3.Vec
}

// Coords is the simplest Snapshot: one position per atom.
type Coords []r3.Vec

func (cs Coords) NumAtoms() int            { return len(cs) }
func (cs Coords) Position(atom int) r3.Vec { return cs[atom] }
