package nastruct

import (
	"fmt"
	"math"
)

// NoResiduesFoundError is returned by New when no nucleic acid residues are
// left to analyze.
type NoResiduesFoundError struct {
	Requested int // number of residues asked for; 0 means all were scanned
}

func (err NoResiduesFoundError) Error() string {
	if err.Requested == 0 {
		return "no nucleic acid residues found in topology"
	}
	return fmt.Sprintf("none of the %d requested residues is a nucleic acid",
		err.Requested)
}

// ResidueRangeError is returned by New when a requested residue number does
// not exist in the topology.
type ResidueRangeError struct {
	Residue     int // 1-based
	NumResidues int
}

func (err ResidueRangeError) Error() string {
	return fmt.Sprintf("residue %d is out of range: topology has %d residues",
		err.Residue, err.NumResidues)
}

// MissingAtomError is returned by New when a reference atom of a base has no
// counterpart in the residue.
type MissingAtomError struct {
	Residue int // 1-based
	ResName string
	Atom    string
}

func (err MissingAtomError) Error() string {
	return fmt.Sprintf("reference atom [%s] not found in residue %d:%s",
		err.Atom, err.Residue, err.ResName)
}

// EmptyMaskError is returned by New when no atoms at all could be mapped for
// a residue. It cannot occur with the built-in references: each has at least
// nine atoms, and an unmatched atom is reported as a MissingAtomError first.
type EmptyMaskError struct {
	Residue int // 1-based
	ResName string
}

func (err EmptyMaskError) Error() string {
	return fmt.Sprintf("no atoms found for residue %d:%s",
		err.Residue, err.ResName)
}

// DegenerateAxisError is reported for a base pair whose axis of rotation
// could not be determined because the two base frames are related by a
// rotation too close to 0 or 180 degrees.
type DegenerateAxisError struct {
	Base1, Base2 int
	Theta        float64 // radians
	Err          error
}

func (err DegenerateAxisError) Error() string {
	return fmt.Sprintf("could not set up axis of rotation for pair %d-%d "+
		"(angle %0.4f degrees): %s",
		err.Base1, err.Base2, err.Theta*180/math.Pi, err.Err)
}

func (err DegenerateAxisError) Unwrap() error {
	return err.Err
}
