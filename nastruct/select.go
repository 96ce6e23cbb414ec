package nastruct

import (
	"strings"

	"github.com/BurntSushi/nastruct/nabase"
)

// Base is one nucleic acid residue selected for analysis.
type Base struct {
	// Residue is the 0-based topology residue number.
	Residue int
	ResName string

	// Ref is the reference geometry of the base in its standard frame.
	// It is never moved.
	Ref *nabase.Reference

	// Mask holds, for each reference atom, the topology index of the
	// matching atom of the residue.
	Mask []int
}

// Type is a shortcut for b.Ref.Type.
func (b Base) Type() nabase.BaseType {
	return b.Ref.Type
}

// selectResidues returns the 0-based numbers of the residues to analyze.
//
// If requested is empty, every residue classified as a nucleic acid is
// selected. Otherwise requested holds 1-based residue numbers, and those that
// are not nucleic acids are silently dropped.
func selectResidues(top Topology, requested []int) ([]int, error) {
	var selected []int
	if len(requested) == 0 {
		for res := 0; res < top.NumResidues(); res++ {
			if nabase.Identify(top.ResidueName(res)) != nabase.Unknown {
				selected = append(selected, res)
			}
		}
	} else {
		for _, num := range requested {
			res := num - 1
			if res < 0 || res >= top.NumResidues() {
				return nil, ResidueRangeError{num, top.NumResidues()}
			}
			if nabase.Identify(top.ResidueName(res)) != nabase.Unknown {
				selected = append(selected, res)
			}
		}
	}
	if len(selected) == 0 {
		return nil, NoResiduesFoundError{len(requested)}
	}
	return selected, nil
}

// newBase looks up the reference geometry for residue res and maps each of
// its atoms onto an atom of the residue by name.
func newBase(top Topology, res int) (Base, error) {
	name := top.ResidueName(res)
	ref, err := nabase.Lookup(name)
	if err != nil {
		return Base{}, err
	}

	start, end := top.ResidueAtoms(res)
	mask := make([]int, 0, len(ref.Names))
	for _, refName := range ref.Names {
		found := -1
		for atom := start; atom < end; atom++ {
			if normalizeAtomName(top.AtomName(atom)) == refName {
				found = atom
				break
			}
		}
		if found == -1 {
			return Base{}, MissingAtomError{res + 1, name, refName}
		}
		mask = append(mask, found)
	}
	if len(mask) == 0 {
		return Base{}, EmptyMaskError{res + 1, name}
	}
	return Base{Residue: res, ResName: name, Ref: ref, Mask: mask}, nil
}

// normalizeAtomName converts legacy sugar atom names like C1* to C1'.
func normalizeAtomName(name string) string {
	return strings.Replace(strings.TrimSpace(name), "*", "'", -1)
}
