package pdb

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/rmsd"
)

// SugarAtom is the atom used to compare the backbones of two nucleic acid
// structures. (Its role is that of the carbon-alpha atom in proteins.)
const SugarAtom = "C1'"

// Select returns the positions, in model m, of every atom named name in the
// residues of chain with sequence numbers in the inclusive range start-end.
// The legacy '*' in sugar atom names is read as a prime.
func (e *Entry) Select(m Model, chain byte, start, end int,
	name string) []r3.Vec {

	var ps []r3.Vec
	for _, res := range e.Residues {
		if res.Chain != chain || res.SeqNum < start || res.SeqNum > end {
			continue
		}
		for i := res.Start; i < res.End && i < len(m.Coords); i++ {
			if strings.Replace(e.Atoms[i].Name, "*", "'", -1) == name {
				ps = append(ps, m.Coords[i])
			}
		}
	}
	return ps
}

// RMSD is a convenience function for computing the RMSD between two sets of
// residues, where each set is taken from a chain of the first model of a PDB
// entry. Note that RMSD is only computed using C1' atoms.
//
// An error will be returned if either range has no C1' atoms, or if the two
// ranges do not have precisely the same number of C1' atoms.
func RMSD(entry1 *Entry, chain1 byte, start1, end1 int,
	entry2 *Entry, chain2 byte, start2, end2 int) (float64, error) {

	struct1 := entry1.Select(entry1.Models[0], chain1, start1, end1, SugarAtom)
	struct2 := entry2.Select(entry2.Models[0], chain2, start2, end2, SugarAtom)
	if len(struct1) == 0 {
		return 0, fmt.Errorf("the range %d-%d (for chain %c in %s) has no "+
			"%s atoms", start1, end1, chain1, entry1.Path, SugarAtom)
	}
	if len(struct2) == 0 {
		return 0, fmt.Errorf("the range %d-%d (for chain %c in %s) has no "+
			"%s atoms", start2, end2, chain2, entry2.Path, SugarAtom)
	}
	if len(struct1) != len(struct2) {
		return 0, fmt.Errorf("the range %d-%d (%d %s atoms for chain %c "+
			"in %s) does not have as many atoms as the range %d-%d "+
			"(%d %s atoms for chain %c in %s)",
			start1, end1, len(struct1), SugarAtom, chain1, entry1.Path,
			start2, end2, len(struct2), SugarAtom, chain2, entry2.Path)
	}
	return rmsd.RMSD(struct1, struct2), nil
}
