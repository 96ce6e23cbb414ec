/*
Package nabase describes the nucleic acid bases known to the analysis: how a
residue name is classified as a base, the idealized reference geometry of
each base in its standard reference frame, and which heavy atoms are tested
for Watson-Crick hydrogen bonding between two bases.

Reference geometries are the standard bases of Olson et al. (2001), "A
standard reference frame for the description of nucleic acid base-pair
geometry", J. Mol. Biol. 313:229-237. Each reference is a fresh copy, so
callers are free to move it.
*/
package nabase

import (
	"fmt"
	"strings"
)

// BaseType identifies a nucleic acid base.
type BaseType int

const (
	Unknown BaseType = iota
	Adenine
	Thymine
	Guanine
	Cytosine
	Uracil
)

var baseNames = map[BaseType]string{
	Unknown:  "?",
	Adenine:  "A",
	Thymine:  "T",
	Guanine:  "G",
	Cytosine: "C",
	Uracil:   "U",
}

// String returns the one letter code of the base, or "?".
func (t BaseType) String() string {
	if name, ok := baseNames[t]; ok {
		return name
	}
	return "?"
}

// Purine returns true for adenine and guanine.
func (t BaseType) Purine() bool {
	return t == Adenine || t == Guanine
}

// residueBases maps every residue name we recognize, after terminal suffixes
// are removed, to its base.
var residueBases = map[string]BaseType{
	// PDB one letter (RNA) and two letter (DNA) names.
	"A": Adenine, "C": Cytosine, "G": Guanine, "T": Thymine, "U": Uracil,
	"DA": Adenine, "DC": Cytosine, "DG": Guanine, "DT": Thymine,
	"DU": Uracil,

	// AMBER RNA names.
	"RA": Adenine, "RC": Cytosine, "RG": Guanine, "RU": Uracil,

	// Older three letter names.
	"ADE": Adenine, "CYT": Cytosine, "GUA": Guanine, "THY": Thymine,
	"URA": Uracil,
}

// Identify classifies a residue name. AMBER terminal variants are recognized
// by their suffix: 5 or 3 after any base name ("DA5", "RU3", "G5"), and N
// (a free nucleoside) after the two letter names only ("DAN", "RUN"). Names
// that are not nucleic acid bases classify as Unknown, so ligands like "CN"
// are not mistaken for bases.
func Identify(resName string) BaseType {
	name := strings.ToUpper(strings.TrimSpace(resName))
	if t, ok := residueBases[name]; ok {
		return t
	}
	if n := len(name); n == 2 || n == 3 {
		suffix := name[n-1]
		if suffix == '5' || suffix == '3' || (suffix == 'N' && n == 3) {
			if t, ok := residueBases[name[:n-1]]; ok {
				return t
			}
		}
	}
	return Unknown
}

// UnknownBaseError is returned when a reference geometry is requested for a
// residue that is not a recognized nucleic acid base.
type UnknownBaseError struct {
	ResName string
}

func (err UnknownBaseError) Error() string {
	return fmt.Sprintf("residue '%s' is not a recognized nucleic acid base",
		err.ResName)
}
