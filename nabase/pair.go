package nabase

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Contact is one heavy atom pair tested for a hydrogen bond between a purine
// and its Watson-Crick partner pyrimidine.
type Contact struct {
	Purine, Pyrimidine string
}

// Bond is a contact found within the hydrogen bond cutoff.
type Bond struct {
	Contact
	Distance float64
}

// contacts lists, per canonical (purine, pyrimidine) combination, the heavy
// atom contacts of a Watson-Crick pair.
var contacts = map[[2]BaseType][]Contact{
	{Guanine, Cytosine}: {
		{"O6", "N4"},
		{"N1", "N3"},
		{"N2", "O2"},
	},
	{Adenine, Thymine}: {
		{"N6", "O4"},
		{"N1", "N3"},
	},
}

// Contacts returns the contacts tested between bases of type a and b. The
// order of a and b does not matter; swapped is true when b is the purine.
// ok is false when a and b are not a canonical combination.
func Contacts(a, b BaseType) (cs []Contact, swapped, ok bool) {
	if cs, ok = contacts[[2]BaseType{a, b}]; ok {
		return cs, false, true
	}
	if cs, ok = contacts[[2]BaseType{b, a}]; ok {
		return cs, true, true
	}
	return nil, false, false
}

// HBonds tests every Watson-Crick contact between two bases whose Frames
// hold lab frame atom positions, and returns those closer than the square
// root of cutoff2. ok is false (and nothing is tested) when the bases are
// not a canonical combination.
//
// Any satisfied contact is reported; deciding how many make a pair is left
// to the caller.
func HBonds(a, b *Reference, cutoff2 float64) (bonds []Bond, ok bool) {
	cs, swapped, ok := Contacts(a.Type, b.Type)
	if !ok {
		return nil, false
	}
	purine, pyrimidine := a, b
	if swapped {
		purine, pyrimidine = b, a
	}
	for _, c := range cs {
		d2 := r3.Norm2(r3.Sub(purine.Atom(c.Purine),
			pyrimidine.Atom(c.Pyrimidine)))
		if d2 < cutoff2 {
			bonds = append(bonds, Bond{c, math.Sqrt(d2)})
		}
	}
	return bonds, true
}
