package nabase

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/axis"
)

// Reference is the idealized geometry of one base. Frame holds one atom per
// entry in Names, in the same order, and the base's reference frame.
//
// A Reference returned by Lookup sits in the standard reference frame. After
// its Frame has been fit onto experimental coordinates it describes where the
// base's atoms sit in the lab frame.
type Reference struct {
	Type  BaseType
	Names []string
	Frame *axis.Frame
}

type refAtom struct {
	name    string
	x, y, z float64
}

// The C1' atom comes first so that every base shares the sugar attachment
// point as atom 0. Methyl carbon of thymine uses the AMBER/PDB name C7.
var references = map[BaseType][]refAtom{
	Adenine: {
		{"C1'", -2.479, 5.346, 0.000},
		{"N9", -1.291, 4.498, 0.000},
		{"C8", 0.024, 4.897, 0.000},
		{"N7", 0.877, 3.902, 0.000},
		{"C5", 0.071, 2.771, 0.000},
		{"C6", 0.369, 1.398, 0.000},
		{"N6", 1.611, 0.909, 0.000},
		{"N1", -0.668, 0.532, 0.000},
		{"C2", -1.912, 1.023, 0.000},
		{"N3", -2.320, 2.290, 0.000},
		{"C4", -1.267, 3.124, 0.000},
	},
	Guanine: {
		{"C1'", -2.477, 5.399, 0.000},
		{"N9", -1.289, 4.551, 0.000},
		{"C8", 0.023, 4.962, 0.000},
		{"N7", 0.870, 3.969, 0.000},
		{"C5", 0.071, 2.833, 0.000},
		{"C6", 0.424, 1.460, 0.000},
		{"O6", 1.554, 0.955, 0.000},
		{"N1", -0.700, 0.641, 0.000},
		{"C2", -1.999, 1.087, 0.000},
		{"N2", -2.949, 0.139, -0.001},
		{"N3", -2.342, 2.364, 0.001},
		{"C4", -1.265, 3.177, 0.000},
	},
	Cytosine: {
		{"C1'", -2.477, 5.402, 0.000},
		{"N1", -1.285, 4.542, 0.000},
		{"C2", -1.472, 3.158, 0.000},
		{"O2", -2.628, 2.709, 0.001},
		{"N3", -0.391, 2.344, 0.000},
		{"C4", 0.837, 2.868, 0.000},
		{"N4", 1.875, 2.027, 0.001},
		{"C5", 1.056, 4.275, 0.000},
		{"C6", -0.023, 5.068, 0.000},
	},
	Thymine: {
		{"C1'", -2.481, 5.354, 0.000},
		{"N1", -1.284, 4.500, 0.000},
		{"C2", -1.462, 3.135, 0.000},
		{"O2", -2.562, 2.608, 0.000},
		{"N3", -0.298, 2.407, 0.000},
		{"C4", 0.994, 2.897, 0.000},
		{"O4", 1.944, 2.119, 0.000},
		{"C5", 1.106, 4.338, 0.000},
		{"C7", 2.466, 4.961, 0.001},
		{"C6", -0.024, 5.057, 0.000},
	},
	Uracil: {
		{"C1'", -2.481, 5.354, 0.000},
		{"N1", -1.284, 4.500, 0.000},
		{"C2", -1.462, 3.135, 0.000},
		{"O2", -2.562, 2.608, 0.000},
		{"N3", -0.302, 2.406, 0.000},
		{"C4", 0.989, 2.884, 0.000},
		{"O4", 1.935, 2.094, -0.001},
		{"C5", 1.089, 4.311, 0.000},
		{"C6", -0.024, 5.053, 0.000},
	},
}

// Lookup returns a fresh copy of the reference geometry for the base of the
// residue named resName. An UnknownBaseError is returned if resName is not a
// recognized base.
func Lookup(resName string) (*Reference, error) {
	t := Identify(resName)
	atoms, ok := references[t]
	if !ok {
		return nil, UnknownBaseError{resName}
	}
	ref := &Reference{
		Type:  t,
		Names: make([]string, len(atoms)),
		Frame: axis.New(len(atoms)),
	}
	for i, atom := range atoms {
		ref.Names[i] = atom.name
		ref.Frame.Atoms[i] = r3.Vec{X: atom.x, Y: atom.y, Z: atom.z}
	}
	return ref, nil
}

// Index returns the position of the atom called name, or -1.
func (ref *Reference) Index(name string) int {
	for i, n := range ref.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Atom returns the current position of the atom called name. It panics if
// the base has no such atom.
func (ref *Reference) Atom(name string) r3.Vec {
	i := ref.Index(name)
	if i < 0 {
		panic("base " + ref.Type.String() + " has no atom " + name)
	}
	return ref.Frame.Atoms[i]
}

// Copy returns a deep copy of ref.
func (ref *Reference) Copy() *Reference {
	return &Reference{
		Type:  ref.Type,
		Names: append([]string(nil), ref.Names...),
		Frame: ref.Frame.Copy(),
	}
}
