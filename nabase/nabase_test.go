package nabase

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/rmsd"
)

const hbCutoff2 = 3.5 * 3.5

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		want BaseType
	}{
		{"DA", Adenine}, {"DA5", Adenine}, {"DA3", Adenine}, {"DAN", Adenine},
		{"DG", Guanine}, {"DC", Cytosine}, {"DT", Thymine},
		{"RA", Adenine}, {"RU", Uracil}, {"RU5", Uracil}, {"RG3", Guanine},
		{"A", Adenine}, {"C", Cytosine}, {"G", Guanine}, {"U", Uracil},
		{"G5", Guanine}, {"C3", Cytosine},
		{"ADE", Adenine}, {"CYT", Cytosine}, {"GUA", Guanine},
		{"THY", Thymine}, {"URA", Uracil},
		{" dg ", Guanine},
		{"ALA", Unknown}, {"ASN", Unknown}, {"GLN", Unknown},
		{"WAT", Unknown}, {"NA", Unknown}, {"", Unknown},
		{"CN", Unknown}, {"GN", Unknown}, {"AN", Unknown}, {"RUN", Uracil},
		{"D5", Unknown}, {"X3", Unknown},
	}
	for _, test := range tests {
		if got := Identify(test.name); got != test.want {
			t.Errorf("Identify(%q) = %s; expected %s",
				test.name, got, test.want)
		}
	}
}

func TestLookup(t *testing.T) {
	sizes := map[string]int{"DA": 11, "DG": 12, "DC": 9, "DT": 10, "RU": 9}
	for name, size := range sizes {
		ref, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if ref.Frame.Len() != size || len(ref.Names) != size {
			t.Fatalf("Reference for %s has %d atoms; expected %d",
				name, ref.Frame.Len(), size)
		}
		if ref.Names[0] != "C1'" {
			t.Fatalf("Reference for %s starts with %s", name, ref.Names[0])
		}
		if ref.Frame.Origin != (r3.Vec{}) || ref.Frame.X != (r3.Vec{X: 1}) {
			t.Fatalf("Reference for %s is not in its standard frame.", name)
		}
	}

	_, err := Lookup("HOH")
	var unknown UnknownBaseError
	if !errors.As(err, &unknown) || unknown.ResName != "HOH" {
		t.Fatalf("Expected UnknownBaseError for HOH but got %v", err)
	}
}

func TestLookupFreshCopy(t *testing.T) {
	a, _ := Lookup("DG")
	a.Frame.Translate(r3.Vec{X: 100})
	a.Names[0] = "XX"

	b, _ := Lookup("DG")
	if b.Frame.Atoms[0].X > 0 || b.Names[0] != "C1'" {
		t.Fatal("Moving one reference moved the reference library.")
	}
}

func TestContacts(t *testing.T) {
	tests := []struct {
		a, b    BaseType
		n       int
		swapped bool
	}{
		{Guanine, Cytosine, 3, false},
		{Cytosine, Guanine, 3, true},
		{Adenine, Thymine, 2, false},
		{Thymine, Adenine, 2, true},
	}
	for _, test := range tests {
		cs, swapped, ok := Contacts(test.a, test.b)
		if !ok || len(cs) != test.n || swapped != test.swapped {
			t.Errorf("Contacts(%s, %s) = (%d contacts, %v, %v)",
				test.a, test.b, len(cs), swapped, ok)
		}
	}
	for _, pair := range [][2]BaseType{
		{Adenine, Uracil}, {Guanine, Thymine}, {Guanine, Guanine},
		{Adenine, Cytosine}, {Unknown, Cytosine},
	} {
		if _, _, ok := Contacts(pair[0], pair[1]); ok {
			t.Errorf("%s-%s should not be a canonical pair.", pair[0], pair[1])
		}
	}
}

func TestHBondsWatsonCrick(t *testing.T) {
	tests := []struct {
		purine, pyrimidine string
		n                  int
	}{
		{"DG", "DC", 3},
		{"DA", "DT", 2},
	}
	for _, test := range tests {
		pur, pyr := watsonCrick(t, test.purine, test.pyrimidine)

		bonds, ok := HBonds(pur, pyr, hbCutoff2)
		if !ok || len(bonds) != test.n {
			t.Fatalf("%s-%s: found %d hydrogen bonds; expected %d",
				test.purine, test.pyrimidine, len(bonds), test.n)
		}
		for _, bond := range bonds {
			if bond.Distance < 2.5 || bond.Distance > 3.2 {
				t.Fatalf("%s-%s: contact %s-%s has distance %f",
					test.purine, test.pyrimidine,
					bond.Purine, bond.Pyrimidine, bond.Distance)
			}
		}

		rev, ok := HBonds(pyr, pur, hbCutoff2)
		if !ok || len(rev) != len(bonds) {
			t.Fatalf("%s-%s: hydrogen bond test is not symmetric.",
				test.purine, test.pyrimidine)
		}
	}
}

func TestHBondsFarApart(t *testing.T) {
	g, c := watsonCrick(t, "DG", "DC")
	c.Frame.Translate(r3.Vec{X: 20})
	bonds, ok := HBonds(g, c, hbCutoff2)
	if !ok || len(bonds) != 0 {
		t.Fatalf("Bases 20A apart have %d hydrogen bonds.", len(bonds))
	}
	bonds, ok = HBonds(c, g, hbCutoff2)
	if !ok || len(bonds) != 0 {
		t.Fatal("Hydrogen bond test is not symmetric.")
	}
}

func TestHBondsNonCanonical(t *testing.T) {
	g, _ := watsonCrick(t, "DG", "DC")
	a, _ := watsonCrick(t, "DA", "DT")
	if _, ok := HBonds(g, a, hbCutoff2); ok {
		t.Fatal("G-A was tested as a canonical pair.")
	}
}

// watsonCrick returns two reference bases in the standard Watson-Crick
// arrangement: the second base's frame is the first rotated 180 degrees
// about its X axis.
func watsonCrick(t *testing.T, name1, name2 string) (*Reference, *Reference) {
	b1, err := Lookup(name1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Lookup(name2)
	if err != nil {
		t.Fatal(err)
	}
	b2.Frame.Rotate(rmsd.AxisAngle(r3.Vec{X: 1}, math.Pi))
	return b1, b2
}
