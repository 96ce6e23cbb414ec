package nastruct

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/nabase"
)

// Pair is two paired bases, indexing Engine.Bases with Base1 < Base2.
type Pair struct {
	Base1, Base2 int
	HBonds       []nabase.Bond
}

// FindPairs determines which bases are paired.
//
// Bases are visited in order. For each base not yet paired, later unpaired
// bases are tried in order, and the first one whose axis origin is closer
// than OriginCutoff and which forms at least MinHBonds hydrogen bonds with it
// becomes its partner. Pairs are returned in the order found.
//
// This is first-fit, not a maximum matching: a base can be claimed by an
// earlier base even when a later base would have been a better partner.
func (e *Engine) FindPairs(axes []BaseAxis) []Pair {
	var pairs []Pair
	paired := make([]bool, len(axes))
	for b1 := 0; b1 < len(axes)-1; b1++ {
		if paired[b1] {
			continue
		}
		for b2 := b1 + 1; b2 < len(axes); b2++ {
			if paired[b2] {
				continue
			}
			d2 := r3.Norm2(r3.Sub(axes[b1].Frame.Origin,
				axes[b2].Frame.Origin))
			if d2 >= e.origCut2 {
				continue
			}
			e.log.Printf("  Checking %d:%s -- %d:%s (axes distance %f)",
				b1, e.bases[b1].Type(), b2, e.bases[b2].Type(), math.Sqrt(d2))

			bonds, ok := nabase.HBonds(axes[b1].Ref, axes[b2].Ref, e.hbCut2)
			if !ok {
				continue
			}
			for _, bond := range bonds {
				e.log.Printf("            %s:%s -- %s:%s = %f",
					purineOf(e.bases[b1], e.bases[b2]), bond.Purine,
					pyrimidineOf(e.bases[b1], e.bases[b2]), bond.Pyrimidine,
					bond.Distance)
			}
			if len(bonds) < e.conf.MinHBonds {
				continue
			}
			pairs = append(pairs, Pair{b1, b2, bonds})
			paired[b1], paired[b2] = true, true
			break
		}
	}

	e.log.Printf("Set up %d base pairs.", len(pairs))
	for i, p := range pairs {
		e.log.Printf("        BP %d: Res %d:%s to %d:%s", i+1,
			e.bases[p.Base1].Residue+1, e.bases[p.Base1].Type(),
			e.bases[p.Base2].Residue+1, e.bases[p.Base2].Type())
	}
	return pairs
}

func purineOf(a, b Base) nabase.BaseType {
	if a.Type().Purine() {
		return a.Type()
	}
	return b.Type()
}

func pyrimidineOf(a, b Base) nabase.BaseType {
	if a.Type().Purine() {
		return b.Type()
	}
	return a.Type()
}
