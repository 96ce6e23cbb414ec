package nastruct

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// Config controls which residues an Engine analyzes and the geometric
// cutoffs used to detect base pairs.
type Config struct {
	// Residues lists 1-based residue numbers to analyze. When empty, all
	// nucleic acid residues are analyzed.
	Residues []int

	// HBondCutoff is the largest heavy atom distance (in Angstroms) counted
	// as a hydrogen bond.
	HBondCutoff float64

	// OriginCutoff is the largest distance (in Angstroms) between two base
	// axis origins for the bases to be tested for pairing at all.
	OriginCutoff float64

	// MinHBonds is the number of hydrogen bonds needed to call two bases
	// paired. Values below 1 are treated as 1.
	MinHBonds int

	// Logger receives diagnostics. Nothing is logged when it is nil.
	Logger *log.Logger

	// Observer, if not nil, is shown the intermediate frames of every
	// snapshot.
	Observer Observer
}

// DefaultConfig returns a configuration scanning all residues with a 3.5A
// hydrogen bond cutoff, a 2.5A origin cutoff, and a single hydrogen bond
// required per pair.
func DefaultConfig() Config {
	return Config{
		HBondCutoff:  3.5,
		OriginCutoff: 2.5,
		MinHBonds:    1,
	}
}

// Engine holds everything about a topology needed to analyze its snapshots.
// It is read only after New returns.
type Engine struct {
	conf     Config
	hbCut2   float64
	origCut2 float64
	bases    []Base
	maxAtom  int
	log      *log.Logger
}

// New selects the bases of top to analyze according to conf and prepares
// their reference geometries and atom masks.
func New(top Topology, conf Config) (*Engine, error) {
	e := &Engine{
		conf:     conf,
		hbCut2:   conf.HBondCutoff * conf.HBondCutoff,
		origCut2: conf.OriginCutoff * conf.OriginCutoff,
		maxAtom:  -1,
		log:      conf.Logger,
	}
	if e.conf.MinHBonds < 1 {
		e.conf.MinHBonds = 1
	}
	if e.log == nil {
		e.log = log.New(io.Discard, "", 0)
	}

	residues, err := selectResidues(top, conf.Residues)
	if err != nil {
		return nil, err
	}
	e.log.Printf("NA residues: %v", oneBased(residues))

	for _, res := range residues {
		base, err := newBase(top, res)
		if err != nil {
			return nil, err
		}
		for _, atom := range base.Mask {
			if atom > e.maxAtom {
				e.maxAtom = atom
			}
		}
		e.log.Printf("Res %d:%s mask atoms: %v",
			res+1, base.ResName, base.Mask)
		e.bases = append(e.bases, base)
	}
	e.log.Printf("Set up %d bases.", len(e.bases))
	return e, nil
}

// Bases returns the bases analyzed, in the order used for pairing. Base
// indices elsewhere in this package refer to this slice.
func (e *Engine) Bases() []Base {
	return e.bases
}

// Result holds everything computed for one snapshot.
type Result struct {
	Axes     []BaseAxis
	Pairs    []Pair
	PairAxes []PairAxis
}

// Analyze computes base axes, base pairs and base pair axes for one snapshot.
//
// A pair whose axis cannot be constructed is left out of PairAxes and its
// DegenerateAxisError is returned (joined with any others) together with the
// otherwise complete Result. Any other error means no Result.
func (e *Engine) Analyze(snap Snapshot) (*Result, error) {
	if snap.NumAtoms() <= e.maxAtom {
		return nil, fmt.Errorf("snapshot has %d atoms but the topology "+
			"needs at least %d", snap.NumAtoms(), e.maxAtom+1)
	}

	axes, err := e.BaseAxes(snap)
	if err != nil {
		return nil, err
	}
	if e.conf.Observer != nil {
		e.conf.Observer.BaseAxes(e.bases, axes)
	}

	pairs := e.FindPairs(axes)
	pairAxes, err := e.PairAxes(axes, pairs)
	if e.conf.Observer != nil {
		e.conf.Observer.PairAxes(e.bases, pairAxes)
	}
	return &Result{Axes: axes, Pairs: pairs, PairAxes: pairAxes}, err
}

// oneBased converts 0-based residue numbers for display.
func oneBased(residues []int) []int {
	nums := make([]int, len(residues))
	for i, res := range residues {
		nums[i] = res + 1
	}
	return nums
}

// Partial reports whether err, as returned by Analyze, only means that some
// pair axes are missing from an otherwise valid Result.
func Partial(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !errors.As(e, new(DegenerateAxisError)) {
				return false
			}
		}
		return true
	}
	return errors.As(err, new(DegenerateAxisError))
}
