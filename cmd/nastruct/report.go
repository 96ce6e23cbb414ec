package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/BurntSushi/nastruct/nastruct"
	"github.com/BurntSushi/nastruct/pdb"
)

// report writes a table of bases and a table of pairs for every model.
type report struct {
	buf   *bufio.Writer
	entry *pdb.Entry
	bases []nastruct.Base
}

func newReport(w io.Writer, entry *pdb.Entry, bases []nastruct.Base) *report {
	return &report{bufio.NewWriter(w), entry, bases}
}

// residue names a base by its residue in the PDB file, e.g., "A:12:DG".
func (r *report) residue(base int) string {
	res := r.entry.Residues[r.bases[base].Residue]
	return fmt.Sprintf("%c:%s", res.Chain, res)
}

func (r *report) model(num int, res *nastruct.Result) {
	fmt.Fprintf(r.buf, "MODEL %d\n", num)

	tabw := tabwriter.NewWriter(r.buf, 0, 4, 4, ' ', 0)
	fmt.Fprintln(tabw, "Base\tResidue\tRMSD\tOx\tOy\tOz")
	for _, ax := range res.Axes {
		o := ax.Frame.Origin
		fmt.Fprintf(tabw, "%d\t%s\t%0.3f\t%0.3f\t%0.3f\t%0.3f\n",
			ax.Base+1, r.residue(ax.Base), ax.RMSD, o.X, o.Y, o.Z)
	}
	tabw.Flush()
	fmt.Fprintln(r.buf)

	tabw = tabwriter.NewWriter(r.buf, 0, 4, 4, ' ', 0)
	fmt.Fprintln(tabw,
		"Pair\tBase 1\tBase 2\tHBonds\tTheta\tOx\tOy\tOz\tZx\tZy\tZz")
	axes := make(map[int]nastruct.PairAxis, len(res.PairAxes))
	for _, pa := range res.PairAxes {
		axes[pa.Pair] = pa
	}
	for i, p := range res.Pairs {
		fmt.Fprintf(tabw, "%d\t%s\t%s\t%d", i+1,
			r.residue(p.Base1), r.residue(p.Base2), len(p.HBonds))
		pa, ok := axes[i]
		if !ok {
			fmt.Fprintln(tabw, "\t-\t-\t-\t-\t-\t-\t-")
			continue
		}
		o, z := pa.Frame.Origin, pa.Frame.ZAxis()
		fmt.Fprintf(tabw, "\t%0.2f\t%0.3f\t%0.3f\t%0.3f\t%0.3f\t%0.3f\t%0.3f\n",
			pa.Theta*180/math.Pi, o.X, o.Y, o.Z, z.X, z.Y, z.Z)
	}
	tabw.Flush()
	fmt.Fprintln(r.buf)
}

func (r *report) flush() error {
	return r.buf.Flush()
}
