package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/nastruct/cmd/util"
	"github.com/BurntSushi/nastruct/nastruct"
	"github.com/BurntSushi/nastruct/pdb"
)

// dumper writes the frames of every snapshot to PDB files, one MODEL per
// snapshot.
type dumper struct {
	files                  []*os.File
	baseAxes, bases, pairs *pdb.Writer
}

var _ nastruct.Observer = (*dumper)(nil)

func newDumper(dir string) *dumper {
	d := &dumper{}
	open := func(name string) *pdb.Writer {
		f := util.CreateFile(filepath.Join(dir, name))
		d.files = append(d.files, f)
		return pdb.NewWriter(f)
	}
	d.baseAxes = open("baseaxes.pdb")
	d.bases = open("bases.pdb")
	d.pairs = open("basepairaxes.pdb")
	return d
}

func (d *dumper) BaseAxes(bases []nastruct.Base, axes []nastruct.BaseAxis) {
	d.baseAxes.BeginModel()
	d.bases.BeginModel()
	for _, ax := range axes {
		base := bases[ax.Base]
		d.baseAxes.WriteFrame(ax.Frame, nil, base.ResName, base.Residue+1)
		d.bases.WriteFrame(ax.Ref.Frame, ax.Ref.Names,
			base.ResName, base.Residue+1)
	}
}

func (d *dumper) PairAxes(bases []nastruct.Base, pairs []nastruct.PairAxis) {
	d.pairs.BeginModel()
	for _, pa := range pairs {
		d.pairs.WriteFrame(pa.Frame, nil, bases[pa.Base1].ResName, pa.Pair+1)
	}
}

// close flushes every file and returns the first error.
func (d *dumper) close() error {
	var first error
	for i, w := range []*pdb.Writer{d.baseAxes, d.bases, d.pairs} {
		if err := w.Flush(); err != nil && first == nil {
			first = err
		}
		if err := d.files[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
