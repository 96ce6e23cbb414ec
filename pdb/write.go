package pdb

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BurntSushi/nastruct/axis"
)

// FrameNames are the atom names given to the four frame points written by
// WriteFrame: the tips of the unit X, Y and Z axes and the origin.
var FrameNames = [4]string{"X", "Y", "Z", "O"}

// Writer writes ATOM records, optionally grouped into models. Atom serial
// numbers restart at 1 in every model.
//
// Errors are sticky: after the first failed write, nothing more is written
// and Flush returns the error.
type Writer struct {
	buf    *bufio.Writer
	serial int
	model  int
	open   bool
	err    error
}

// NewWriter returns a Writer writing to w. Flush must be called when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// BeginModel writes a MODEL record, ending the current model first if one is
// open.
func (w *Writer) BeginModel() {
	if w.open {
		w.EndModel()
	}
	w.model++
	w.serial = 0
	w.open = true
	w.printf("MODEL     %4d\n", w.model)
}

// EndModel writes an ENDMDL record if a model is open.
func (w *Writer) EndModel() {
	if !w.open {
		return
	}
	w.open = false
	w.printf("ENDMDL\n")
}

// WriteAtom writes one ATOM record.
func (w *Writer) WriteAtom(name, resName string, resNum int, p r3.Vec) {
	w.serial++
	w.printf("ATOM  %5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
		w.serial%100000, atomName(name), resName, 'A', resNum%10000,
		p.X, p.Y, p.Z, 1.0, 0.0, elementOf(name))
}

// WriteFrame writes the atoms of f, named by names, followed by its four frame
// points named as in FrameNames. All are written as part of residue resNum.
// names may be nil when f has no atoms.
func (w *Writer) WriteFrame(f *axis.Frame, names []string, resName string,
	resNum int) {

	if len(names) != f.Len() {
		w.fail(fmt.Errorf("frame has %d atoms but %d names were given",
			f.Len(), len(names)))
		return
	}
	for i, p := range f.Atoms {
		w.WriteAtom(names[i], resName, resNum, p)
	}
	for i, p := range f.Points(axis.Axes) {
		w.WriteAtom(FrameNames[i], resName, resNum, p)
	}
}

// Flush closes any open model, writes an END record and flushes buffered
// output. It returns the first error encountered by any write.
func (w *Writer) Flush() error {
	w.EndModel()
	w.printf("END\n")
	if w.err != nil {
		return w.err
	}
	return w.buf.Flush()
}

func (w *Writer) printf(format string, v ...interface{}) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.buf, format, v...); err != nil {
		w.fail(err)
	}
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// atomName pads names shorter than four characters so that the element
// symbol lands in column 14, as is conventional.
func atomName(name string) string {
	if len(name) < 4 {
		return " " + name
	}
	return name
}

// elementOf guesses the element symbol from the first letter of an atom name.
// Frame points are written as dummy atoms.
func elementOf(name string) string {
	for _, fn := range FrameNames {
		if name == fn {
			return "X"
		}
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return name[i : i+1]
		}
	}
	return ""
}
