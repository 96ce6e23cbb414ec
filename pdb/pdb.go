package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Entry represents all information known about a particular PDB file (that
// has been implemented in this package).
//
// Currently, an entry is its atoms grouped into residues, plus the atom
// positions of every model. The atoms and residues are read from the first
// model; later models are assumed to list the same atoms in the same order.
// Use Check to reject a model whose atom count disagrees.
//
// An Entry satisfies the topology interface of the nastruct package, and each
// of its Models is a snapshot.
type Entry struct {
	Path     string
	Atoms    []Atom
	Residues []Residue
	Models   []Model
}

// Atom is a single ATOM or HETATM record of the first model.
type Atom struct {
	Serial  int
	Name    string
	AltLoc  byte
	Residue int // index into Entry.Residues
	Element string
}

// Residue is a contiguous run of atoms sharing a chain, a residue sequence
// number, an insertion code and a residue name.
type Residue struct {
	Name    string
	Chain   byte
	SeqNum  int
	InsCode byte

	// Start and End delimit the residue's atoms in Entry.Atoms.
	Start, End int
}

// Model is the atom positions of one MODEL of a PDB file.
type Model struct {
	Num    int
	Coords []r3.Vec
}

// ParseError reports a malformed record.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (err ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", err.Path, err.Line, err.Err)
}

func (err ParseError) Unwrap() error {
	return err.Err
}

// ModelSizeError is returned by Check for a model whose atom count differs
// from the first model's.
type ModelSizeError struct {
	Model     int
	Got, Want int
}

func (err ModelSizeError) Error() string {
	return fmt.Sprintf("model %d has %d atoms but the first model has %d",
		err.Model, err.Got, err.Want)
}

// New creates a new PDB Entry from a file. If the file cannot be read, or there
// is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func New(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	return Read(reader, fileName)
}

// Read parses a PDB file from r. The name is only used in errors and stored
// as the entry's Path.
//
// Only ATOM, HETATM, MODEL, ENDMDL and END records are read. Of atoms with
// alternate locations, only the first ('A') is kept.
func Read(r io.Reader, name string) (*Entry, error) {
	p := &parser{entry: &Entry{Path: name}}
	scanner := bufio.NewScanner(r)
	done := false
	for !done && scanner.Scan() {
		p.lineNum++
		line := scanner.Text()
		if len(line) < 6 {
			line += strings.Repeat(" ", 6-len(line))
		}

		var err error
		switch strings.TrimSpace(line[0:6]) {
		case "MODEL":
			err = p.beginModel(line)
		case "ATOM", "HETATM":
			err = p.atom(line)
		case "ENDMDL":
			p.endModel()
		case "END":
			done = true
		}
		if err != nil {
			return nil, ParseError{name, p.lineNum, err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p.endModel()
	if len(p.entry.Models) == 0 {
		return nil, fmt.Errorf("%s: no atoms found", name)
	}
	return p.entry, nil
}

type parser struct {
	entry   *Entry
	model   *Model
	lineNum int
}

func (p *parser) beginModel(line string) error {
	if p.model != nil {
		return fmt.Errorf("MODEL record before ENDMDL of model %d",
			p.model.Num)
	}
	num := len(p.entry.Models) + 1
	if len(line) >= 14 {
		n, err := strconv.Atoi(strings.TrimSpace(line[10:14]))
		if err == nil {
			num = n
		}
	}
	p.model = &Model{Num: num}
	return nil
}

func (p *parser) endModel() {
	if p.model != nil {
		p.entry.Models = append(p.entry.Models, *p.model)
		p.model = nil
	}
}

// atom parses the fixed columns of an ATOM or HETATM record. Coordinates are
// in columns 31-54.
func (p *parser) atom(line string) error {
	if len(line) < 54 {
		return fmt.Errorf("atom record has %d columns, expected at least 54",
			len(line))
	}
	altLoc := line[16]
	if altLoc != ' ' && altLoc != 'A' {
		return nil
	}

	var pos r3.Vec
	var err error
	for i, field := range []*float64{&pos.X, &pos.Y, &pos.Z} {
		col := 30 + 8*i
		*field, err = strconv.ParseFloat(strings.TrimSpace(line[col:col+8]), 64)
		if err != nil {
			return fmt.Errorf("bad coordinate: %s", err)
		}
	}

	if p.model == nil {
		p.model = &Model{Num: len(p.entry.Models) + 1}
	}
	p.model.Coords = append(p.model.Coords, pos)

	// Only the first model defines atoms and residues.
	if len(p.entry.Models) > 0 {
		return nil
	}

	serial, _ := strconv.Atoi(strings.TrimSpace(line[6:11]))
	seqNum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return fmt.Errorf("bad residue number: %s", err)
	}
	res := Residue{
		Name:    strings.TrimSpace(line[17:20]),
		Chain:   line[21],
		SeqNum:  seqNum,
		InsCode: line[26],
	}
	p.addAtom(Atom{
		Serial:  serial,
		Name:    strings.TrimSpace(line[12:16]),
		AltLoc:  altLoc,
		Element: element(line),
	}, res)
	return nil
}

// addAtom appends atom to the residue res, starting a new residue when res
// differs from the last one.
func (p *parser) addAtom(atom Atom, res Residue) {
	e := p.entry
	n := len(e.Residues)
	if n == 0 || !e.Residues[n-1].same(res) {
		res.Start, res.End = len(e.Atoms), len(e.Atoms)
		e.Residues = append(e.Residues, res)
		n++
	}
	atom.Residue = n - 1
	e.Atoms = append(e.Atoms, atom)
	e.Residues[n-1].End++
}

func (r Residue) same(other Residue) bool {
	return r.Name == other.Name && r.Chain == other.Chain &&
		r.SeqNum == other.SeqNum && r.InsCode == other.InsCode
}

// element returns the element symbol in columns 77-78, or failing that,
// guesses it from the first letter of the atom name.
func element(line string) string {
	if len(line) >= 78 {
		if sym := strings.TrimSpace(line[76:78]); sym != "" {
			return sym
		}
	}
	name := strings.TrimLeft(line[12:16], " 0123456789")
	if name == "" {
		return ""
	}
	return name[:1]
}

// NumResidues returns the number of residues in the first model.
func (e *Entry) NumResidues() int {
	return len(e.Residues)
}

// ResidueName returns the name of residue res.
func (e *Entry) ResidueName(res int) string {
	return e.Residues[res].Name
}

// ResidueAtoms returns the half-open range of atom indices of residue res.
func (e *Entry) ResidueAtoms(res int) (start, end int) {
	return e.Residues[res].Start, e.Residues[res].End
}

// AtomName returns the name of atom i.
func (e *Entry) AtomName(i int) string {
	return e.Atoms[i].Name
}

// Check returns a ModelSizeError if m does not have one position for every
// atom of e.
func (e *Entry) Check(m Model) error {
	if len(m.Coords) != len(e.Atoms) {
		return ModelSizeError{m.Num, len(m.Coords), len(e.Atoms)}
	}
	return nil
}

// NumAtoms returns the number of atoms in the model.
func (m Model) NumAtoms() int {
	return len(m.Coords)
}

// Position returns the position of atom i.
func (m Model) Position(i int) r3.Vec {
	return m.Coords[i]
}

// String returns a short description of the residue, like "12:DG" or
// "12A:DG" for inserted residues.
func (r Residue) String() string {
	ins := ""
	if r.InsCode != ' ' && r.InsCode != 0 {
		ins = string(r.InsCode)
	}
	return fmt.Sprintf("%d%s:%s", r.SeqNum, ins, r.Name)
}
