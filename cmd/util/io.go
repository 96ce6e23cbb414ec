package util

import (
	"os"

	"github.com/BurntSushi/nastruct/pdb"
)

func PDBRead(path string) *pdb.Entry {
	entry, err := pdb.New(path)
	Assert(err, "Could not open PDB file '%s'", path)
	return entry
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}
