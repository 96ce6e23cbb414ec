package main

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/nastruct/cmd/util"
	"github.com/BurntSushi/nastruct/pdb"
)

func init() {
	util.FlagParse(
		"pdb-file chain-id start stop pdb-file chain-id start stop",
		"ex. 'pdb-rmsd duplex.pdb A 1 10 duplex.pdb B 11 20'")
	util.AssertNArg(8)
}

func main() {
	entry1, c1, s1, e1 := arg(0)
	entry2, c2, s2, e2 := arg(4)

	r, err := pdb.RMSD(entry1, c1, s1, e1, entry2, c2, s2, e2)
	util.Assert(err)
	fmt.Println(r)
}

// arg reads the four-tuple of positional arguments starting at i.
func arg(i int) (*pdb.Entry, byte, int, int) {
	entry := util.PDBRead(util.Arg(i))
	chain := util.Arg(i + 1)
	if len(chain) != 1 {
		util.Fatalf("Not a valid chain identifier: '%s'", chain)
	}
	return entry, chain[0], parseInt(util.Arg(i + 2)), parseInt(util.Arg(i + 3))
}

func parseInt(str string) int {
	num, err := strconv.Atoi(str)
	util.Assert(err, "Could not parse '%s' as an integer", str)
	return num
}
