package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/BurntSushi/nastruct/cmd/util"
	"github.com/BurntSushi/nastruct/nastruct"
)

var (
	flagResRange  = ""
	flagOut       = ""
	flagDump      = ""
	flagHBCut     = nastruct.DefaultConfig().HBondCutoff
	flagOriginCut = nastruct.DefaultConfig().OriginCutoff
	flagMinHBonds = nastruct.DefaultConfig().MinHBonds
)

func init() {
	flag.StringVar(&flagResRange, "resrange", flagResRange,
		"A list of residue numbers to analyze, e.g., '1-4,9'.\n"+
			"When empty, every nucleic acid residue is analyzed.")
	flag.StringVar(&flagOut, "out", flagOut,
		"The file to write the report to. Defaults to stdout.")
	flag.StringVar(&flagDump, "dump", flagDump,
		"When set, debug PDB files of base and pair frames are\n"+
			"written to this directory.")
	flag.Float64Var(&flagHBCut, "hbcut", flagHBCut,
		"The largest distance (in Angstroms) counted as a hydrogen bond.")
	flag.Float64Var(&flagOriginCut, "origincut", flagOriginCut,
		"The largest distance (in Angstroms) between base origins for\n"+
			"the bases to be considered for pairing.")
	flag.IntVar(&flagMinHBonds, "min-hbonds", flagMinHBonds,
		"The number of hydrogen bonds required to pair two bases.")

	util.FlagUse("verbose", "cpuprof")
}

func main() {
	util.FlagParse("pdb-file",
		"Computes base axes, base pairs and base pair axes for every\n"+
			"model of a nucleic acid structure.")
	if util.NArg() != 1 {
		util.Usage()
	}

	if len(util.FlagCpuProf) > 0 {
		f := util.CreateFile(util.FlagCpuProf)
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	entry := util.PDBRead(util.Arg(0))
	residues, err := util.ParseRange(flagResRange)
	util.Assert(err, "Could not parse residue range")

	conf := nastruct.DefaultConfig()
	conf.Residues = residues
	conf.HBondCutoff = flagHBCut
	conf.OriginCutoff = flagOriginCut
	conf.MinHBonds = flagMinHBonds
	if util.FlagVerbose {
		conf.Logger = log.New(os.Stderr, "", 0)
	}

	var dump *dumper
	if len(flagDump) > 0 {
		util.AssertDir(flagDump)
		dump = newDumper(flagDump)
		conf.Observer = dump
	}

	engine, err := nastruct.New(entry, conf)
	util.Assert(err, "Could not set up bases of '%s'", entry.Path)

	out := os.Stdout
	if len(flagOut) > 0 {
		out = util.CreateFile(flagOut)
		defer func() {
			util.Warning(out.Close(), "Could not close '%s'", flagOut)
		}()
	}
	rep := newReport(out, entry, engine.Bases())

	progress := util.NewProgress(len(entry.Models))
	for _, model := range entry.Models {
		if err := entry.Check(model); err != nil {
			progress.JobDone(err)
			continue
		}
		res, err := engine.Analyze(model)
		if res != nil {
			rep.model(model.Num, res)
		}
		if err != nil {
			err = fmt.Errorf("model %d: %s", model.Num, err)
		}
		progress.JobDone(err)
	}
	progress.Close()

	util.Assert(rep.flush(), "Could not write report")
	if dump != nil {
		util.Assert(dump.close(), "Could not write PDB files to '%s'",
			flagDump)
	}
}
