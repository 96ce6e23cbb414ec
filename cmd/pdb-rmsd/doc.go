/*
pdb-rmsd computes the RMSD between two sets of C1' atoms read from the first
model of PDB files. Namely, each set of atoms is specified by a four-tuple: a
PDB file path, a chain identifier, and an inclusive range of residue numbers.
Both sets of C1' atoms must be exactly the same size.

A PDB file may either be plain text or compressed using the Lempel-Ziv coding
(i.e., gzip). If the PDB file is gzipped, it must end with a '.gz' extension.

Usage:
	pdb-rmsd pdb-file chain-id start stop pdb-file chain-id start stop

Details

The two sets of atoms are superposed with the Kabsch algorithm, which finds
the rotation minimizing the RMSD between two paired sets of points.
*/
package main
