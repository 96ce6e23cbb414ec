/*
nastruct finds the base axes, Watson-Crick base pairs and base pair axes of
every model in a PDB file containing nucleic acids.

Each nucleotide base is fit to an ideal reference base to find its local
reference frame. Bases whose frame origins are close and which form at least
one canonical hydrogen bond (G-C or A-T) are paired, and each pair gets a
frame half way between the frames of its two bases.

A PDB file may either be plain text or compressed using the Lempel-Ziv coding
(i.e., gzip). If the PDB file is gzipped, it must end with a '.gz' extension.
Every MODEL must list the same atoms as the first.

Usage:
	nastruct [flags] pdb-file

Output

For every model, a table of bases (residue, fit RMSD and frame origin) is
printed, followed by a table of pairs with the pair frame origin and Z axis.

When -dump is set, three PDB files are written to the directory given, with
one MODEL per model of the input: baseaxes.pdb holds the frame of every base
as four pseudo atoms (X, Y and Z axis tips and the origin O), bases.pdb holds
the reference bases fit onto the input, and basepairaxes.pdb holds the frame
of every pair.
*/
package main
