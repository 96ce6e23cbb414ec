/*
Package nastruct finds Watson-Crick base pairs in snapshots of nucleic acid
structures and builds a reference frame for every base and every pair.

An Engine is built once per topology. New selects the nucleic acid residues
to analyze, looks up each one's idealized reference geometry and maps the
reference atoms onto topology atoms. Analyze is then called once per
snapshot of coordinates and:

 1. fits each reference base onto its experimental atoms to recover the
    base's axis frame in the lab frame;
 2. pairs bases greedily: for each unpaired base in order, the first later
    unpaired base whose axis origin is within OriginCutoff and which forms
    at least MinHBonds Watson-Crick hydrogen bonds is taken as its partner;
 3. builds each pair's axis frame by rotating both base frames half way
    toward each other and placing the origin at their midpoint.

The pairing step is a first-fit heuristic, not a maximum matching: the
result depends on base order. Only G-C and A-T combinations are tested.

Analyze keeps no state between calls. Without an Observer, separate
snapshots may be analyzed concurrently on the same Engine.
*/
package nastruct
