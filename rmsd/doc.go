/*
Package rmsd implements least-squares rigid superposition of two paired point
sets (the Kabsch algorithm described in detail here:
http://cnx.org/content/m11608/latest/), along with the small amount of 3x3
rotation matrix algebra needed to work with the result: composition,
transposition, and decomposition to (and construction from) an axis and an
angle.

Superpose never modifies its arguments. The returned Fit describes the
transformation as translate, rotate, translate, which is the order callers
apply it in.
*/
package rmsd
