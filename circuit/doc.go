// Package circuit discretizes planar current loops into mitred prism
// sources and assembles them into composite circuits.
//
// 🔧 Pipeline
//
//	geom.Coordinates → Discretize → one Segment per edge → one prism
//	source per Segment → Circuit (superposition aggregate).
//
// Discretize walks the ordered boundary and computes, for every edge,
// its midpoint, edge vector, tangent, and the entry/exit mitre
// half-angles at the shared vertices. Half-angles are computed in a
// canonical working frame (center of mass at the origin, loop normal
// rotated onto −ŷ so the loop lies in the x-z plane), which makes the
// angle-sign logic independent of the input orientation. The sign
// follows an explicit winding × point-in-polygon truth table; see
// mitreSign. A closed loop of N distinct points yields N segments with
// cyclic angle continuity; an open path of N points yields N−1 segments
// whose first entry and last exit angles are exactly zero.
//
// Sign convention: half-angles are positive for a convex loop wound
// counterclockwise about −ŷ in the canonical frame (clockwise about +ŷ),
// and flip sign when the winding reverses or when a vertex's chord
// projection falls outside the loop footprint (reflex vertex).
//
// Circuits are immutable after construction apart from whole-object
// Copy / Rotate / Translate. Construction collects non-fatal
// modeling-accuracy warnings (acute mitres, unequal polyhedral
// end-caps), at most one per kind, instead of logging them.
package circuit
