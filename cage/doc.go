// Package cage patterns a template circuit axisymmetrically about the
// z-axis and evaluates the total field and the toroidal-field ripple of
// the resulting coil set.
//
// 🧭 Geometry
//
//	A Cage owns n fully independent deep copies of a template circuit,
//	the k-th rotated by k·360/n degrees about z. The template is assumed
//	to be aligned with the 0° azimuthal plane, so the plane at 180/n°
//	lies exactly midway between two adjacent coils.
//
// Ripple quantifies the periodic toroidal-field nonuniformity of a
// finite coil count: the total field is projected onto the local
// toroidal direction at the coil-aligned plane ("inline") and at the
// inter-coil gap plane ("in-gap"), and the relative difference is
// reported as a percentage:
//
//	ripple = 100 · (B_inline − B_ingap) / (B_inline + B_ingap)
//
// More coils make the winding more nearly axisymmetric, so ripple
// decreases monotonically with n.
package cage
