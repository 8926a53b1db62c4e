// Package source implements finite current-source primitives and their
// superposition groups.
//
// 🧲 Model
//
//	A prism source is a straight, uniformly current-carrying volume of
//	fixed cross-section whose end-caps may be mitred (cut at half-angles)
//	so that consecutive sources along a discretized loop meet flush.
//	The field model is a uniform-current-density filament bundle: the
//	cross-section is discretized into filaments, each a finite straight
//	conductor evaluated with the closed-form Biot–Savart two-radius
//	expression, and contributions are summed. Accuracy is controlled by
//	the filament grid resolution in Options.
//
// Two concrete variants implement the CurrentSource interface:
//
//   - TrapezoidalPrism — rectangular cross-section given as half-breadth
//     (along the tangent) and half-depth (along the loop normal).
//   - PolyhedralPrism — arbitrary polygon cross-section in local
//     (tangent, normal) coordinates. Unequal end-cap half-angles make the
//     polyhedral field an approximation; the source records this so the
//     circuit factory can surface a single modeling-accuracy warning.
//
// Group aggregates sources behind one Field call (vector superposition)
// and supports deep Copy and whole-group rigid transforms. Batch
// evaluation over many points runs in parallel across points.
//
// All evaluation is pure: no method other than Rotate/Translate mutates
// a source, and copies never alias their originals.
package source
