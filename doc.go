// Package magcage is a magnetostatic circuit toolkit for conceptual
// magnet design — from planar current loops to full toroidal coil cages.
//
// 🚀 What is magcage?
//
//	A library that discretizes an arbitrary planar current-carrying loop
//	into finite prism current sources with mitred end-caps, assembles them
//	into circuits, patterns those circuits axisymmetrically into a coil
//	cage, and evaluates the resulting magnetic field and toroidal-field
//	ripple at arbitrary points in space. It is aimed at:
//	  • Toroidal-field coil sizing & ripple studies
//	  • Conceptual magnet layout for fusion and accelerator devices
//	  • Fast Biot–Savart field maps before any finite-element work
//
// ✨ Key features:
//   - Planarity-validated shape handling with configurable tolerances
//   - Half-angle (mitre) discretization with explicit winding sign rules
//   - Rectangular and polyhedral conductor cross-sections
//   - Superposition field evaluation, deep-copy + rigid-body transforms
//   - Axisymmetric coil patterning and toroidal-field ripple in percent
//
// Everything is organized under five subpackages:
//
//	geom/      — planar coordinate sets, windings, rotations, polygon tests
//	source/    — finite current-source primitives & source groups
//	circuit/   — loop discretization and circuit construction
//	cage/      — axisymmetric coil cages, field & ripple evaluation
//	fieldplot/ — quick-look field and ripple plots (gonum/plot)
//
// Quick ASCII example, a rectangular TF coil patterned 12× about z:
//
//	    z ▲   ┌───────┐
//	      │   │ coil  │      × 12 about the z-axis
//	      │   │       │    → toroidal "cage" of coils
//	      └───┴───────┴──▶ x
//
// Field evaluation flows top-down: Cage → Circuit → Source, summing
// vector contributions at every level.
//
//	go get github.com/fieldline/magcage
package magcage
