// Package geom provides the planar-geometry foundation for magcage:
// validated coordinate sets, winding-sense queries, rotations, and 2D
// polygon tests.
//
// The central type is Coordinates: an ordered sequence of 3D points that
// is verified to be coplanar at construction time (via an SVD plane fit)
// and carries a cached unit normal, center of mass, and open/closed
// topology. A point sequence whose last point duplicates its first is
// treated as a closed loop, with the duplicate dropped.
//
// Supporting utilities:
//   - RotationBetween / AxisRotation — rigid rotations (gonum spatial/r3),
//     including the degenerate parallel and antiparallel alignments.
//   - InPolygon / SignedArea / EnsureCCW — 2D polygon predicates used by
//     the mitre-sign logic in package circuit. Polygons handed to
//     InPolygon are normalized to counterclockwise order first, so the
//     test is independent of input winding.
//
// Tolerances (planarity, point/vector equality) are configurable through
// Options; see DefaultOptions for the documented defaults.
package geom
