// Package model provides the data types shared by the reconstruction
// pipeline.
//
// # Fragments
//
// The [TextFragment] type is the unit of input: one decoded line of text
// with a bounding box and a dominant font name. Fragments are produced
// by the reader package (or any other layout pass) and are treated as
// immutable by everything downstream.
//
// # Rows
//
// The [Row] type is the unit of output: a mapping from header text to
// the fragment assigned to that column. Rows keep the full fragment
// rather than its text so that font and position metadata stay available
// for disambiguation by the caller.
//
// # Geometry
//
// Geometric primitives support the coordinate-based grouping the engine
// is built on:
//
//   - [BBox] - bounding box stored as its four edges, with intersection,
//     union, and containment calculations
//   - [Point] - 2D point with distance calculation
//   - [Edge] - selector for a single bounding box edge, used to
//     parameterize grouping and table building over an axis
package model
