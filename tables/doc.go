// Package tables reconstructs tabular data from positioned text fragments.
//
// Given fragments that each carry text and a bounding box, the package
// infers which fragments form a header row, which fragments belong
// together as a data row, and which header each data fragment belongs to
// as a column. It does not look at rendered lines or borders; everything
// is decided from coordinates.
//
// # Pipeline
//
// A typical reconstruction runs in four steps:
//
//  1. [LocateHeaderGroup] finds the coordinate shared by the fragments
//     whose texts jointly satisfy a set of header patterns.
//  2. [PartitionByEdge] splits the fragment list into the header band
//     and the body using that coordinate.
//  3. [BuildRowTable] (or [BuildColumnTable]) groups the body into row
//     clusters and assigns every fragment to the header it overlaps,
//     producing one [model.Row] per cluster.
//  4. [MergeOverlappingRows] folds adjacent rows whose vertical extents
//     overlap, undoing splits caused by wrapped multi-line cells.
//
// # Grouping semantics
//
// Clustering relies on fragments of the same visual line reporting
// bit-identical coordinates along the grouping edge. That holds for
// fragments emitted by a single layout pass; it is deliberately not a
// fuzzy match, because the header count checks downstream depend on
// exact partitions.
//
// # Heading bias
//
// When a fragment overlaps no header at all, assignment falls back to a
// [Bias] policy:
//
//   - [BiasCentered] - nearest header by column center distance
//   - [BiasMin] - nearest header anchored at or before the fragment
//
// When a fragment overlaps several headers, the one with the smallest
// column-minimum coordinate wins, favoring the header the cell visually
// starts under.
//
// # Errors
//
// All geometric violations surface as errors rather than being skipped:
// [ErrGroupNotFound] and [AmbiguousGroupError] from header location,
// [DuplicateKeyError] when two fragments in one row cluster claim the
// same header, [BiasPolicyError] for an unknown bias, and
// [UnresolvableHeaderError] when the min bias has no candidate. Silent
// continuation would produce wrong table data rather than missing data.
package tables
