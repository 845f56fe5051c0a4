// Package layout implements the Sugiyama-style layered drawing pipeline
// that positions an entity-relationship graph for rendering.
//
// # Pipeline
//
// [Apply] runs four phases over a [dag.Graph] arena:
//
//  1. Cycle breaking ([ReverseCycles]): depth-first back edges are reversed
//     for layering only; the emitter restores their semantic direction.
//  2. Rank assignment ([AssignRanks]): longest-path layering via Kahn's
//     algorithm. Every edge ends up pointing from a lower to a higher rank.
//  3. Crossing minimization ([OrderRanks]): alternating barycenter sweeps
//     with a fixed pass cap and stable tie-breaking.
//  4. Coordinate assignment ([AssignCoords]): uniform rank spacing along the
//     layering direction, cumulative extent stacking across it.
//
// # Determinism
//
// For the same nodes and edges in the same insertion order, every phase
// produces identical output: traversals follow insertion order, sorts are
// stable, and no map iteration order leaks into results. Callers can rely
// on bit-identical coordinates across calls.
//
// # Termination
//
// The crossing-minimization pass cap bounds run time structurally. There is
// no error path for pathological graphs - a worst-case input simply keeps
// whatever ordering the capped sweeps reached.
package layout
