// Package contour partitions the on cells of a grid into 4-connected regions
// and picks out each region's boundary cells.
//
// What:
//
//   - Extract scans the grid row-major and flood fills each new region with
//     an explicit stack (no recursion, so large grids cannot exhaust the
//     goroutine stack).
//   - A cell is a boundary cell when any of its four neighbours is off,
//     including neighbours that fall outside the grid.
//   - Boundary cells are recorded in stack-pop order. Regions with fewer
//     than two boundary cells are dropped.
//
// Orders:
//
//   - Discovery (default): each region yields one stroke, its boundary cells
//     in pop order. Consecutive cells need not be adjacent; the synthesizer
//     skips such pairs, so parts of the outline may go undrawn.
//   - Walk: boundary cells are reordered into 4-connected strokes by a
//     backtracking walk, so every consecutive pair is adjacent.
//
// Complexity:
//
//   - Extract: O(W×H) time, O(W×H) memory for the visited mask.
//   - Walk ordering: O(B) per region, B = boundary cells.
package contour
