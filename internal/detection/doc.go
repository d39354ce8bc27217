// Package detection provides the shape detectors the chart classifier reads
// its structural evidence from.
//
// Three families of evidence are extracted from an edge map:
//
//   - Contours: connected components of edge pixels with a traced closed
//     boundary, enclosed area, and perimeter
//   - Rectangles: contours whose simplified boundary polygon has exactly
//     four vertices (bars, legend boxes, heatmap cells)
//   - Circles and line segments: Hough transforms tuned for the large
//     proportions circular charts and axis structure occupy in a rendering
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward.
//
// # Determinism
//
// Every detector is deterministic: the segment detector's random sampling
// order comes from a fixed-seed generator, so repeated runs over the same
// pixels return identical results.
//
// # Performance
//
// The detectors iterate over all pixels and the Hough transforms search a
// parameter space on top of that. Cost grows with image area and, for
// circles, with the radius band searched. Chart renderings are typically
// under a few megapixels, where a full extraction stays well inside
// interactive latency.
package detection
