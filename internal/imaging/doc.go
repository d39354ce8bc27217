// Package imaging provides the pixel-level measurements the chart detector
// is built on: grayscale conversion, Canny edge maps, fill ratio, and
// color statistics.
//
// All functions treat the input image as read-only and allocate their own
// output, so they are safe for concurrent use. Zero-area images are handled
// without error: edge maps come back empty and the scalar measurements
// return 0.
package imaging
