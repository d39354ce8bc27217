// Package features turns a decoded chart image into a fixed measurement
// vector.
//
// Extract runs the full measurement pipeline: grayscale conversion, edge
// detection, contour and shape search, line search, and global color
// statistics. The resulting Vector is the only input the classifier sees,
// so every decision the service makes is reproducible from the vector
// alone.
//
// All pipeline tunables live in Params. The defaults are calibrated
// against rendered chart images; they can be overridden from a YAML file
// for experiments without rebuilding.
//
// # Determinism
//
// Extract is deterministic: the same pixels and the same Params always
// produce the same Vector. The probabilistic line search underneath uses
// a fixed sampling seed, so repeated runs agree bit for bit.
package features
