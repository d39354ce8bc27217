// Package source turns inbound payloads, uploaded bytes or local files,
// into decoded raster images for the detector.
//
// Raster payloads go through the standard image decoders plus the WebP,
// BMP and TIFF registrations. PDF payloads are recognized by content, not
// extension, and rendered to their first page; charts routinely arrive
// embedded in PDF exports.
package source
