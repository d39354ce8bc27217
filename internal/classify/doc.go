// Package classify assigns a chart-type label to a measurement vector.
//
// Classification walks a fixed, ordered rule table: each rule pairs a
// predicate over the vector with the label logic that runs when it
// matches, and the first matching rule wins. Rules for specific
// structural signatures (a dominant circle, a field of small marks)
// come before generic ones (lines, areas, bars) so a specific signal
// is never claimed by a broader rule further down. When no rule
// matches, a fallback chain always produces a label, so Classify is
// total: every vector maps to exactly one of the thirteen labels.
//
// Detector wraps measurement and classification into one call with a
// safe default: images the pipeline cannot measure come back labeled
// Scatterplot instead of failing the request.
//
// All thresholds in the table are process-wide constants. Nothing here
// mutates shared state, so any number of classifications may run
// concurrently.
package classify
