// Package server exposes the chart detector as a small HTTP API.
//
// A single POST endpoint accepts a chart document as a multipart upload, a
// base64 JSON payload, or a raw request body, and answers with a JSON
// envelope naming the detected chart type. Companion endpoints report
// service status, liveness, and process metrics.
//
// The detect endpoint always answers 200 with a usable label. Requests
// that never reach the detector (unreadable payloads, undecodable
// documents) are reported in the same envelope with success set to false
// and the fixed fallback label.
package server
