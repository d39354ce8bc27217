package source

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// createTestImage creates a small gradient image so lossy encoders have
// something to chew on.
func createTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 12),
				G: uint8(y * 12),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestDecode_RasterFormats(t *testing.T) {
	src := createTestImage(20, 20)

	encoders := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(buf *bytes.Buffer) error { return png.Encode(buf, src) }},
		{"jpeg", func(buf *bytes.Buffer) error { return jpeg.Encode(buf, src, nil) }},
		{"gif", func(buf *bytes.Buffer) error { return gif.Encode(buf, src, nil) }},
		{"bmp", func(buf *bytes.Buffer) error { return bmp.Encode(buf, src) }},
		{"tiff", func(buf *bytes.Buffer) error { return tiff.Encode(buf, src, nil) }},
	}

	for _, enc := range encoders {
		var buf bytes.Buffer
		if err := enc.encode(&buf); err != nil {
			t.Fatalf("%s: encode fixture: %v", enc.name, err)
		}

		img, err := Decode(buf.Bytes())
		if err != nil {
			t.Errorf("%s: Decode: %v", enc.name, err)
			continue
		}
		bounds := img.Bounds()
		if bounds.Dx() != 20 || bounds.Dy() != 20 {
			t.Errorf("%s: dimensions: got %dx%d, want 20x20",
				enc.name, bounds.Dx(), bounds.Dy())
		}
	}
}

func TestDecode_EmptyPayload(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Error("expected an error for an empty payload")
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Error("expected an error for unrecognized bytes")
	}
}

func TestDecode_PDF(t *testing.T) {
	// A minimal single-page document. The renderer tolerates the missing
	// xref table and rebuilds it.
	pdf := []byte(`%PDF-1.4
1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj
2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj
3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 200 100] >> endobj
trailer << /Root 1 0 R >>
%%EOF`)

	img, err := Decode(pdf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Errorf("rendered page has empty bounds: %v", bounds)
	}
	// 200x100pt page at 150dpi is landscape.
	if bounds.Dx() <= bounds.Dy() {
		t.Errorf("expected landscape render, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDecode_TruncatedPDF(t *testing.T) {
	if _, err := Decode([]byte("%PDF-1.4\ngarbage")); err == nil {
		t.Error("expected an error for an unrenderable pdf")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, createTestImage(16, 12)); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("dimensions: got %dx%d, want 16x12", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestIsPDF(t *testing.T) {
	if !isPDF([]byte("%PDF-1.7 rest")) {
		t.Error("PDF signature not recognized")
	}
	if isPDF([]byte("PNG...")) {
		t.Error("non-PDF payload misrecognized")
	}
}
