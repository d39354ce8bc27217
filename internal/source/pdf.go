package source

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// renderDPI is the resolution PDF pages are rasterized at.
const renderDPI = 150

// renderPDF rasterizes the first page of a PDF payload.
func renderPDF(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	img, err := doc.ImageDPI(0, renderDPI)
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf page: %w", err)
	}
	return img, nil
}
