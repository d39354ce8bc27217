package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want uint8
	}{
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"red", color.RGBA{255, 0, 0, 255}, 76},    // 0.299 * 255
		{"green", color.RGBA{0, 255, 0, 255}, 150}, // 0.587 * 255
		{"blue", color.RGBA{0, 0, 255, 255}, 29},   // 0.114 * 255
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.in)
			gray := Grayscale(img)

			got := gray.GrayAt(5, 5).Y
			if absFloat(float64(got)-float64(tt.want)) > 2 {
				t.Errorf("Grayscale(%v): got %d, want ~%d", tt.in, got, tt.want)
			}
		})
	}
}

func TestGrayscale_PreservesDimensions(t *testing.T) {
	img := createInMemoryImage(37, 23, color.White)
	gray := Grayscale(img)

	if gray.Rect.Dx() != 37 || gray.Rect.Dy() != 23 {
		t.Errorf("dimensions: got %dx%d, want 37x23", gray.Rect.Dx(), gray.Rect.Dy())
	}
}

func TestGrayPlane(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 3))
	gray.SetGray(0, 0, color.Gray{Y: 0})
	gray.SetGray(1, 0, color.Gray{Y: 255})
	gray.SetGray(2, 1, color.Gray{Y: 128})

	plane := grayPlane(gray)

	if len(plane) != 3 || len(plane[0]) != 4 {
		t.Fatalf("plane dimensions: got %dx%d, want 4x3", len(plane[0]), len(plane))
	}
	if plane[0][0] != 0 {
		t.Errorf("plane[0][0]: got %.3f, want 0", plane[0][0])
	}
	if plane[0][1] != 1.0 {
		t.Errorf("plane[0][1]: got %.3f, want 1.0", plane[0][1])
	}
	if absFloat(plane[1][2]-128.0/255.0) > 0.001 {
		t.Errorf("plane[1][2]: got %.3f, want %.3f", plane[1][2], 128.0/255.0)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},   // within range
		{-1, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tt := range tests {
		got := clamp(tt.val, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%d, %d, %d): got %d, want %d",
				tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
