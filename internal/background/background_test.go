package background

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode temp png: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeTestPNG(t, 40, 30)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}

func TestLoad_FileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_HTTP(t *testing.T) {
	path := writeTestPNG(t, 20, 20)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp png: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	img, err := Load(srv.URL + "/bg.png")
	if err != nil {
		t.Fatalf("Load over HTTP failed: %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Errorf("width: got %d, want 20", img.Bounds().Dx())
	}
}

func TestLoad_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Load(srv.URL + "/missing.png"); err == nil {
		t.Error("Load should fail on a non-200 response")
	}
}

func TestFit(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))

	tests := []struct {
		name          string
		width, height int
	}{
		{"upscale", 400, 300},
		{"downscale", 25, 10},
		{"aspect change", 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Fit(src, tt.width, tt.height)
			b := out.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}
