package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func snapshot() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		2, 0, 1,
		0, 1, 0,
		0, 0, 3,
	})
}

func TestGlyph(t *testing.T) {
	var b bytes.Buffer
	if err := NewGlyph(&b).Render(snapshot()); err != nil {
		t.Fatal(err)
	}

	want := "H.#\n.#.\n..P\n\n"
	if b.String() != want {
		t.Errorf("glyphs = %q, want %q", b.String(), want)
	}

	if got := Glyphs(mat.NewDense(1, 1, []float64{7})); got != "?\n" {
		t.Errorf("unknown cell rendered as %q", got)
	}
}

func TestText(t *testing.T) {
	var b bytes.Buffer
	if err := NewText(&b).Render(snapshot()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), b.String())
	}
	if !strings.Contains(lines[2], "3") {
		t.Errorf("prey missing from last row %q", lines[2])
	}
}

func TestEncodePNG(t *testing.T) {
	var b bytes.Buffer
	if err := EncodePNG(&b, snapshot(), 10); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("image is %dx%d, want 30x30", bounds.Dx(), bounds.Dy())
	}

	wall := color.RGBAModel.Convert(img.At(25, 5)).(color.RGBA)
	free := color.RGBAModel.Convert(img.At(15, 5)).(color.RGBA)
	if wall == free {
		t.Error("walls and free cells drawn alike")
	}
	if free != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("free cell drawn as %v", free)
	}
}

func TestPNGFrames(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPNG(filepath.Join(dir, "frame%02d.png"), 4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := p.Render(snapshot()); err != nil {
			t.Fatal(err)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "frame*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 || p.Frames() != 3 {
		t.Errorf("wrote %d files over %d frames, want 3", len(files),
			p.Frames())
	}

	if _, err := NewPNG("x.png", 0); err == nil {
		t.Error("zero cell size accepted")
	}
}
