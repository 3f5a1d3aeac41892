package poster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"
)

func TestRender_Deterministic(t *testing.T) {
	r := NewRenderer()
	opts := Options{Initials: "NS", Hue: 8, ShowText: true}

	first, err := r.Render(context.Background(), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := r.Render(context.Background(), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical options should render identical bytes")
	}
}

func TestRender_ProducesCanvasSizedJPEG(t *testing.T) {
	r := NewRenderer()
	data, err := r.Render(context.Background(), Options{Hue: -12})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Errorf("bounds = %v, want %dx%d", img.Bounds(), Width, Height)
	}
}

func TestRender_HueChangesOutput(t *testing.T) {
	r := NewRenderer()
	base, err := r.Render(context.Background(), Options{Hue: 0})
	if err != nil {
		t.Fatal(err)
	}
	shifted, err := r.Render(context.Background(), Options{Hue: 42})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(base, shifted) {
		t.Error("hue rotation should change the rendered poster")
	}
}

func TestRotateHue_ZeroIsIdentity(t *testing.T) {
	c := color.RGBA{R: 0x7c, G: 0x5c, B: 0xff, A: 0xff}
	if got := rotateHue(c, 0); got != c {
		t.Errorf("rotateHue(c, 0) = %v, want %v", got, c)
	}
}

func TestGradientAt_Endpoints(t *testing.T) {
	if got := gradientAt(gradientStops, 0); got != gradientStops[0] {
		t.Errorf("gradientAt(0) = %v", got)
	}
	if got := gradientAt(gradientStops, 1); got != gradientStops[2] {
		t.Errorf("gradientAt(1) = %v", got)
	}
}

func TestResize_ShrinksToFit(t *testing.T) {
	r := NewRenderer()
	data, err := r.Render(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	resized, err := r.Resize(context.Background(), data, 400, 400)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatal(err)
	}
	// 800x450 bounded by 400x400 keeps the 16:9 ratio.
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 225 {
		t.Errorf("bounds = %v, want 400x225", img.Bounds())
	}
}

func TestResize_SmallImageKeptAtSize(t *testing.T) {
	r := NewRenderer()
	data, err := r.Render(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	resized, err := r.Resize(context.Background(), data, 2000, 2000)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Errorf("bounds = %v, want original size", img.Bounds())
	}
}
