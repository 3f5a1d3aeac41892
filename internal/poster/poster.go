// Package poster renders placeholder artwork for portfolio videos.
//
// Every project gets a deterministic poster: a dark field with two
// gradient discs, rotated through a per-project hue so cards stay
// visually distinct, and optionally a large two-letter monogram.
// Posters are encoded as JPEG so they can sit next to the mirrored
// videos and serve as preview frames before media loads.
package poster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Poster canvas dimensions, 16:9.
const (
	Width  = 800
	Height = 450
)

// Gradient palette: violet to cyan to magenta over a near-black field.
var (
	fieldColor = color.RGBA{R: 0x0b, G: 0x0b, B: 0x10, A: 0xff}
	textColor  = color.RGBA{R: 0xe8, G: 0xea, B: 0xf2, A: 0xff}

	gradientStops = []color.RGBA{
		{R: 0x7c, G: 0x5c, B: 0xff, A: 0xff},
		{R: 0x00, G: 0xe0, B: 0xff, A: 0xff},
		{R: 0xff, G: 0x4e, B: 0xcd, A: 0xff},
	}
)

// disc is a filled circle carrying the gradient.
type disc struct {
	cx, cy, r float64
}

var discs = []disc{
	{cx: 220, cy: 180, r: 220},
	{cx: 540, cy: 280, r: 260},
}

const discOpacity = 0.35

// Renderer produces poster images.
//
// Example usage:
//
//	r := poster.NewRenderer()
//
//	// Render the card artwork for a project.
//	data, _ := r.Render(ctx, poster.Options{
//		Initials: "NS",
//		Hue:      8,
//	})
//
//	// Shrink an existing image to fit a bound.
//	thumb, _ := r.Resize(ctx, data, 400, 400)
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Options controls a single poster render.
type Options struct {
	// Initials is the monogram drawn in the center when ShowText is set.
	Initials string

	// Hue rotates the gradient palette, in degrees. Zero keeps the
	// base palette.
	Hue float64

	// ShowText draws the monogram. The gallery leaves this off and
	// lets the card title carry the text instead.
	ShowText bool
}

// Render draws a poster and returns it as JPEG-encoded bytes.
//
// The output is fully determined by opts: rendering the same options
// twice yields identical pixels, so posters can be regenerated at any
// time without churning the mirror.
func (r *Renderer) Render(ctx context.Context, opts Options) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	// Dark field.
	draw.Draw(img, img.Bounds(), image.NewUniform(fieldColor), image.Point{}, draw.Src)

	stops := rotatedStops(opts.Hue)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			inside := false
			for _, d := range discs {
				dx, dy := float64(x)-d.cx, float64(y)-d.cy
				if dx*dx+dy*dy <= d.r*d.r {
					inside = true
					break
				}
			}
			if !inside {
				continue
			}
			// Diagonal gradient across the full canvas.
			t := (float64(x)/Width + float64(y)/Height) / 2
			img.SetRGBA(x, y, blend(img.RGBAAt(x, y), gradientAt(stops, t), discOpacity))
		}
	}

	if opts.ShowText && opts.Initials != "" {
		drawMonogram(img, opts.Initials)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Resize scales an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. If the image is already smaller than
// the maximum dimensions, it is still re-encoded as JPEG. Catmull-Rom
// interpolation is used for quality.
//
// Example:
//
//	// A 1500x1000 image becomes 1000x667.
//	// An 800x600 image stays 800x600 but is re-encoded.
//	resized, err := r.Resize(ctx, data, 1000, 1000)
func (r *Renderer) Resize(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rotatedStops applies a hue rotation to the gradient palette.
func rotatedStops(degrees float64) []color.RGBA {
	if degrees == 0 {
		return gradientStops
	}
	out := make([]color.RGBA, len(gradientStops))
	for i, s := range gradientStops {
		out[i] = rotateHue(s, degrees)
	}
	return out
}

// rotateHue rotates a color's hue using the standard luminance-preserving
// rotation matrix (the same transform SVG's hue-rotate filter applies).
func rotateHue(c color.RGBA, degrees float64) color.RGBA {
	rad := degrees * math.Pi / 180
	cosA, sinA := math.Cos(rad), math.Sin(rad)

	m := [9]float64{
		0.213 + cosA*0.787 - sinA*0.213, 0.715 - cosA*0.715 - sinA*0.715, 0.072 - cosA*0.072 + sinA*0.928,
		0.213 - cosA*0.213 + sinA*0.143, 0.715 + cosA*0.285 + sinA*0.140, 0.072 - cosA*0.072 - sinA*0.283,
		0.213 - cosA*0.213 - sinA*0.787, 0.715 - cosA*0.715 + sinA*0.715, 0.072 + cosA*0.928 + sinA*0.072,
	}

	rf, gf, bf := float64(c.R), float64(c.G), float64(c.B)
	return color.RGBA{
		R: clamp8(m[0]*rf + m[1]*gf + m[2]*bf),
		G: clamp8(m[3]*rf + m[4]*gf + m[5]*bf),
		B: clamp8(m[6]*rf + m[7]*gf + m[8]*bf),
		A: c.A,
	}
}

// gradientAt interpolates the palette at position t in [0, 1].
func gradientAt(stops []color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	span := 1.0 / float64(len(stops)-1)
	i := int(t / span)
	local := (t - float64(i)*span) / span
	a, b := stops[i], stops[i+1]
	return color.RGBA{
		R: lerp8(a.R, b.R, local),
		G: lerp8(a.G, b.G, local),
		B: lerp8(a.B, b.B, local),
		A: 0xff,
	}
}

// blend mixes src over dst at the given opacity.
func blend(dst, src color.RGBA, opacity float64) color.RGBA {
	return color.RGBA{
		R: lerp8(dst.R, src.R, opacity),
		G: lerp8(dst.G, src.G, opacity),
		B: lerp8(dst.B, src.B, opacity),
		A: 0xff,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return clamp8(float64(a) + (float64(b)-float64(a))*t)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// drawMonogram renders the initials centered on the canvas. The bitmap
// face is drawn small and scaled up, which gives a soft, poster-like
// letterform without shipping a vector font.
func drawMonogram(dst *image.RGBA, initials string) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, initials).Ceil()
	if textWidth == 0 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0, textWidth, face.Height))
	drawer := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(initials)

	// Scale so the glyphs stand about a fifth of the poster tall.
	targetHeight := Height / 5
	scale := float64(targetHeight) / float64(face.Height)
	targetWidth := int(float64(textWidth) * scale)

	x0 := (Width - targetWidth) / 2
	y0 := (Height - targetHeight) / 2
	rect := image.Rect(x0, y0, x0+targetWidth, y0+targetHeight)
	draw.CatmullRom.Scale(dst, rect, small, small.Bounds(), draw.Over, nil)
}
