package puzzle

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"

	"kintsugi/pkg/imgutil"
)

// field is a dense w×h×ch feature plane the border strips are sliced from.
type field struct {
	w, h, ch int
	pix      []float64
}

func newField(w, h, ch int) *field {
	return &field{w: w, h: h, ch: ch, pix: make([]float64, w*h*ch)}
}

func (f *field) set(x, y, c int, v float64) {
	f.pix[(y*f.w+x)*f.ch+c] = v
}

// band copies the rectangular region [x0,x0+w)×[y0,y0+h) into a strip.
func (f *field) band(x0, y0, w, h int) *Strip {
	s := newStrip(w, h, f.ch)
	for y := 0; y < h; y++ {
		src := ((y0+y)*f.w + x0) * f.ch
		copy(s.Row(y), f.pix[src:src+w*f.ch])
	}
	return s
}

// borders slices the four fixed-width border strips out of the field.
func (f *field) borders() BorderFeatures {
	return BorderFeatures{
		Top:    f.band(0, 0, f.w, BorderWidth),
		Bottom: f.band(0, f.h-BorderWidth, f.w, BorderWidth),
		Left:   f.band(0, 0, BorderWidth, f.h),
		Right:  f.band(f.w-BorderWidth, 0, BorderWidth, f.h),
	}
}

// extractBorders computes the border strips of a tile in the representation
// the given method scores on. Deterministic; the tile must already satisfy
// the minimum size invariant.
func extractBorders(img *image.RGBA, method Method) BorderFeatures {
	switch method {
	case Gradient:
		return gradientField(img).borders()
	case Color:
		return labField(img).borders()
	default:
		// Raw doubles as the fallback representation; Baseline never
		// reads its features but carries them for uniformity.
		return rawField(img).borders()
	}
}

// rawField copies the RGB channels as-is, in the 0-255 range.
func rawField(img *image.RGBA) *field {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	f := newField(w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(x, y)
			f.set(x, y, 0, float64(c.R))
			f.set(x, y, 1, float64(c.G))
			f.set(x, y, 2, float64(c.B))
		}
	}
	return f
}

// labField converts the tile to the LAB color space, which tracks perceived
// color difference far better than raw RGB.
func labField(img *image.RGBA) *field {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	f := newField(w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.RGBAAt(x, y)
			c := colorful.Color{
				R: float64(px.R) / 255.0,
				G: float64(px.G) / 255.0,
				B: float64(px.B) / 255.0,
			}
			l, a, b := c.Lab()
			f.set(x, y, 0, l)
			f.set(x, y, 1, a)
			f.set(x, y, 2, b)
		}
	}
	return f
}

// gradientField computes per-pixel Sobel gradient magnitude over the tile's
// grayscale intensity. Lines and contours that continue across a tile
// boundary leave matching magnitudes on the touching edges.
func gradientField(img *image.RGBA) *field {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	magnitude := sobelMagnitude(imgutil.ToGray(img))
	f := newField(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.set(x, y, 0, magnitude.At(y, x))
		}
	}
	return f
}

// sobelMagnitude applies the 3x3 Sobel operator with edge replication and
// returns the per-pixel magnitude of the horizontal and vertical derivatives.
func sobelMagnitude(gray *mat.Dense) *mat.Dense {
	rows, cols := gray.Dims()
	out := mat.NewDense(rows, cols, nil)
	clamp := func(v, hi int) int {
		if v < 0 {
			return 0
		}
		if v > hi {
			return hi
		}
		return v
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := func(dy, dx int) float64 {
				return gray.At(clamp(y+dy, rows-1), clamp(x+dx, cols-1))
			}
			gx := p(-1, 1) + 2*p(0, 1) + p(1, 1) - p(-1, -1) - 2*p(0, -1) - p(1, -1)
			gy := p(1, -1) + 2*p(1, 0) + p(1, 1) - p(-1, -1) - 2*p(-1, 0) - p(-1, 1)
			out.Set(y, x, math.Hypot(gx, gy))
		}
	}
	return out
}
