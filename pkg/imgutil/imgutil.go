// Package imgutil provides shared image loading and conversion helpers.
package imgutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"
	"gonum.org/v1/gonum/mat"
)

// Load decodes the image at path. PNG, JPEG, and TIFF are supported.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// ToRGBA converts img to an RGBA image with bounds anchored at the origin.
// The input is returned unchanged when it already has that shape.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// ToGray flattens img to a grayscale intensity plane using the ITU-R BT.601
// luma weights. The plane is indexed (row, column), matching gonum.
func ToGray(img *image.RGBA) *mat.Dense {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			gray.Set(y, x, 0.299*float64(c.R)+0.587*float64(c.G)+0.114*float64(c.B))
		}
	}
	return gray
}

// AverageBorderColor averages the colors along the outermost one-pixel ring
// of img.
func AverageBorderColor(img *image.RGBA) color.RGBA {
	b := img.Bounds()
	var rSum, gSum, bSum, n uint64
	add := func(x, y int) {
		c := img.RGBAAt(x, y)
		rSum += uint64(c.R)
		gSum += uint64(c.G)
		bSum += uint64(c.B)
		n++
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		add(x, b.Min.Y)
		if b.Dy() > 1 {
			add(x, b.Max.Y-1)
		}
	}
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		add(b.Min.X, y)
		if b.Dx() > 1 {
			add(b.Max.X-1, y)
		}
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
		A: 255,
	}
}
