// Package imaging turns catalog images into pixels sized for the artwork card.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"artspace/internal/catalog"
)

// svgRasterScale oversamples SVGs before Fit scales them down.
const svgRasterScale = 2

// Decode returns the pixels of a catalog image.
func Decode(img catalog.Image) (image.Image, error) {
	switch img.Format {
	case "svg":
		return decodeSVG(img)
	case "png", "jpeg":
		src, _, err := image.Decode(bytes.NewReader(img.Data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", img.Name, err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("decode %s: unsupported format %q", img.Name, img.Format)
	}
}

func decodeSVG(img catalog.Image) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(img.Data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", img.Name, err)
	}

	w := int(icon.ViewBox.W) * svgRasterScale
	h := int(icon.ViewBox.H) * svgRasterScale
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("parse %s: empty viewBox", img.Name)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// Fit scales src to fit inside w x h keeping its aspect ratio, centred on bg.
func Fit(src image.Image, w, h int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || w <= 0 || h <= 0 {
		return dst
	}

	scale := min(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	dw := max(1, int(float64(sb.Dx())*scale))
	dh := max(1, int(float64(sb.Dy())*scale))
	x0 := (w - dw) / 2
	y0 := (h - dh) / 2

	xdraw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+dw, y0+dh), src, sb, xdraw.Over, nil)
	return dst
}
