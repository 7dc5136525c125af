// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview draws the result of a fold.
//
// Render rasterizes the part of the paper that stays put, the reflected
// flap on top of it, and the crease clipped to the image:
//
//	res, _ := origami.NewPaper(10, 10).Fold(crease)
//	img := preview.Render(res, preview.WithSize(256, 256))
//	err := preview.SavePNG("fold.png", img)
//
// Paper coordinates are y-up; the image is y-down.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/origami"
)

// labelFont is parsed on first use.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Render draws res into a new image.
func Render(res origami.FoldResult, opts ...Option) *image.RGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	view := o.view(res)
	m := viewMatrix(view.MinX, view.MinY, view.MaxX, view.MaxY, o.width, o.height, o.margin)

	fillPolygon(img, m, res.Positive, o.paper)
	fillPolygon(img, m, res.Negative, o.flap)
	if o.creaseWidth > 0 {
		drawCrease(img, m, res.Crease, o.crease, o.creaseWidth)
	}
	if o.label != "" {
		drawLabel(img, o)
	}

	origami.Logger().Debug("preview: rendered",
		"width", o.width, "height", o.height, "crease", res.Crease)
	return img
}

// view returns the paper-space region to show.
func (o *options) view(res origami.FoldResult) Rect {
	if o.bounds != nil {
		return *o.bounds
	}
	if len(res.Positive) == 0 && len(res.Negative) == 0 {
		return Rect{MaxX: 1, MaxY: 1}
	}
	minPt, maxPt := res.Bounds()
	return Rect{
		MinX: float64(minPt.X), MinY: float64(minPt.Y),
		MaxX: float64(maxPt.X), MaxY: float64(maxPt.Y),
	}
}

// fillPolygon fills the closed outline pts, given in paper space.
func fillPolygon(dst *image.RGBA, m Matrix, pts []origami.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	size := dst.Bounds().Size()
	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Over
	for i, p := range pts {
		x, y := m.TransformPoint(float64(p.X), float64(p.Y))
		if i == 0 {
			z.MoveTo(float32(x), float32(y))
		} else {
			z.LineTo(float32(x), float32(y))
		}
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// drawCrease strokes the infinite line l across the whole image.
func drawCrease(dst *image.RGBA, m Matrix, l origami.Line, c color.Color, width float64) {
	l = l.Normalized()
	a, b, cc := float64(l.A), float64(l.B), float64(l.C)
	if math.Hypot(a, b) < origami.Epsilon {
		return
	}

	size := dst.Bounds().Size()
	inv, ok := m.Invert()
	if !ok {
		return
	}
	// Paper-space extent of the image, long enough to cross it from any
	// point of the line near the view.
	x0, y0 := inv.TransformPoint(0, 0)
	x1, y1 := inv.TransformPoint(float64(size.X), float64(size.Y))
	cx, cy := (x0+x1)/2, (y0+y1)/2
	reach := math.Hypot(x1-x0, y1-y0)

	// Closest point of the line to the view center, then out both ways.
	d := a*cx + b*cy + cc
	fx, fy := cx-a*d, cy-b*d
	dx, dy := -b*reach, a*reach

	px0, py0 := m.TransformPoint(fx-dx, fy-dy)
	px1, py1 := m.TransformPoint(fx+dx, fy+dy)

	pad := width
	bounds := Rect{MinX: -pad, MinY: -pad, MaxX: float64(size.X) + pad, MaxY: float64(size.Y) + pad}
	px0, py0, px1, py1, ok = ClipLine(bounds, px0, py0, px1, py1)
	if !ok {
		return
	}
	strokeSegment(dst, px0, py0, px1, py1, width, c)
}

// strokeSegment fills the width-wide quad around a pixel-space segment.
func strokeSegment(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}
	nx, ny := -(y1-y0)/length*width/2, (x1-x0)/length*width/2

	size := dst.Bounds().Size()
	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Over
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// drawLabel writes o.label in the top-left corner.
func drawLabel(dst *image.RGBA, o options) {
	f, err := labelFont()
	if err != nil {
		origami.Logger().Warn("preview: label font unavailable", "err", err)
		return
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		origami.Logger().Warn("preview: label face", "err", err)
		return
	}
	defer func() {
		_ = face.Close()
	}()

	pad := max(o.margin/4, 4)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(pad, pad+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(o.label)
}
