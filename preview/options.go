// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"image/color"
)

// Option configures Render.
//
// Example:
//
//	img := preview.Render(res,
//	    preview.WithSize(800, 800),
//	    preview.WithLabel("axiom 2"),
//	)
type Option func(*options)

// options holds the rendering configuration.
type options struct {
	width, height int
	margin        int
	background    color.Color
	paper         color.Color
	flap          color.Color
	crease        color.Color
	creaseWidth   float64
	label         string
	labelSize     float64
	bounds        *Rect
}

// defaultOptions returns the default rendering options.
func defaultOptions() options {
	return options{
		width:       512,
		height:      512,
		margin:      24,
		background:  color.White,
		paper:       color.RGBA{R: 0xf2, G: 0xe6, B: 0xc8, A: 0xff},
		flap:        color.NRGBA{R: 0x4a, G: 0x7a, B: 0xc0, A: 0xa0},
		crease:      color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff},
		creaseWidth: 2,
		labelSize:   14,
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(w, h int) Option {
	return func(o *options) {
		if w > 0 && h > 0 {
			o.width, o.height = w, h
		}
	}
}

// WithMargin sets the empty border around the drawing in pixels.
func WithMargin(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.margin = px
		}
	}
}

// WithBackground sets the color outside the paper.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPaperColor sets the fill of the part of the paper that stays put.
func WithPaperColor(c color.Color) Option {
	return func(o *options) {
		o.paper = c
	}
}

// WithFlapColor sets the fill of the folded flap. Translucent colors let the
// paper underneath show through.
func WithFlapColor(c color.Color) Option {
	return func(o *options) {
		o.flap = c
	}
}

// WithCreaseColor sets the color of the crease line.
func WithCreaseColor(c color.Color) Option {
	return func(o *options) {
		o.crease = c
	}
}

// WithCreaseWidth sets the crease stroke width in pixels. Zero hides the
// crease.
func WithCreaseWidth(px float64) Option {
	return func(o *options) {
		if px >= 0 {
			o.creaseWidth = px
		}
	}
}

// WithLabel draws s in the top-left corner.
func WithLabel(s string) Option {
	return func(o *options) {
		o.label = s
	}
}

// WithLabelSize sets the label font size in pixels.
func WithLabelSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.labelSize = px
		}
	}
}

// WithBounds fixes the paper-space region shown. By default the view fits
// the fold result.
func WithBounds(minX, minY, maxX, maxY float64) Option {
	return func(o *options) {
		if maxX > minX && maxY > minY {
			o.bounds = &Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
		}
	}
}
