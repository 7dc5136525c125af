// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Outcode bits for Cohen-Sutherland clipping.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func (r Rect) outcode(x, y float64) int {
	code := outcodeInside
	if x < r.MinX {
		code |= outcodeLeft
	} else if x > r.MaxX {
		code |= outcodeRight
	}
	if y < r.MinY {
		code |= outcodeTop
	} else if y > r.MaxY {
		code |= outcodeBottom
	}
	return code
}

// ClipLine clips the segment (x0,y0)-(x1,y1) to r with the Cohen-Sutherland
// algorithm. It returns false when the segment lies entirely outside.
func ClipLine(r Rect, x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	code0 := r.outcode(x0, y0)
	code1 := r.outcode(x1, y1)

	for {
		if code0|code1 == 0 {
			return x0, y0, x1, y1, true
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		var x, y float64
		switch {
		case out&outcodeTop != 0:
			x = x0 + (x1-x0)*(r.MinY-y0)/(y1-y0)
			y = r.MinY
		case out&outcodeBottom != 0:
			x = x0 + (x1-x0)*(r.MaxY-y0)/(y1-y0)
			y = r.MaxY
		case out&outcodeRight != 0:
			y = y0 + (y1-y0)*(r.MaxX-x0)/(x1-x0)
			x = r.MaxX
		case out&outcodeLeft != 0:
			y = y0 + (y1-y0)*(r.MinX-x0)/(x1-x0)
			x = r.MinX
		}

		if out == code0 {
			x0, y0 = x, y
			code0 = r.outcode(x0, y0)
		} else {
			x1, y1 = x, y
			code1 = r.outcode(x1, y1)
		}
	}
}
