package tui

import "sort"

// brailleBits maps a micro-pixel within a cell, indexed [x][y], to its dot
// in the U+2800 block.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel (2x4 per cell). Pixels off the canvas are
// dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

// plus draws a small cross centred on a micro-pixel.
func (b *brailleBuf) plus(mx, my int) {
	b.setPixel(mx, my)
	b.setPixel(mx-1, my)
	b.setPixel(mx+1, my)
	b.setPixel(mx, my-1)
	b.setPixel(mx, my+1)
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	if b.offCanvas(x0, y0, x1, y1) {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// offCanvas reports whether a segment lies entirely to one side of the
// canvas, so deep zooms do not walk millions of clipped pixels.
func (b *brailleBuf) offCanvas(x0, y0, x1, y1 int) bool {
	wm, hm := b.w*2, b.h*4
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= wm && x1 >= wm) || (y0 >= hm && y1 >= hm)
}

// polyline draws consecutive segments through pts; closed joins the last
// point back to the first.
func (b *brailleBuf) polyline(pts [][2]int, closed bool) {
	for i := 1; i < len(pts); i++ {
		b.drawLineMicro(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
	if closed && len(pts) > 2 {
		last := pts[len(pts)-1]
		b.drawLineMicro(last[0], last[1], pts[0][0], pts[0][1])
	}
}

// fill sets every micro-pixel inside ring using the even-odd rule per
// scanline.
func (b *brailleBuf) fill(ring [][2]int) {
	if len(ring) < 3 {
		return
	}
	hm := b.h * 4
	var xs []int
	for y := 0; y < hm; y++ {
		xs = xs[:0]
		for i := range ring {
			p, q := ring[i], ring[(i+1)%len(ring)]
			if p[1] == q[1] {
				continue
			}
			if (y >= p[1] && y < q[1]) || (y >= q[1] && y < p[1]) {
				t := float64(y-p[1]) / float64(q[1]-p[1])
				xs = append(xs, int(float64(p[0])+t*float64(q[0]-p[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], b.w*2-1); x++ {
				b.setPixel(x, y)
			}
		}
	}
}

func (b *brailleBuf) toLines() [][]rune {
	out := make([][]rune, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = row
	}
	return out
}
