package filter

import (
	"github.com/kpfaulkner/imgfilter/util"
)

// correlate is the general 2D neighbourhood primitive:
//
//	dst(x,y) = sum over i,j of k[i][j] * src(y+i-anchor.Y, x+j-anchor.X)
//
// Out of range samples are resolved through the engine's border tables;
// constant borders read borderValue.
func (e *Engine) correlate(src, dst [][]float32, k *Kernel, anchor util.Point, borderValue float32) {
	height := len(src)
	width := len(src[0])
	kh := int(k.Height)
	kw := int(k.Width)
	ax := int(anchor.X)
	ay := int(anchor.Y)

	border := e.options.Border
	rows := border.IndexTable(height, ay, kh-1-ay)
	cols := border.IndexTable(width, ax, kw-1-ax)

	weightRows := k.GetAs2DSlice()

	// contribution of a kernel row that lies entirely in a constant border
	constRow := make([]float32, kh)
	for i, weights := range weightRows {
		for _, w := range weights {
			constRow[i] += w * borderValue
		}
	}

	e.forRows(height, width, func(startY, endY int) {
		for y := startY; y < endY; y++ {
			out := dst[y]
			clear(out)
			for i := 0; i < kh; i++ {
				ri := rows[y+i]
				if ri < 0 {
					for x := range out {
						out[x] += constRow[i]
					}
					continue
				}
				weights := weightRows[i]
				in := src[ri]
				for x := range out {
					sum := float32(0)
					for j, ci := range cols[x : x+kw] {
						if ci < 0 {
							sum += weights[j] * borderValue
						} else {
							sum += weights[j] * in[ci]
						}
					}
					out[x] += sum
				}
			}
		}
	})
}

// sepCorrelate applies the outer product of kx (along rows) and ky (along
// columns), both centred: a horizontal pass into a pooled scratch plane then
// a vertical pass into dst.
func (e *Engine) sepCorrelate(src, dst [][]float32, kx, ky []float32, borderValue float32) {
	height := len(src)
	width := len(src[0])
	ax := len(kx) / 2
	ay := len(ky) / 2

	border := e.options.Border
	cols := border.IndexTable(width, ax, len(kx)-1-ax)
	rows := border.IndexTable(height, ay, len(ky)-1-ay)

	tmp := util.MakeMatrix2DPooled[float32](height, width)
	defer util.ReturnMatrix2DToPool(tmp)

	e.forRows(height, width, func(startY, endY int) {
		for y := startY; y < endY; y++ {
			in := src[y]
			out := tmp[y]
			for x := range out {
				sum := float32(0)
				for j, ci := range cols[x : x+len(kx)] {
					if ci < 0 {
						sum += kx[j] * borderValue
					} else {
						sum += kx[j] * in[ci]
					}
				}
				out[x] = sum
			}
		}
	})

	// a row outside a constant border is borderValue everywhere, so its
	// horizontal pass is borderValue * sum(kx)
	constRow := float32(0)
	for _, w := range kx {
		constRow += w * borderValue
	}

	e.forRows(height, width, func(startY, endY int) {
		for y := startY; y < endY; y++ {
			out := dst[y]
			clear(out)
			for i, w := range ky {
				ri := rows[y+i]
				if ri < 0 {
					for x := range out {
						out[x] += w * constRow
					}
					continue
				}
				in := tmp[ri]
				for x := range out {
					out[x] += w * in[x]
				}
			}
		}
	})
}

// squarePlane returns a pooled plane holding src squared. Callers return it
// with util.ReturnMatrix2DToPool.
func (e *Engine) squarePlane(src [][]float32) [][]float32 {
	height := len(src)
	width := len(src[0])
	sq := util.MakeMatrix2DPooled[float32](height, width)
	e.forRows(height, width, func(startY, endY int) {
		for y := startY; y < endY; y++ {
			for x, v := range src[y] {
				sq[y][x] = v * v
			}
		}
	})
	return sq
}
