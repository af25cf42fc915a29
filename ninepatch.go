package thicket

// NineSlice describes how a sprite image is cut for scalable drawing: four
// fixed border sizes around a tiled center, plus the image's native size.
type NineSlice struct {
	Left, Top, Right, Bottom int
	Width, Height            int
}

// UniformSlice returns a slice with sliceX on the left and right borders and
// sliceY on the top and bottom borders.
func UniformSlice(sliceX, sliceY, width, height int) NineSlice {
	return NineSlice{
		Left: sliceX, Top: sliceY, Right: sliceX, Bottom: sliceY,
		Width: width, Height: height,
	}
}

// Slices splits a strip of target pixels into the fewest tiles no longer
// than total. Tile lengths differ by at most one and sum to target; the
// remainder is spread evenly along the strip. A non-positive total or
// target yields no tiles.
func Slices(target, total int) []int {
	if total <= 0 || target <= 0 {
		return nil
	}
	n := (target + total - 1) / total
	q, mod := target/n, target%n
	parts := make([]int, n)
	remainder := 0
	for i := range parts {
		part := q
		remainder += mod
		if remainder >= n {
			remainder -= n
			part++
		}
		parts[i] = part
	}
	return parts
}

// BlitNineSliced draws the sprite image id over the destination rectangle.
// Borders are clamped to half the destination size. When the destination
// matches the native size the image is drawn once; when one dimension
// matches, two end caps and a tiled middle strip are drawn; otherwise four
// corners, four tiled edges and a tiled center are drawn.
func BlitNineSliced(ctx DrawContext, id TextureID, x, y, width, height int, s NineSlice, tint Color) {
	if width <= 0 || height <= 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	left := min(s.Left, width/2)
	right := min(s.Right, width/2)
	top := min(s.Top, height/2)
	bottom := min(s.Bottom, height/2)
	tw, th := s.Width, s.Height

	switch {
	case width == tw && height == th:
		blitRegion(ctx, id, x, y, 0, 0, width, height, tw, th, tint)
	case height == th:
		blitRegion(ctx, id, x, y, 0, 0, left, height, tw, th, tint)
		BlitRepeating(ctx, id, x+left, y, width-right-left, height,
			left, 0, tw-right-left, th, tw, th, tint)
		blitRegion(ctx, id, x+width-right, y, tw-right, 0, right, height, tw, th, tint)
	case width == tw:
		blitRegion(ctx, id, x, y, 0, 0, width, top, tw, th, tint)
		BlitRepeating(ctx, id, x, y+top, width, height-bottom-top,
			0, top, tw, th-bottom-top, tw, th, tint)
		blitRegion(ctx, id, x, y+height-bottom, 0, th-bottom, width, bottom, tw, th, tint)
	default:
		midW := width - right - left
		midH := height - bottom - top
		srcW := tw - right - left
		srcH := th - bottom - top

		blitRegion(ctx, id, x, y, 0, 0, left, top, tw, th, tint)
		blitRegion(ctx, id, x+width-right, y, tw-right, 0, right, top, tw, th, tint)
		blitRegion(ctx, id, x, y+height-bottom, 0, th-bottom, left, bottom, tw, th, tint)
		blitRegion(ctx, id, x+width-right, y+height-bottom, tw-right, th-bottom, right, bottom, tw, th, tint)

		BlitRepeating(ctx, id, x+left, y, midW, top, left, 0, srcW, top, tw, th, tint)
		BlitRepeating(ctx, id, x+left, y+height-bottom, midW, bottom, left, th-bottom, srcW, bottom, tw, th, tint)
		BlitRepeating(ctx, id, x, y+top, left, midH, 0, top, left, srcH, tw, th, tint)
		BlitRepeating(ctx, id, x+width-right, y+top, right, midH, tw-right, top, right, srcH, tw, th, tint)

		BlitRepeating(ctx, id, x+left, y+top, midW, midH, left, top, srcW, srcH, tw, th, tint)
	}
}

// BlitRepeating tiles the source region (u, v, srcW, srcH) of a texW x texH
// image over the destination. Partial tiles sample the centered part of the
// source so seams stay symmetric.
func BlitRepeating(ctx DrawContext, id TextureID, x, y, width, height, u, v, srcW, srcH, texW, texH int, tint Color) {
	if width <= 0 || height <= 0 {
		return
	}
	cols := Slices(width, srcW)
	rows := Slices(height, srcH)
	dy := y
	for _, h := range rows {
		dx := x
		for _, w := range cols {
			blitRegion(ctx, id, dx, dy, u+(srcW-w)/2, v+(srcH-h)/2, w, h, texW, texH, tint)
			dx += w
		}
		dy += h
	}
}

// blitRegion draws a w x h texel region at (u, v) without scaling.
func blitRegion(ctx DrawContext, id TextureID, x, y, u, v, w, h, texW, texH int, tint Color) {
	if w <= 0 || h <= 0 {
		return
	}
	tex := Texture{
		ID: id,
		U1: float64(u) / float64(texW),
		V1: float64(v) / float64(texH),
		U2: float64(u+w) / float64(texW),
		V2: float64(v+h) / float64(texH),
	}
	ctx.DrawTexture(tex, x, y, w, h, tint)
}

// BlitSprite nine-slices a registered sprite over the destination using the
// slice data from the sprite registry.
func BlitSprite(ctx DrawContext, id TextureID, x, y, width, height int, tint Color) {
	BlitNineSliced(ctx, id, x, y, width, height, LookupSprite(id), tint)
}
