package tesseract4d

import (
	"image"
	"image/color"
)

// wireframePalette: background, line.
var wireframePalette = color.Palette{
	color.RGBA{0, 0, 0, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

// RenderFrame draws fb through c onto a new width×height paletted image.
func RenderFrame(fb *FrameBuffer, c Camera, width, height int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, width, height), wireframePalette)
	segs := ScreenSegments(fb, c, Real(width), Real(height))
	DebugLogOnce("Raster %dx%d: %d of %d segments visible", width, height, len(segs), fb.Len())
	for _, s := range segs {
		RasterSegment(s, width, height, func(x, y int) {
			img.Pix[img.PixOffset(x, y)] = 1
		})
	}
	return img
}
