package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Brightness maps an iteration count to 0-255. Points that never escaped
// (count == max) are forced to 0 so the interior stays black.
func Brightness(iterations, max int) int {
	if iterations >= max {
		return 0
	}
	return 255 * iterations / max
}

// Pixel derives a color from a brightness value: the red channel is linear,
// green and blue wrap the square and cube around modulo 255.
func Pixel(brightness int) color.RGBA {
	return color.RGBA{
		R: uint8(brightness),
		G: uint8(brightness * brightness % 255),
		B: uint8(brightness * brightness * brightness % 255),
		A: 0xff,
	}
}

// Image colors an iteration-count grid from Plot into a Size×Size RGBA image.
func Image(v View, counts []int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, v.Size, v.Size))
	for i, c := range counts {
		img.Set(i%v.Size, i/v.Size, Pixel(Brightness(c, v.MaxIterations)))
	}
	return img
}

// WritePNG encodes the image onto w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
