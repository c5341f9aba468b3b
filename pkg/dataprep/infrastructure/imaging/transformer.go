package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/draw"

	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

var interpolators = map[string]draw.Interpolator{
	domain.InterpolationNearest:        draw.NearestNeighbor,
	domain.InterpolationApproxBiLinear: draw.ApproxBiLinear,
	domain.InterpolationBiLinear:       draw.BiLinear,
	domain.InterpolationCatmullRom:     draw.CatmullRom,
}

type Transformer struct {
	interpolator draw.Interpolator
}

func NewTransformer(interpolation string) (*Transformer, error) {
	interpolator, ok := interpolators[interpolation]
	if !ok {
		return nil, fmt.Errorf("unknown interpolation %q", interpolation)
	}
	return &Transformer{
		interpolator: interpolator,
	}, nil
}

func (t *Transformer) Transform(path string, width, height int) (*domain.ImageAsset, error) {
	src, format, err := Decode(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDecode, path, err)
	}
	resized := Resize(src, width, height, t.interpolator)
	return &domain.ImageAsset{
		Image:  Grayscale(resized),
		Format: format,
	}, nil
}

// Decode reads any registered image format and returns the image together with the format name.
func Decode(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = file.Close()
	}()
	return image.Decode(file)
}

// Resize scales `src` to exactly width x height, ignoring the aspect ratio. Alpha is dropped before
// scaling so transparent pixels keep their color. An image that already has the requested size is
// returned as is.
func Resize(src image.Image, width, height int, interpolator draw.Interpolator) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	opaque := Opaque(src)
	interpolator.Scale(dst, dst.Bounds(), opaque, opaque.Bounds(), draw.Src, nil)
	return dst
}

// Opaque copies `src` with every alpha set to 255 and the color channels left unpremultiplied.
func Opaque(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := straightRGB(src.At(x, y))
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: 0xff,
			})
		}
	}
	return dst
}

// Grayscale converts `src` to a single luminance channel with the weights of color.GrayModel, ignoring
// alpha. Converting an image that's already gray copies its pixels unchanged.
func Grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if gray, ok := src.(*image.Gray); ok {
		draw.Draw(dst, dst.Bounds(), gray, bounds.Min, draw.Src)
		return dst
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := straightRGB(src.At(x, y))
			luminance := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
			dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: uint8(luminance)})
		}
	}
	return dst
}

// straightRGB returns 16-bit color channels not multiplied by alpha. Premultiplied colors are divided back,
// which cannot recover a fully transparent pixel; the non-premultiplied types keep it.
func straightRGB(c color.Color) (r, g, b uint32) {
	switch c := c.(type) {
	case color.NRGBA:
		return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101
	case color.NRGBA64:
		return uint32(c.R), uint32(c.G), uint32(c.B)
	}
	r, g, b, a := c.RGBA()
	if a == 0 || a == 0xffff {
		return r, g, b
	}
	return r * 0xffff / a, g * 0xffff / a, b * 0xffff / a
}
