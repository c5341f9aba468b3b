package imaging

import (
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

const jpegQuality = 95

// Encode writes `asset` in the format it was decoded from. Formats without an encoder (webp) are written as png.
func Encode(writer io.Writer, asset *domain.ImageAsset) error {
	switch asset.Format {
	case "jpeg":
		return jpeg.Encode(writer, asset.Image, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		return gif.Encode(writer, asset.Image, nil)
	case "bmp":
		return bmp.Encode(writer, asset.Image)
	case "tiff":
		return tiff.Encode(writer, asset.Image, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(writer, asset.Image)
	}
}
