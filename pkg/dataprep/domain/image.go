package domain

import "image"

// ImageAsset is a processed image: resized and single-channel. Format is the codec name it was
// decoded from ("png", "jpeg", ...) and is used again when it's written out.
type ImageAsset struct {
	Image  *image.Gray
	Format string
}

func (a *ImageAsset) Width() int {
	return a.Image.Bounds().Dx()
}

func (a *ImageAsset) Height() int {
	return a.Image.Bounds().Dy()
}
