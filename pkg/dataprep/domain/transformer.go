package domain

type Transformer interface {
	// Transform decodes the image at `path`, resizes it to exactly width x height and converts it to grayscale.
	// Fails with ErrDecode if the file is not a decodable image.
	Transform(path string, width, height int) (*ImageAsset, error)
}
