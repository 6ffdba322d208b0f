package decoder

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// ImageDecoder reads natural dimensions from the image header only.
type ImageDecoder struct{}

func New() *ImageDecoder { return &ImageDecoder{} }

// DecodeDimensions prefers dimensions supplied on the descriptor and falls
// back to decoding the header of its content. Every failure wraps
// domain.ErrDecode.
func (d *ImageDecoder) DecodeDimensions(file domain.FileDescriptor) (domain.Dimensions, error) {
	if file.Dimensions != nil {
		if file.Dimensions.Width <= 0 || file.Dimensions.Height <= 0 {
			return domain.Dimensions{}, fmt.Errorf("%w: %s: non-positive dimensions %dx%d",
				domain.ErrDecode, file.Name, file.Dimensions.Width, file.Dimensions.Height)
		}
		return *file.Dimensions, nil
	}
	if file.Source == nil {
		return domain.Dimensions{}, fmt.Errorf("%w: %s: no content", domain.ErrDecode, file.Name)
	}

	rc, err := file.Source.Open()
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: opening %s: %w", domain.ErrDecode, file.Name, err)
	}
	defer rc.Close()

	cfg, format, err := image.DecodeConfig(rc)
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: %s: %w", domain.ErrDecode, file.Name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return domain.Dimensions{}, fmt.Errorf("%w: %s: empty %s image", domain.ErrDecode, file.Name, format)
	}
	return domain.Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
