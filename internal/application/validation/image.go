package validation

import (
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"saukstas/pkg/utils"
)

const MaxImageSize = 5 << 20

// Image is an upload that passed content sniffing and the size ceiling.
type Image struct {
	Data []byte
	MIME string
}

func (i *Image) Size() int64 {
	return int64(len(i.Data))
}

// ReadImage reads at most MaxImageSize+1 bytes from r and checks the detected type.
func ReadImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	if len(data) == 0 {
		return nil, Errors{"image file is empty"}
	}
	if len(data) > MaxImageSize {
		return nil, Errors{"image must not be larger than 5 MB"}
	}

	detected := mimetype.Detect(data).String()
	if !utils.IsAllowedImage(detected) {
		return nil, Errors{fmt.Sprintf("image type %s is not allowed, use JPEG, PNG, GIF or WebP", detected)}
	}

	return &Image{Data: data, MIME: detected}, nil
}
