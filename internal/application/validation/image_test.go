package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestReadImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		mime    string
		wantErr string
	}{
		{name: "png", data: pngHeader, mime: "image/png"},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"), mime: "image/gif"},
		{name: "jpeg", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), mime: "image/jpeg"},
		{name: "empty", data: nil, wantErr: "image file is empty"},
		{name: "html disguised", data: []byte("<html><body>hi</body></html>"), wantErr: "is not allowed"},
		{
			name:    "too large",
			data:    append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxImageSize)...),
			wantErr: "larger than 5 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ReadImage(bytes.NewReader(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mime, img.MIME)
			assert.Equal(t, int64(len(tt.data)), img.Size())
		})
	}
}
