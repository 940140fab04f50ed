package usecasetest

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
)

// Uploader stands in for object storage and returns a fixed path.
type Uploader struct {
	Path    string
	Err     error
	Uploads int
}

func (u *Uploader) UploadImage(context.Context, *schema.File) (string, error) {
	if u.Err != nil {
		return "", u.Err
	}
	u.Uploads++
	return u.Path, nil
}

func PNG(t *testing.T) *schema.File {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	return &schema.File{
		Filename:    "pic.png",
		ContentType: "image/png",
		Size:        int64(buf.Len()),
		Data:        buf.Bytes(),
	}
}
