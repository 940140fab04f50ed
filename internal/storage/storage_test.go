package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/rental-marketplace/internal/imaging"
	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
)

func TestImageStore_UploadImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10))))

	backend := NewMemoryBackend()
	store := NewImageStore(backend, "http://cdn.test/bucket/", "/properties/", imaging.Options{})
	store.now = func() time.Time { return time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) }

	url, err := store.UploadImage(context.Background(), &schema.File{
		Filename: "cabin.png", ContentType: "image/png", Size: int64(buf.Len()), Data: buf.Bytes(),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://cdn.test/bucket/properties/2026/03/"), url)
	assert.True(t, strings.HasSuffix(url, ".webp"), url)

	require.Equal(t, 1, backend.Len())
	for key, obj := range backend.Objects {
		assert.Equal(t, "http://cdn.test/bucket/"+key, url)
		assert.Equal(t, "image/webp", obj.ContentType)
	}
}

func TestImageStore_RejectsUndecodable(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewImageStore(backend, "http://cdn.test", "profiles", imaging.Options{})

	_, err := store.UploadImage(context.Background(), &schema.File{ContentType: "image/png", Data: []byte("nope")})

	assert.Error(t, err)
	assert.Zero(t, backend.Len())
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000", endpointURL("localhost:9000", false))
	assert.Equal(t, "https://s3.test", endpointURL("s3.test", true))
	assert.Equal(t, "http://already.test", endpointURL("http://already.test", true))
}
