package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, fields map[string]string, file []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="image"; filename="a.jpg"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func testContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestReadPayload_Multipart(t *testing.T) {
	c, _ := testContext(multipartRequest(t, map[string]string{"name": "Cabin"}, []byte("jpegdata")))

	p, err := readPayload(c)

	require.NoError(t, err)
	assert.Equal(t, "Cabin", p.Fields["name"])
	require.Contains(t, p.Files, "image")
	assert.Equal(t, "image/jpeg", p.Files["image"].ContentType)
	assert.Equal(t, int64(8), p.Files["image"].Size)
	assert.Equal(t, []byte("jpegdata"), p.Files["image"].Data)
}

func TestReadPayload_URLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("rating=4&rating=5&comment=ok"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c, _ := testContext(req)

	p, err := readPayload(c)

	require.NoError(t, err)
	assert.Equal(t, "4", p.Fields["rating"], "first value wins")
	assert.Nil(t, p.Files)
}

func TestBindPayload_TooLarge(t *testing.T) {
	c, w := testContext(multipartRequest(t, nil, bytes.Repeat([]byte{1}, maxFormBytes+1)))

	_, ok := bindPayload(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
