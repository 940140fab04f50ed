package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-marketplace/internal/schema"
)

// maxFormBytes caps a whole form body. The image rule itself allows 1 MB, the
// rest is headroom for the other fields and multipart framing.
const (
	maxFormBytes  = 4 << 20
	maxFormMemory = 2 << 20
)

var errFormTooLarge = errors.New("form too large")

// readPayload collects the submitted form fields and files. Only the first
// value of a repeated field is kept.
func readPayload(c *gin.Context) (schema.Payload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBytes)

	p := schema.Payload{Fields: map[string]string{}}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return p, classifyFormError(err)
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return p, classifyFormError(err)
	}

	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			p.Fields[k] = vs[0]
		}
	}

	if mf := c.Request.MultipartForm; mf != nil {
		p.Files = map[string]*schema.File{}
		for k, headers := range mf.File {
			if len(headers) == 0 {
				continue
			}
			f, err := readFile(headers[0])
			if err != nil {
				return p, err
			}
			p.Files[k] = f
		}
	}

	return p, nil
}

func readFile(h *multipart.FileHeader) (*schema.File, error) {
	src, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &schema.File{
		Filename:    h.Filename,
		Size:        h.Size,
		ContentType: h.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func classifyFormError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errFormTooLarge
	}
	return err
}
