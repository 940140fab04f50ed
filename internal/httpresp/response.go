package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Redirect tells the client which page to move to next. The body repeats the
// target for clients that do not follow Location.
func Redirect(c *gin.Context, target string) {
	c.Header("Location", target)
	c.JSON(http.StatusSeeOther, RedirectResponse{Redirect: target})
}
