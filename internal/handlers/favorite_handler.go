package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/rental-marketplace/internal/middleware"
	ucFavorite "github.com/BruksfildServices01/rental-marketplace/internal/usecase/favorite"
)

type FavoriteHandler struct {
	toggle  *ucFavorite.ToggleFavorite
	queries *ucFavorite.Queries
}

func NewFavoriteHandler(toggle *ucFavorite.ToggleFavorite, queries *ucFavorite.Queries) *FavoriteHandler {
	return &FavoriteHandler{toggle: toggle, queries: queries}
}

// Toggle reads favoriteId and pathname from the form. An empty favoriteId
// adds the property.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	out, err := h.toggle.Execute(c.Request.Context(), middleware.IdentityFrom(c), ucFavorite.ToggleInput{
		PropertyID: c.Param("id"),
		FavoriteID: payload.Fields["favoriteId"],
		Pathname:   payload.Fields["pathname"],
	})
	writeOutcome(c, out, err)
}

func (h *FavoriteHandler) FavoriteID(c *gin.Context) {
	id, err := h.queries.FetchFavoriteID(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if writeQueryError(c, err) {
		return
	}

	var favoriteID *string
	if id != "" {
		favoriteID = &id
	}
	httpresp.OK(c, gin.H{"favorite_id": favoriteID})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	cards, err := h.queries.FetchFavorites(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, cards)
}
