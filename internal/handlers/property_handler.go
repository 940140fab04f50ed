package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/rental-marketplace/internal/middleware"
	ucProperty "github.com/BruksfildServices01/rental-marketplace/internal/usecase/property"
)

// ======================================================
// HANDLER
// ======================================================

type PropertyHandler struct {
	create      *ucProperty.CreateProperty
	update      *ucProperty.UpdateProperty
	updateImage *ucProperty.UpdatePropertyImage
	remove      *ucProperty.DeleteRental
	queries     *ucProperty.Queries
}

func NewPropertyHandler(
	create *ucProperty.CreateProperty,
	update *ucProperty.UpdateProperty,
	updateImage *ucProperty.UpdatePropertyImage,
	remove *ucProperty.DeleteRental,
	queries *ucProperty.Queries,
) *PropertyHandler {
	return &PropertyHandler{
		create:      create,
		update:      update,
		updateImage: updateImage,
		remove:      remove,
		queries:     queries,
	}
}

// ======================================================
// PUBLIC
// ======================================================

// List accepts ?search= and ?category=.
func (h *PropertyHandler) List(c *gin.Context) {
	cards, err := h.queries.FetchProperties(c.Request.Context(), c.Query("search"), c.Query("category"))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, cards)
}

func (h *PropertyHandler) Details(c *gin.Context) {
	details, err := h.queries.FetchPropertyDetails(c.Request.Context(), c.Param("id"))
	if writeQueryError(c, err) {
		return
	}
	httpresp.OK(c, details)
}

// ======================================================
// OWNER (rentals)
// ======================================================

func (h *PropertyHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.create.Execute(c.Request.Context(), middleware.IdentityFrom(c), payload)
	writeOutcome(c, out, err)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.update.Execute(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), payload)
	writeOutcome(c, out, err)
}

func (h *PropertyHandler) UpdateImage(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.updateImage.Execute(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"), payload)
	writeOutcome(c, out, err)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	out, err := h.remove.Execute(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	writeOutcome(c, out, err)
}

func (h *PropertyHandler) Rentals(c *gin.Context) {
	rows, err := h.queries.FetchRentals(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, rows)
}

func (h *PropertyHandler) RentalDetails(c *gin.Context) {
	p, err := h.queries.FetchRentalDetails(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if writeQueryError(c, err) {
		return
	}
	httpresp.OK(c, p)
}
