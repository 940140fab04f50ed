package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/rental-marketplace/internal/middleware"
	ucProfile "github.com/BruksfildServices01/rental-marketplace/internal/usecase/profile"
)

// ======================================================
// HANDLER
// ======================================================

type ProfileHandler struct {
	create      *ucProfile.CreateProfile
	update      *ucProfile.UpdateProfile
	updateImage *ucProfile.UpdateProfileImage
	queries     *ucProfile.Queries
}

func NewProfileHandler(
	create *ucProfile.CreateProfile,
	update *ucProfile.UpdateProfile,
	updateImage *ucProfile.UpdateProfileImage,
	queries *ucProfile.Queries,
) *ProfileHandler {
	return &ProfileHandler{
		create:      create,
		update:      update,
		updateImage: updateImage,
		queries:     queries,
	}
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *ProfileHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.create.Execute(c.Request.Context(), middleware.IdentityFrom(c), payload)
	writeOutcome(c, out, err)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.update.Execute(c.Request.Context(), middleware.IdentityFrom(c), payload)
	writeOutcome(c, out, err)
}

func (h *ProfileHandler) UpdateImage(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.updateImage.Execute(c.Request.Context(), middleware.IdentityFrom(c), payload)
	writeOutcome(c, out, err)
}

// ======================================================
// READS
// ======================================================

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.queries.FetchProfile(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.OK(c, p)
}

// Image is public: anonymous callers get an empty image.
func (h *ProfileHandler) Image(c *gin.Context) {
	img, err := h.queries.FetchProfileImage(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.OK(c, gin.H{"image": img})
}
